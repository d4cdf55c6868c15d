package paper

import "time"

// Classics returns the fixed list of landmark papers used to seed an empty
// store. Abstracts are the published ones, shortened.
func Classics() []Paper {
	return []Paper{
		{
			ID:    "1706.03762",
			Title: "Attention Is All You Need",
			Authors: []string{
				"Ashish Vaswani", "Noam Shazeer", "Niki Parmar", "Jakob Uszkoreit",
				"Llion Jones", "Aidan N. Gomez", "Lukasz Kaiser", "Illia Polosukhin",
			},
			Abstract: "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks that include an encoder and a decoder. We propose a new simple network architecture, the Transformer, based solely on attention mechanisms, dispensing with recurrence and convolutions entirely.",
			Published: date(2017, 6, 12),
			CategorySlug: "foundation-models",
			URL:          "https://arxiv.org/abs/1706.03762",
		},
		{
			ID:      "1207.0580",
			Title:   "ImageNet Classification with Deep Convolutional Neural Networks",
			Authors: []string{"Alex Krizhevsky", "Ilya Sutskever", "Geoffrey E. Hinton"},
			Abstract: "We trained a large, deep convolutional neural network to classify the 1.2 million high-resolution images in the ImageNet LSVRC-2010 contest into the 1000 different classes, achieving error rates considerably better than the previous state-of-the-art.",
			Published:    date(2012, 7, 3),
			CategorySlug: "basic-concepts",
			URL:          "https://arxiv.org/abs/1207.0580",
		},
		{
			ID:    "1406.2661",
			Title: "Generative Adversarial Networks",
			Authors: []string{
				"Ian J. Goodfellow", "Jean Pouget-Abadie", "Mehdi Mirza", "Bing Xu",
				"David Warde-Farley", "Sherjil Ozair", "Aaron Courville", "Yoshua Bengio",
			},
			Abstract: "We propose a new framework for estimating generative models via an adversarial process, in which we simultaneously train two models: a generative model G that captures the data distribution, and a discriminative model D that estimates the probability that a sample came from the training data rather than G.",
			Published:    date(2014, 6, 10),
			CategorySlug: "generative-models",
			URL:          "https://arxiv.org/abs/1406.2661",
		},
		{
			ID:      "1810.04805",
			Title:   "BERT: Pre-training of Deep Bidirectional Transformers for Language Understanding",
			Authors: []string{"Jacob Devlin", "Ming-Wei Chang", "Kenton Lee", "Kristina Toutanova"},
			Abstract: "We introduce a new language representation model called BERT, designed to pre-train deep bidirectional representations from unlabeled text by jointly conditioning on both left and right context in all layers.",
			Published:    date(2018, 10, 11),
			CategorySlug: "foundation-models",
			URL:          "https://arxiv.org/abs/1810.04805",
		},
		{
			ID:    "1909.11942",
			Title: "Language Models are Unsupervised Multitask Learners",
			Authors: []string{
				"Alec Radford", "Jeffrey Wu", "Rewon Child", "David Luan",
				"Dario Amodei", "Ilya Sutskever",
			},
			Abstract: "We demonstrate that language models begin to learn question answering, machine translation, reading comprehension, and summarization without any explicit supervision when trained on a new dataset of millions of webpages called WebText.",
			Published:    date(2019, 2, 14),
			CategorySlug: "foundation-models",
			URL:          "https://arxiv.org/abs/1909.11942",
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
