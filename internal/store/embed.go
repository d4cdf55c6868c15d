package store

import (
	"bytes"
	"embed"
	"fmt"
)

//go:embed data/articles.json
var defaultDataFS embed.FS

// Default returns a store built from the embedded articles.json. The
// embedded content is produced by the generation pipeline at build time.
func Default() (*Store, error) {
	data, err := defaultDataFS.ReadFile("data/articles.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded articles: %w", err)
	}
	s, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("embedded articles: %w", err)
	}
	return s, nil
}
