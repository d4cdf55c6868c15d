package browser

import "testing"

func TestOpenRejectsNonHTTP(t *testing.T) {
	if err := Open("file:///etc/passwd"); err == nil {
		t.Error("expected error for file scheme")
	}
	if err := Open("javascript:alert(1)"); err == nil {
		t.Error("expected error for javascript scheme")
	}
}

func TestOpenRejectsInvalidURL(t *testing.T) {
	if err := Open("://not-a-url"); err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestOpenerOverride(t *testing.T) {
	t.Setenv("PAPERBLOG_BROWSER", "my-browser")
	name, args := openerCommand("https://arxiv.org/abs/1706.03762")
	if name != "my-browser" {
		t.Errorf("expected override command, got %q", name)
	}
	if len(args) != 1 || args[0] != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("unexpected args: %v", args)
	}
}
