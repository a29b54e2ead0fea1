package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExtractText_MarkdownFlavor(t *testing.T) {
	html := `<html><body><h1>Release Notes</h1><p>Hello world</p><ul><li>Item 1</li><li>Item 2</li></ul></body></html>`
	text := ExtractText(html)
	if !strings.Contains(text, "# Release Notes") {
		t.Errorf("expected '# Release Notes' in output, got: %s", text)
	}
	if !strings.Contains(text, "Hello world") {
		t.Errorf("expected 'Hello world' in output, got: %s", text)
	}
	if !strings.Contains(text, "- Item 1") {
		t.Errorf("expected '- Item 1' in output, got: %s", text)
	}
}

func TestExtractText_SkipsChrome(t *testing.T) {
	html := `<html><body><nav><a href="/">Home</a></nav><script>alert('x')</script><main><p>Main content</p></main><footer>Footer</footer></body></html>`
	text := ExtractText(html)
	for _, gone := range []string{"Home", "alert", "Footer"} {
		if strings.Contains(text, gone) {
			t.Errorf("expected %q to be removed, got: %s", gone, text)
		}
	}
	if !strings.Contains(text, "Main content") {
		t.Errorf("expected 'Main content' in output, got: %s", text)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Doc Title</title></head><body><p>Body text here.</p></body></html>`))
	}))
	defer srv.Close()

	result, err := NewHTTPFetcher().Fetch(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.StatusCode != 200 {
		t.Fatalf("status = %d", result.StatusCode)
	}
	if result.Title != "Doc Title" {
		t.Fatalf("title = %q", result.Title)
	}
	if !strings.Contains(result.Text, "Body text here.") {
		t.Fatalf("text = %q", result.Text)
	}
}
