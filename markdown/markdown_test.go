package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline(`<script>alert("x")</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("FormatInline did not escape raw HTML: %q", got)
	}
}

func TestFormatInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[home](/)", `<a href="/">home</a>`},
		{"[book](/#book)", `<a href="/#book">book</a>`},
		{"[mail](mailto:a@b.io)", `<a href="mailto:a@b.io">mail</a>`},
		{"[site](https://example.com)^", `<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`},
		{"[q](https://example.com/?a=1&b=2)", `<a href="https://example.com/?a=1&amp;b=2">q</a>`},
		{"[bad](javascript:void)", "bad"},
	}
	for _, tt := range tests {
		if got := FormatInline(tt.input); got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineKeepsURLsIntact(t *testing.T) {
	got := FormatInline("[x](https://example.com/a_b_c)")
	if !strings.Contains(got, `href="https://example.com/a_b_c"`) {
		t.Errorf("underscores inside href were formatted: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/privacy/", "/privacy/"},
		{"#offers", "#offers"},
		{"https://goodfields.io", "https://goodfields.io"},
		{"mailto:wally@goodfields.io", "mailto:wally@goodfields.io"},
		{"tel:+12045550100", "tel:+12045550100"},
		{"  https://goodfields.io  ", "https://goodfields.io"},
		{"//evil.example", ""},
		{"https://", ""},
		{"javascript:alert(1)", ""},
		{"data:text/html,hi", ""},
		{"relative/path", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderBlocks(t *testing.T) {
	md := "Intro line one\nline two\n\n## Heading\n\n- one\n- **two**\n\n1. first\n2. second\n\nTail"
	want := "<p>Intro line one line two</p>" +
		"<h2>Heading</h2>" +
		"<ul><li>one</li><li><strong>two</strong></li></ul>" +
		"<ol><li>first</li><li>second</li></ol>" +
		"<p>Tail</p>"
	if got := Render(md); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderListAfterParagraphWithoutBlankLine(t *testing.T) {
	got := Render("Lead in:\n- item")
	want := "<p>Lead in:</p><ul><li>item</li></ul>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("# Title").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "<h1>Title</h1>" {
		t.Errorf("component output = %q", buf.String())
	}
}
