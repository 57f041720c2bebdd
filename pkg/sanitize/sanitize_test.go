package sanitize

import (
	"testing"
)

func TestContentKeepsAllowedMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello", "hello"},
		{"formatting", "<b>bold</b> and <em>emphasis</em>", "<b>bold</b> and <em>emphasis</em>"},
		{"blocks", "<p>one</p><div><h2>two</h2></div>", "<p>one</p><div><h2>two</h2></div>"},
		{"lists", "<ul><li>a</li><li>b</li></ul>", "<ul><li>a</li><li>b</li></ul>"},
		{"style attribute", `<span style="color:red">x</span>`, `<span style="color:red">x</span>`},
		{
			"tables",
			"<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>c</td></tr></tbody></table>",
			"<table><thead><tr><th>h</th></tr></thead><tbody><tr><td>c</td></tr></tbody></table>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.input); got != tt.expected {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContentRemovesActiveContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"script with payload", "<script>alert(1)</script><b>safe</b>", "<b>safe</b>"},
		{"style element", "<style>body{display:none}</style>text", "text"},
		{"iframe", `<iframe src="https://evil.example"></iframe>ok`, "ok"},
		{"textarea keeps nothing", "<textarea>raw</textarea>", ""},
		{"form with fields", "<form><option>x</option></form>after", "after"},
		{"comment", "<!-- note --><p>x</p>", "<p>x</p>"},
		{"event handler dropped", `<b onclick="alert(1)">x</b>`, "<b>x</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.input); got != tt.expected {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContentUnwrapsUnknownElements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"center", "<center><b>x</b></center>", "<b>x</b>"},
		{"nested unknown", "<article><section><p>x</p></section></article>", "<p>x</p>"},
		{"unknown with disallowed child", "<figure><script>x()</script>cap</figure>", "cap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.input); got != tt.expected {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContentLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"http href gets nofollow",
			`<a href="http://example.com">l</a>`,
			`<a href="http://example.com" rel="nofollow">l</a>`,
		},
		{
			"mailto kept",
			`<a href="mailto:a@b.c">l</a>`,
			`<a href="mailto:a@b.c" rel="nofollow">l</a>`,
		},
		{
			"javascript href dropped",
			`<a href="javascript:alert(1)">l</a>`,
			`<a>l</a>`,
		},
		{
			"relative href kept",
			`<a href="/docs">l</a>`,
			`<a href="/docs" rel="nofollow">l</a>`,
		},
		{
			"no href means no rel",
			`<a style="color:red">l</a>`,
			`<a style="color:red">l</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.input); got != tt.expected {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContentImages(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"https src and alt kept",
			`<img src="https://x/y.png" alt="pic"/>`,
			`<img src="https://x/y.png" alt="pic"/>`,
		},
		{
			"data src kept",
			`<img src="data:image/png;base64,AAAA"/>`,
			`<img src="data:image/png;base64,AAAA"/>`,
		},
		{
			"decimal width truncated",
			`<img src="https://x/y.png" width="10.5"/>`,
			`<img src="https://x/y.png" width="10"/>`,
		},
		{
			"non-numeric height dropped",
			`<img src="https://x/y.png" height="tall" border="2"/>`,
			`<img src="https://x/y.png" border="2"/>`,
		},
		{
			"javascript src dropped",
			`<img src="javascript:alert(1)" alt="x"/>`,
			`<img alt="x"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Content(tt.input); got != tt.expected {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIntegerValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		kept     bool
	}{
		{"10", "10", true},
		{"0", "0", true},
		{"10.5", "10", true},
		{"10.", "10", true},
		{".5", "", false},
		{"", "", false},
		{"-3", "", false},
		{"12px", "", false},
		{"abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, kept := integerValue(tt.input)
			if kept != tt.kept || got != tt.expected {
				t.Errorf("integerValue(%q) = (%q, %v), want (%q, %v)", tt.input, got, kept, tt.expected, tt.kept)
			}
		})
	}
}

func TestContentIsIdempotent(t *testing.T) {
	inputs := []string{
		"<p>plain</p>",
		`<a href="http://example.com">l</a>`,
		`<img src="https://x/y.png" width="10.5"/>`,
		"<script>alert(1)</script><b>x</b>",
		"<center><b>x</b></center>",
		`<span style="color:red">x &amp; y</span>`,
	}

	for _, input := range inputs {
		once := Content(input)
		twice := Content(once)
		if once != twice {
			t.Errorf("Content not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
