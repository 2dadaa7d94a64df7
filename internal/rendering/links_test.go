package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeHref(t *testing.T) {
	tests := map[string]string{
		"":                      "",
		"   ":                   "",
		"https://example.com/a": "//example.com/a",
		"HTTP://example.com":    "//example.com",
		"example.com":           "//example.com",
		"//example.com":         "//example.com",
		"  linkedin.com/in/x  ": "//linkedin.com/in/x",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeHref(in), in)
	}
}

func TestGitHubHref(t *testing.T) {
	assert.Equal(t, "//github.com/octo", GitHubHref("@octo"))
	assert.Equal(t, "//github.com/octo", GitHubHref("octo"))
	assert.Equal(t, "//github.com/octo", GitHubHref("https://github.com/octo"))
	assert.Equal(t, "//github.com/octo", GitHubHref("github.com/octo"))
	assert.Equal(t, "", GitHubHref(""))
}

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		link types.Link
		want LinkKind
	}{
		{types.Link{Label: "Me", URL: "https://www.linkedin.com/in/me"}, LinkLinkedIn},
		{types.Link{Label: "GitHub", URL: ""}, LinkGitHub},
		{types.Link{Label: "tweets", URL: "https://x.com/me"}, LinkTwitter},
		{types.Link{Label: "Portfolio", URL: "https://me.dev"}, LinkPortfolio},
		{types.Link{Label: "وبسایت", URL: "https://me.ir"}, LinkPortfolio},
		{types.Link{Label: "Blog", URL: "https://me.blog"}, LinkGeneric},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLink(tt.link), tt.link.Label)
	}
}
