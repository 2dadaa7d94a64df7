package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// NormalizeHref turns a user-typed address into a scheme-relative href.
// "https://site.dev/x" and "site.dev/x" both become "//site.dev/x".
func NormalizeHref(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	v = schemePrefix.ReplaceAllString(v, "")
	return "//" + strings.TrimPrefix(v, "//")
}

// GitHubHref links a GitHub contact value. A bare handle such as "@octo" points at its profile.
func GitHubHref(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	if schemePrefix.MatchString(v) || strings.Contains(strings.ToLower(v), "github.com") {
		return NormalizeHref(v)
	}
	return "//github.com/" + strings.ReplaceAll(v, "@", "")
}

// LinkKind is the icon family of a personal link
type LinkKind string

const (
	LinkLinkedIn  LinkKind = "linkedin"
	LinkGitHub    LinkKind = "github"
	LinkTwitter   LinkKind = "twitter"
	LinkPortfolio LinkKind = "portfolio"
	LinkGeneric   LinkKind = "generic"
)

// ClassifyLink picks the icon family for a link from its label and address
func ClassifyLink(link types.Link) LinkKind {
	label := strings.ToLower(link.Label)
	url := strings.ToLower(link.URL)

	switch {
	case strings.Contains(label, "linkedin") || strings.Contains(url, "linkedin.com"):
		return LinkLinkedIn
	case strings.Contains(label, "github") || strings.Contains(url, "github.com"):
		return LinkGitHub
	case strings.Contains(label, "twitter") || strings.Contains(url, "twitter.com") || strings.Contains(url, "x.com"):
		return LinkTwitter
	case strings.Contains(label, "portfolio") || strings.Contains(label, "website") ||
		strings.Contains(label, "وبسایت") || strings.Contains(label, "پورتفولیو"):
		return LinkPortfolio
	default:
		return LinkGeneric
	}
}
