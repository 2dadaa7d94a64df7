package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlaceholderAvatar is shown when the document has no avatar or it fails to load
const PlaceholderAvatar = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_960_720.png"

// SectionContact names the sidebar contact block, which has no ResumeData field of its own
const SectionContact = "contact"

func renderVisual(doc types.ResumeData, lang types.Language) *html.Node {
	info := doc.PersonalInfo

	avatarSrc := info.Avatar
	if strings.TrimSpace(avatarSrc) == "" {
		avatarSrc = PlaceholderAvatar
	}
	avatar := el(atom.Img, "visual-avatar")
	withAttr(avatar, "src", avatarSrc)
	withAttr(avatar, "alt", "Profile")
	withAttr(avatar, "onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", PlaceholderAvatar))

	header := el(atom.Header, "visual-header",
		avatar,
		el(atom.Div, "visual-header-text",
			textEl(atom.H1, "visual-name", info.Name),
			textEl(atom.H2, "visual-title", info.Title),
		),
	)

	main := el(atom.Main, "visual-main",
		visualSummary(doc, lang),
		visualExperience(doc, lang),
		visualEducation(doc, lang),
		visualProjects(doc, lang),
	)
	sidebar := el(atom.Aside, "visual-sidebar",
		visualContact(info, lang),
		visualSkills(doc, lang),
	)

	return el(atom.Div, "resume resume-visual", header, el(atom.Div, "visual-layout", main, sidebar))
}

func visualSummary(doc types.ResumeData, lang types.Language) *html.Node {
	if strings.TrimSpace(doc.Summary) == "" {
		return nil
	}
	return section("visual", string(types.SectionSummary), i18n.T(lang, i18n.KeySummary),
		textEl(atom.P, "visual-summary-text", doc.Summary))
}

func visualExperience(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.WorkExperience) == 0 {
		return nil
	}
	s := section("visual", string(types.SectionWorkExperience), i18n.T(lang, i18n.KeyWorkExperience))
	for _, exp := range doc.WorkExperience {
		s.AppendChild(experienceItem(exp))
	}
	return s
}

func visualEducation(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Education) == 0 {
		return nil
	}
	s := section("visual", string(types.SectionEducation), i18n.T(lang, i18n.KeyEducation))
	for _, edu := range doc.Education {
		s.AppendChild(educationItem(edu))
	}
	return s
}

func visualProjects(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Projects) == 0 {
		return nil
	}
	s := section("visual", string(types.SectionProjects), i18n.T(lang, i18n.KeyProjects))
	for _, proj := range doc.Projects {
		s.AppendChild(projectItem(proj, func(types.Project) string { return "🔗" }))
	}
	return s
}

func contactItem(kind, value string, link *html.Node) *html.Node {
	li := el(atom.Li, "contact-item contact-"+kind)
	if link != nil {
		li.AppendChild(link)
		return li
	}
	li.AppendChild(text(value))
	return li
}

func visualContact(info types.PersonalInfo, lang types.Language) *html.Node {
	ul := el(atom.Ul, "contact-list")
	if info.Email != "" {
		ul.AppendChild(contactItem("email", info.Email, nil))
	}
	if info.Phone != "" {
		ul.AppendChild(contactItem("phone", info.Phone, nil))
	}
	if info.Location != "" {
		ul.AppendChild(contactItem("location", info.Location, nil))
	}
	if info.LinkedIn != "" {
		ul.AppendChild(contactItem("linkedin", "", anchor("", NormalizeHref(info.LinkedIn), text(info.LinkedIn))))
	}
	if info.GitHub != "" {
		ul.AppendChild(contactItem("github", "", anchor("", GitHubHref(info.GitHub), text(info.GitHub))))
	}
	for _, link := range info.Links {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		label := link.Label
		if label == "" {
			label = link.URL
		}
		kind := string(ClassifyLink(link))
		ul.AppendChild(contactItem("link link-"+kind, "", anchor("", NormalizeHref(link.URL), text(label))))
	}
	if ul.FirstChild == nil {
		return nil
	}
	return section("visual", SectionContact, i18n.T(lang, i18n.KeyContactInfo), ul)
}

func visualSkills(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Skills) == 0 {
		return nil
	}
	ul := el(atom.Ul, "skill-list")
	for _, skill := range doc.Skills {
		fill := el(atom.Div, "skill-bar-fill")
		withAttr(fill, "style", fmt.Sprintf("width:%d%%", clampPercent(skill.Level)))
		li := el(atom.Li, "skill-item",
			textEl(atom.Span, "skill-name", skill.Name),
			el(atom.Div, "skill-bar", fill),
		)
		ul.AppendChild(withAttr(li, "data-id", skill.ID))
	}
	return section("visual", string(types.SectionSkills), i18n.T(lang, i18n.KeySkills), ul)
}

func clampPercent(level int) int {
	switch {
	case level < 0:
		return 0
	case level > 100:
		return 100
	default:
		return level
	}
}
