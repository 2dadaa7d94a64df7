package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/i18n"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	contactSeparator = " | "
	skillSeparator   = " • "
)

// ContactLine joins the set contact values in display order, as stored.
// It includes exactly the values the visual contact list shows.
func ContactLine(info types.PersonalInfo) string {
	var kept []string
	for _, p := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub} {
		if p != "" {
			kept = append(kept, p)
		}
	}
	for _, link := range info.Links {
		if strings.TrimSpace(link.URL) != "" {
			kept = append(kept, link.URL)
		}
	}
	return strings.Join(kept, contactSeparator)
}

func renderATS(doc types.ResumeData, lang types.Language) *html.Node {
	info := doc.PersonalInfo
	header := el(atom.Header, "ats-header",
		textEl(atom.H1, "ats-name", info.Name),
		textEl(atom.P, "ats-title", info.Title),
	)
	if line := ContactLine(info); line != "" {
		header.AppendChild(textEl(atom.P, "ats-contact", line))
	}

	root := el(atom.Div, "resume resume-ats", header)
	for _, s := range []*html.Node{
		atsSummary(doc, lang),
		atsSkills(doc, lang),
		atsExperience(doc, lang),
		atsEducation(doc, lang),
		atsProjects(doc, lang),
	} {
		if s != nil {
			root.AppendChild(s)
		}
	}
	return root
}

func atsSummary(doc types.ResumeData, lang types.Language) *html.Node {
	if strings.TrimSpace(doc.Summary) == "" {
		return nil
	}
	return section("ats", string(types.SectionSummary), i18n.T(lang, i18n.KeySummary),
		textEl(atom.P, "ats-text", doc.Summary))
}

func atsSkills(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Skills) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.Skills))
	for _, skill := range doc.Skills {
		names = append(names, skill.Name)
	}
	return section("ats", string(types.SectionSkills), i18n.T(lang, i18n.KeySkills),
		textEl(atom.P, "ats-text", strings.Join(names, skillSeparator)))
}

func atsExperience(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.WorkExperience) == 0 {
		return nil
	}
	s := section("ats", string(types.SectionWorkExperience), i18n.T(lang, i18n.KeyWorkExperience))
	for _, exp := range doc.WorkExperience {
		s.AppendChild(experienceItem(exp))
	}
	return s
}

func atsEducation(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Education) == 0 {
		return nil
	}
	s := section("ats", string(types.SectionEducation), i18n.T(lang, i18n.KeyEducation))
	for _, edu := range doc.Education {
		s.AppendChild(educationItem(edu))
	}
	return s
}

func atsProjects(doc types.ResumeData, lang types.Language) *html.Node {
	if len(doc.Projects) == 0 {
		return nil
	}
	s := section("ats", string(types.SectionProjects), i18n.T(lang, i18n.KeyProjects))
	for _, proj := range doc.Projects {
		s.AppendChild(projectItem(proj, func(p types.Project) string { return "(" + p.Link + ")" }))
	}
	return s
}
