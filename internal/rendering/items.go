package rendering

import (
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Item blocks shared by both templates; the stylesheet tells them apart by the enclosing section.

func experienceItem(exp types.WorkExperience) *html.Node {
	item := el(atom.Div, "item experience-item",
		el(atom.Div, "item-header",
			textEl(atom.H4, "item-title", exp.Role),
			textEl(atom.P, "item-meta", exp.Period),
		),
		textEl(atom.P, "item-subtitle", exp.Company),
	)
	if bullets := SplitBullets(exp.Description); len(bullets) > 0 {
		item.AppendChild(list("item-bullets", bullets))
	}
	return withAttr(item, "data-id", exp.ID)
}

func educationItem(edu types.Education) *html.Node {
	item := el(atom.Div, "item education-item",
		el(atom.Div, "item-header",
			textEl(atom.H4, "item-title", edu.Degree),
			textEl(atom.P, "item-meta", edu.DisplayPeriod()),
		),
		textEl(atom.P, "item-subtitle", edu.Institution),
	)
	return withAttr(item, "data-id", edu.ID)
}

// projectItem renders a project; linkText is the anchor body shown when the project has a link
func projectItem(proj types.Project, linkText func(types.Project) string) *html.Node {
	header := el(atom.Div, "item-header", textEl(atom.H4, "item-title", proj.Name))
	if href := NormalizeHref(proj.Link); href != "" {
		header.AppendChild(anchor("project-link", href, text(linkText(proj))))
	}
	item := el(atom.Div, "item project-item",
		header,
		textEl(atom.P, "project-description", proj.Description),
	)
	return withAttr(item, "data-id", proj.ID)
}
