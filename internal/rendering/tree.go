package rendering

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el creates an element with an optional class and children
func el(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// withAttr sets key=val on n and returns n
func withAttr(n *html.Node, key, val string) *html.Node {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return n
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

// textEl is an element holding a single text node
func textEl(a atom.Atom, class, s string) *html.Node {
	return el(a, class, text(s))
}

// anchor is a link opening in a new tab
func anchor(class, href string, children ...*html.Node) *html.Node {
	a := el(atom.A, class, children...)
	withAttr(a, "href", href)
	withAttr(a, "target", "_blank")
	return withAttr(a, "rel", "noopener noreferrer")
}

// list builds a <ul> with one <li> per item
func list(class string, items []string) *html.Node {
	ul := el(atom.Ul, class)
	for _, item := range items {
		ul.AppendChild(textEl(atom.Li, "", item))
	}
	return ul
}

// section wraps content under a titled section block tagged with its name
func section(prefix, name, title string, children ...*html.Node) *html.Node {
	s := el(atom.Section, prefix+"-section section-"+name,
		textEl(atom.H3, "section-title", title))
	withAttr(s, "data-section", name)
	for _, c := range children {
		if c != nil {
			s.AppendChild(c)
		}
	}
	return s
}
