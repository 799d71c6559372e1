package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Render emits the component source text for the configured dialect.
// All three renderers are pure functions of the same normalized model
// (identity, property record, synthesized style, child nodes); they differ
// only in surface syntax, never in available information.
func Render(id Identity, rec PropertyRecord, style Style, children []figma.Node, cfg Config) string {
	switch cfg.Framework {
	case Vue:
		return renderVue(id, rec, style, children, cfg)
	case Svelte:
		return renderSvelte(id, rec, style, children, cfg)
	default:
		return renderReact(id, rec, style, children, cfg)
	}
}

// visibleChildren returns the children that are not explicitly hidden.
// An absent visible flag means visible.
func visibleChildren(children []figma.Node) []*figma.Node {
	var out []*figma.Node
	for i := range children {
		if children[i].Visible == nil || *children[i].Visible {
			out = append(out, &children[i])
		}
	}
	return out
}

// childText returns the paragraph text for a TEXT child: its literal content
// when present, else the child's name as a placeholder.
func childText(child *figma.Node) string {
	if child.Characters != "" {
		return child.Characters
	}
	return child.Name
}

// writeChildMarkup writes one markup line per visible child: a text paragraph
// for TEXT children, otherwise an opaque placeholder element annotated with
// the child's name as a comment. Children render one level deep only; nested
// structure stays opaque.
func writeChildMarkup(b *strings.Builder, children []figma.Node, indent string, jsxComments bool) {
	for _, child := range visibleChildren(children) {
		switch {
		case child.Type == "TEXT":
			fmt.Fprintf(b, "%s<p>%s</p>\n", indent, childText(child))
		case jsxComments:
			fmt.Fprintf(b, "%s<div>{/* %s */}</div>\n", indent, child.Name)
		default:
			fmt.Fprintf(b, "%s<div><!-- %s --></div>\n", indent, child.Name)
		}
	}
}
