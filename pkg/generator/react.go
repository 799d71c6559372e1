package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// renderReact emits a function component. Template inputs surface as optional
// props, typed through an interface when TypeScript is enabled and documented
// with JSDoc otherwise. The component is exported both by name and as the
// default export.
func renderReact(id Identity, rec PropertyRecord, style Style, children []figma.Node, cfg Config) string {
	var b strings.Builder

	if len(rec.TemplateInputs) > 0 {
		if cfg.TypeScript {
			fmt.Fprintf(&b, "interface %sProps {\n", id.DisplayName)
			for _, input := range rec.TemplateInputs {
				fmt.Fprintf(&b, "  %s?: string | number;\n", input)
			}
			b.WriteString("}\n\n")
		} else {
			b.WriteString("/**\n")
			b.WriteString(" * @param {object} props\n")
			for _, input := range rec.TemplateInputs {
				fmt.Fprintf(&b, " * @param {string|number} [props.%s]\n", input)
			}
			b.WriteString(" */\n")
		}
	}

	switch {
	case len(rec.TemplateInputs) == 0:
		fmt.Fprintf(&b, "export function %s() {\n", id.DisplayName)
	case cfg.TypeScript:
		fmt.Fprintf(&b, "export function %s({ %s }: %sProps) {\n",
			id.DisplayName, strings.Join(rec.TemplateInputs, ", "), id.DisplayName)
	default:
		fmt.Fprintf(&b, "export function %s({ %s }) {\n",
			id.DisplayName, strings.Join(rec.TemplateInputs, ", "))
	}

	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <div%s>\n", reactRootAttributes(style))
	writeChildMarkup(&b, children, "      ", true)
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "export default %s;\n", id.DisplayName)

	return b.String()
}

// reactRootAttributes serializes the synthesized style onto the root element:
// a className for utility classes, an inline style object for declarations,
// nothing when the style is empty.
func reactRootAttributes(style Style) string {
	if style.Classes != "" {
		return fmt.Sprintf(" className=%q", style.Classes)
	}
	if len(style.Decls) > 0 {
		parts := make([]string, 0, len(style.Decls))
		for _, d := range style.Decls {
			parts = append(parts, fmt.Sprintf("%s: %q", camelCaseProperty(d.Property), d.Value))
		}
		return fmt.Sprintf(" style={{ %s }}", strings.Join(parts, ", "))
	}
	return ""
}

// camelCaseProperty converts a CSS property name (background-color) to its
// React style-object key (backgroundColor).
func camelCaseProperty(prop string) string {
	parts := strings.Split(prop, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
