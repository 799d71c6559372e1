package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// renderSvelte emits a component with script, markup, and (in declaration
// mode) style sections. Template inputs surface as optional exported let
// bindings; the file itself is the component's primary export, with the
// display name recorded in the leading comment.
func renderSvelte(id Identity, rec PropertyRecord, style Style, children []figma.Node, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<!-- %s -->\n", id.DisplayName)

	if len(rec.TemplateInputs) > 0 {
		if cfg.TypeScript {
			b.WriteString("<script lang=\"ts\">\n")
			for _, input := range rec.TemplateInputs {
				fmt.Fprintf(&b, "  export let %s: string | number | undefined = undefined;\n", input)
			}
		} else {
			b.WriteString("<script>\n")
			for _, input := range rec.TemplateInputs {
				b.WriteString("  /** @type {string | number | undefined} */\n")
				fmt.Fprintf(&b, "  export let %s = undefined;\n", input)
			}
		}
		b.WriteString("</script>\n\n")
	}

	fmt.Fprintf(&b, "<div%s>\n", classAttribute(id, style))
	writeChildMarkup(&b, children, "  ", false)
	b.WriteString("</div>\n")

	if block := styleBlock(id, style, "<style>", "  "); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	return b.String()
}
