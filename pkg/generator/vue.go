package generator

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// renderVue emits a single-file component with template, script, and
// (in declaration mode) scoped style blocks. Template inputs surface as
// optional props accepting String or Number. The script block is the
// component's primary export.
func renderVue(id Identity, rec PropertyRecord, style Style, children []figma.Node, cfg Config) string {
	var b strings.Builder

	b.WriteString("<template>\n")
	fmt.Fprintf(&b, "  <div%s>\n", classAttribute(id, style))
	writeChildMarkup(&b, children, "    ", false)
	b.WriteString("  </div>\n")
	b.WriteString("</template>\n\n")

	if cfg.TypeScript {
		b.WriteString("<script lang=\"ts\">\n")
		b.WriteString("import { defineComponent } from \"vue\";\n\n")
		b.WriteString("export default defineComponent({\n")
	} else {
		b.WriteString("<script>\n")
		b.WriteString("export default {\n")
	}

	fmt.Fprintf(&b, "  name: %q,\n", id.DisplayName)

	if len(rec.TemplateInputs) > 0 {
		b.WriteString("  props: {\n")
		for _, input := range rec.TemplateInputs {
			fmt.Fprintf(&b, "    %s: {\n", input)
			b.WriteString("      type: [String, Number],\n")
			b.WriteString("      required: false,\n")
			b.WriteString("    },\n")
		}
		b.WriteString("  },\n")
	}

	if cfg.TypeScript {
		b.WriteString("});\n")
	} else {
		b.WriteString("};\n")
	}
	b.WriteString("</script>\n")

	if block := styleBlock(id, style, "<style scoped>", "  "); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	return b.String()
}

// classAttribute returns the root element's class attribute: the utility-class
// string in Tailwind mode, the component slug when a style block will target
// it, nothing when the style is empty.
func classAttribute(id Identity, style Style) string {
	if style.Classes != "" {
		return fmt.Sprintf(" class=%q", style.Classes)
	}
	if len(style.Decls) > 0 {
		return fmt.Sprintf(" class=%q", id.FileSlug)
	}
	return ""
}

// styleBlock serializes key/value declarations into a style block whose
// single rule targets the component slug. Returns the empty string when
// there is nothing to emit.
func styleBlock(id Identity, style Style, open, indent string) string {
	if len(style.Decls) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(open + "\n")
	fmt.Fprintf(&b, "%s.%s {\n", indent, id.FileSlug)
	for _, d := range style.Decls {
		fmt.Fprintf(&b, "%s  %s: %s;\n", indent, d.Property, d.Value)
	}
	fmt.Fprintf(&b, "%s}\n", indent)
	b.WriteString("</style>\n")
	return b.String()
}
