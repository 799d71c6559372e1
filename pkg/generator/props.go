package generator

import (
	"fmt"
	"math"
	"regexp"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Typography defaults applied when a node carries literal text content but no
// explicit style value. Nodes without text content get no typography at all.
const (
	defaultFontSize   = 14
	defaultFontWeight = 400
)

// placeholderPattern matches ${identifier} template placeholders inside text
// content, capturing the identifier.
var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// PropertyRecord is the normalized property and style model extracted from one
// node. Absent fields stay nil (or empty) and are omitted downstream; the
// extractor never substitutes zeros for missing design data.
//
// Dimensions keep full design-space precision; rounding happens at style
// synthesis, not here.
type PropertyRecord struct {
	Width          *float64
	Height         *float64
	BackgroundHex  string   // "#RRGGBB" uppercase, empty when absent
	FontSize       *float64
	FontWeight     *float64
	TemplateInputs []string // distinct ${name} placeholders, first-seen order
}

// ExtractProperties derives a PropertyRecord from a node and, for placeholder
// detection, its immediate children. Every rule applies independently: a
// missing or malformed attribute means the corresponding field is absent,
// never an error.
func ExtractProperties(node *figma.Node) PropertyRecord {
	var rec PropertyRecord

	if box := node.AbsoluteBoundingBox; box != nil {
		width, height := box.Width, box.Height
		rec.Width, rec.Height = &width, &height
	}

	// Background comes from the first fill only, and only when it is a solid
	// paint with a color. Gradients, images, and all later fills are ignored.
	if len(node.Fills) > 0 {
		if fill := node.Fills[0]; fill.Type == "SOLID" && fill.Color != nil {
			rec.BackgroundHex = colorToHex(fill.Color)
		}
	}

	if node.Style != nil {
		if node.Style.FontSize > 0 {
			size := node.Style.FontSize
			rec.FontSize = &size
		}
		if node.Style.FontWeight > 0 {
			weight := node.Style.FontWeight
			rec.FontWeight = &weight
		}
	}

	// Text-bearing nodes get typography defaults for whatever the style left out.
	if node.Characters != "" {
		if rec.FontSize == nil {
			size := float64(defaultFontSize)
			rec.FontSize = &size
		}
		if rec.FontWeight == nil {
			weight := float64(defaultFontWeight)
			rec.FontWeight = &weight
		}
	}

	rec.TemplateInputs = collectTemplateInputs(node)

	return rec
}

// collectTemplateInputs scans the node's immediate TEXT children for
// ${identifier} placeholders and returns the distinct identifiers in
// first-seen order.
func collectTemplateInputs(node *figma.Node) []string {
	var inputs []string
	seen := make(map[string]bool)

	for i := range node.Children {
		child := &node.Children[i]
		if child.Type != "TEXT" || child.Characters == "" {
			continue
		}
		for _, match := range placeholderPattern.FindAllStringSubmatch(child.Characters, -1) {
			if name := match[1]; !seen[name] {
				seen[name] = true
				inputs = append(inputs, name)
			}
		}
	}

	return inputs
}

// colorToHex converts a Figma RGBA color (with 0-1 float values) to uppercase
// hexadecimal format (#RRGGBB). Channels are rounded and clamped to [0, 255].
func colorToHex(color *figma.Color) string {
	return fmt.Sprintf("#%02X%02X%02X",
		channelTo255(color.R),
		channelTo255(color.G),
		channelTo255(color.B))
}

func channelTo255(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
