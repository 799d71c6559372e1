package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Style is the synthesized presentation for one component: either a Tailwind
// utility-class string or an ordered list of declarations, never both.
type Style struct {
	Classes string
	Decls   []Decl
}

// Decl is one key/value style declaration. The mapping is dialect-agnostic;
// each renderer owns the serialization into its inline-style or stylesheet
// syntax.
type Decl struct {
	Property string
	Value    string
}

// Synthesize converts a property record into the styling form selected by the
// configuration. Pixel values are rounded half-away-from-zero at this stage;
// fractional design-space values are never emitted raw. Absent record fields
// are omitted entirely, with no placeholder tokens.
func Synthesize(rec PropertyRecord, cfg Config) Style {
	if cfg.Tailwind {
		return Style{Classes: utilityClasses(rec)}
	}
	return Style{Decls: declarations(rec)}
}

// utilityClasses builds the space-joined utility-class string in fixed order:
// width, height, background, font size.
func utilityClasses(rec PropertyRecord) string {
	var classes []string

	if rec.Width != nil {
		classes = append(classes, fmt.Sprintf("w-[%dpx]", px(*rec.Width)))
	}
	if rec.Height != nil {
		classes = append(classes, fmt.Sprintf("h-[%dpx]", px(*rec.Height)))
	}
	if rec.BackgroundHex != "" {
		classes = append(classes, fmt.Sprintf("bg-[%s]", rec.BackgroundHex))
	}
	if rec.FontSize != nil {
		// Sizes beyond the numeric scale use an arbitrary-value utility.
		if *rec.FontSize > 16 {
			classes = append(classes, fmt.Sprintf("text-[%dpx]", px(*rec.FontSize)))
		} else {
			classes = append(classes, fmt.Sprintf("text-%d", px(*rec.FontSize/4)))
		}
	}

	return strings.Join(classes, " ")
}

// declarations builds the ordered key/value mapping: width, height,
// background-color, font-size, font-weight.
func declarations(rec PropertyRecord) []Decl {
	var decls []Decl

	if rec.Width != nil {
		decls = append(decls, Decl{"width", fmt.Sprintf("%dpx", px(*rec.Width))})
	}
	if rec.Height != nil {
		decls = append(decls, Decl{"height", fmt.Sprintf("%dpx", px(*rec.Height))})
	}
	if rec.BackgroundHex != "" {
		decls = append(decls, Decl{"background-color", rec.BackgroundHex})
	}
	if rec.FontSize != nil {
		decls = append(decls, Decl{"font-size", fmt.Sprintf("%dpx", px(*rec.FontSize))})
	}
	if rec.FontWeight != nil {
		decls = append(decls, Decl{"font-weight", strconv.Itoa(px(*rec.FontWeight))})
	}

	return decls
}

// px rounds a design-space value to the nearest whole pixel,
// half away from zero.
func px(v float64) int {
	return int(math.Round(v))
}
