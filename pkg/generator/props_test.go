package generator

import (
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

func TestExtractPropertiesDimensions(t *testing.T) {
	node := figma.Node{
		ID:   "1:1",
		Name: "Submit Button",
		Type: "FRAME",
		AbsoluteBoundingBox: &figma.Rectangle{
			Width:  100.4,
			Height: 40,
		},
	}

	rec := ExtractProperties(&node)

	if rec.Width == nil || *rec.Width != 100.4 {
		t.Errorf("Width = %v, want 100.4 (extraction keeps full precision)", rec.Width)
	}
	if rec.Height == nil || *rec.Height != 40 {
		t.Errorf("Height = %v, want 40", rec.Height)
	}

	bare := figma.Node{ID: "1:2", Name: "No Box", Type: "FRAME"}
	rec = ExtractProperties(&bare)
	if rec.Width != nil || rec.Height != nil {
		t.Errorf("missing bounding box must leave dimensions absent, got %v/%v", rec.Width, rec.Height)
	}
}

func TestExtractPropertiesBackground(t *testing.T) {
	tests := []struct {
		name  string
		fills []figma.Paint
		want  string
	}{
		{
			name: "first solid fill converts to uppercase hex",
			fills: []figma.Paint{
				{Type: "SOLID", Color: &figma.Color{R: 0.4, G: 0.4, B: 0.94, A: 1}},
			},
			want: "#6666F0",
		},
		{
			name: "channels round to nearest",
			fills: []figma.Paint{
				{Type: "SOLID", Color: &figma.Color{R: 1, G: 0, B: 0.5, A: 1}},
			},
			want: "#FF0080",
		},
		{
			name: "out-of-range channels clamp",
			fills: []figma.Paint{
				{Type: "SOLID", Color: &figma.Color{R: 1.2, G: -0.1, B: 0, A: 1}},
			},
			want: "#FF0000",
		},
		{
			name:  "no fills means no background",
			fills: nil,
			want:  "",
		},
		{
			name: "non-solid first fill means no background even with solid later",
			fills: []figma.Paint{
				{Type: "GRADIENT_LINEAR"},
				{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1, A: 1}},
			},
			want: "",
		},
		{
			name: "solid fill without color means no background",
			fills: []figma.Paint{
				{Type: "SOLID"},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := figma.Node{ID: "1:1", Name: "Box", Type: "FRAME", Fills: tt.fills}
			rec := ExtractProperties(&node)
			if rec.BackgroundHex != tt.want {
				t.Errorf("BackgroundHex = %q, want %q", rec.BackgroundHex, tt.want)
			}
		})
	}
}

func TestExtractPropertiesTypography(t *testing.T) {
	tests := []struct {
		name       string
		node       figma.Node
		wantSize   *float64
		wantWeight *float64
	}{
		{
			name: "text node without style gets defaults",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Click me",
			},
			wantSize:   ptr(14),
			wantWeight: ptr(400),
		},
		{
			name: "explicit style wins over defaults",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Heading",
				Style:      &figma.TypeStyle{FontSize: 24, FontWeight: 700},
			},
			wantSize:   ptr(24),
			wantWeight: ptr(700),
		},
		{
			name: "partial style is defaulted per field",
			node: figma.Node{
				Type:       "TEXT",
				Characters: "Label",
				Style:      &figma.TypeStyle{FontSize: 18},
			},
			wantSize:   ptr(18),
			wantWeight: ptr(400),
		},
		{
			name: "node without text content gets no typography",
			node: figma.Node{
				Type: "FRAME",
			},
			wantSize:   nil,
			wantWeight: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ExtractProperties(&tt.node)
			if !floatPtrEqual(rec.FontSize, tt.wantSize) {
				t.Errorf("FontSize = %v, want %v", deref(rec.FontSize), deref(tt.wantSize))
			}
			if !floatPtrEqual(rec.FontWeight, tt.wantWeight) {
				t.Errorf("FontWeight = %v, want %v", deref(rec.FontWeight), deref(tt.wantWeight))
			}
		})
	}
}

func TestExtractPropertiesTemplateInputs(t *testing.T) {
	tests := []struct {
		name     string
		children []figma.Node
		want     []string
	}{
		{
			name: "single placeholder",
			children: []figma.Node{
				{Type: "TEXT", Characters: "Hello, ${userName}"},
			},
			want: []string{"userName"},
		},
		{
			name: "multiple placeholders in one child keep order",
			children: []figma.Node{
				{Type: "TEXT", Characters: "${greeting}, ${userName}!"},
			},
			want: []string{"greeting", "userName"},
		},
		{
			name: "duplicates across children are removed, first-seen order",
			children: []figma.Node{
				{Type: "TEXT", Characters: "${count} items"},
				{Type: "TEXT", Characters: "${label}: ${count}"},
			},
			want: []string{"count", "label"},
		},
		{
			name: "non-TEXT children are not scanned",
			children: []figma.Node{
				{Type: "FRAME", Characters: "${ignored}"},
				{Type: "TEXT", Characters: "${kept}"},
			},
			want: []string{"kept"},
		},
		{
			name: "plain text yields no inputs",
			children: []figma.Node{
				{Type: "TEXT", Characters: "Click me"},
			},
			want: nil,
		},
		{
			name:     "no children yields no inputs",
			children: nil,
			want:     nil,
		},
		{
			name: "malformed placeholders are ignored",
			children: []figma.Node{
				{Type: "TEXT", Characters: "${} $name {name} ${valid}"},
			},
			want: []string{"valid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := figma.Node{ID: "1:1", Name: "Card", Type: "COMPONENT", Children: tt.children}
			rec := ExtractProperties(&node)
			if len(rec.TemplateInputs) != len(tt.want) {
				t.Fatalf("TemplateInputs = %v, want %v", rec.TemplateInputs, tt.want)
			}
			for i := range tt.want {
				if rec.TemplateInputs[i] != tt.want[i] {
					t.Errorf("TemplateInputs[%d] = %q, want %q", i, rec.TemplateInputs[i], tt.want[i])
				}
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
