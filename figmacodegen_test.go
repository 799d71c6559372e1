package figmacodegen

import "testing"

func TestParseNodeIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single ID",
			input: "123:456",
			want:  []string{"123:456"},
		},
		{
			name:  "multiple IDs with spaces",
			input: "123:456, 789:012 ,345:678",
			want:  []string{"123:456", "789:012", "345:678"},
		},
		{
			name:  "empty parts skipped",
			input: "123:456,,789:012,",
			want:  []string{"123:456", "789:012"},
		},
		{
			name:  "URL dash form normalized to colon form",
			input: "11933-305884",
			want:  []string{"11933:305884"},
		},
		{
			name:  "mixed forms normalized and deduplicated",
			input: "123-456,123:456,789:012",
			want:  []string{"123:456", "789:012"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNodeIDs(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseNodeIDs(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseNodeIDs(%q) at index %d = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
