package generator

import (
	"testing"
)

func TestBuildManifest(t *testing.T) {
	identities := []Identity{
		{DisplayName: "SubmitButton", FileSlug: "submit-button"},
		{DisplayName: "Card", FileSlug: "card"},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "react references slugs without extension",
			cfg:  Config{Framework: React},
			want: "export { default as SubmitButton } from './submit-button';\n" +
				"export { default as Card } from './card';\n",
		},
		{
			name: "react typescript keeps the same plain manifest",
			cfg:  Config{Framework: React, TypeScript: true},
			want: "export { default as SubmitButton } from './submit-button';\n" +
				"export { default as Card } from './card';\n",
		},
		{
			name: "vue spells out the extension",
			cfg:  Config{Framework: Vue},
			want: "export { default as SubmitButton } from './submit-button.vue';\n" +
				"export { default as Card } from './card.vue';\n",
		},
		{
			name: "svelte spells out the extension",
			cfg:  Config{Framework: Svelte},
			want: "export { default as SubmitButton } from './submit-button.svelte';\n" +
				"export { default as Card } from './card.svelte';\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildManifest(identities, tt.cfg)
			if got != tt.want {
				t.Errorf("BuildManifest() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestBuildManifestCollapsesDuplicateSlugs(t *testing.T) {
	// "Button" and "Button!!" sanitize to the same slug; the manifest keeps
	// the first occurrence and silently drops the rest.
	identities := []Identity{
		{DisplayName: "Button", FileSlug: "button"},
		{DisplayName: "Button", FileSlug: "button"},
		{DisplayName: "Card", FileSlug: "card"},
	}

	got := BuildManifest(identities, Config{Framework: React})
	want := "export { default as Button } from './button';\n" +
		"export { default as Card } from './card';\n"

	if got != want {
		t.Errorf("BuildManifest() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildManifestEmpty(t *testing.T) {
	if got := BuildManifest(nil, Config{Framework: React}); got != "" {
		t.Errorf("BuildManifest(nil) = %q, want empty", got)
	}
}
