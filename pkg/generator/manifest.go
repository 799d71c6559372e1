package generator

import (
	"fmt"
	"strings"
)

// ManifestFileName is the fixed index file name emitted for every dialect.
// Re-export statements carry no type annotations, so the manifest stays a
// plain JavaScript module even in TypeScript configurations.
const ManifestFileName = "index.js"

// BuildManifest emits the re-export index for the identities rendered in this
// run, one statement per identity in encounter order. Identities sharing a
// file slug collapse to the first occurrence; later duplicates are silently
// dropped from the exports (known limitation, see the slug collision policy).
func BuildManifest(identities []Identity, cfg Config) string {
	var b strings.Builder
	seen := make(map[string]bool, len(identities))

	for _, id := range identities {
		if seen[id.FileSlug] {
			continue
		}
		seen[id.FileSlug] = true
		fmt.Fprintf(&b, "export { default as %s } from './%s%s';\n",
			id.DisplayName, id.FileSlug, manifestImportSuffix(cfg))
	}

	return b.String()
}

// manifestImportSuffix returns the import-path extension for the dialect.
// Vue and Svelte tooling resolve imports only with the extension spelled out;
// React bundlers resolve .jsx/.tsx without it.
func manifestImportSuffix(cfg Config) string {
	switch cfg.Framework {
	case Vue:
		return ".vue"
	case Svelte:
		return ".svelte"
	default:
		return ""
	}
}
