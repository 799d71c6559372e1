package generator

import "fmt"

// Framework selects the output dialect for generated components.
// The set is closed: every renderer dispatch is an exhaustive switch,
// so adding or removing a dialect is a single edit per switch.
type Framework int

const (
	// React emits function components with JSX markup.
	React Framework = iota
	// Vue emits single-file components with template, script, and style blocks.
	Vue
	// Svelte emits components with script, markup, and style sections.
	Svelte
)

// String returns the lowercase framework name as used on the CLI.
func (f Framework) String() string {
	switch f {
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	default:
		return "react"
	}
}

// ParseFramework converts a CLI framework name into a Framework value.
func ParseFramework(s string) (Framework, error) {
	switch s {
	case "react":
		return React, nil
	case "vue":
		return Vue, nil
	case "svelte":
		return Svelte, nil
	default:
		return React, fmt.Errorf("unknown framework %q (must be react, vue, or svelte)", s)
	}
}

// Config carries the settings for one generation run. It is passed explicitly
// into every operation that needs it; the generator keeps no process-wide state,
// so independent runs with different configurations never interfere.
type Config struct {
	Framework  Framework
	TypeScript bool // surface typing annotations only, never the data model
	Tailwind   bool // utility-class styling instead of key/value declarations
}

// Extension returns the component file extension for this configuration.
// Only the React dialect's extension depends on the TypeScript flag.
func (c Config) Extension() string {
	switch c.Framework {
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	default:
		if c.TypeScript {
			return "tsx"
		}
		return "jsx"
	}
}
