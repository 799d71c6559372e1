// Package figmacodegen generates UI component source from Figma files via
// the Figma API. Every visible COMPONENT or FRAME node becomes one component
// file in the chosen dialect (React, Vue, or Svelte), and an index manifest
// re-exports everything generated.
//
// The CLI lives in cmd/figma-codegen; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmacodegen:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	result, err := figmacodegen.Run(figmacodegen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	    Framework:   generator.React,
//	    TypeScript:  true,
//	    Tailwind:    true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, comp := range result.Output.Components {
//	    os.WriteFile(filepath.Join("components", comp.FileName), []byte(comp.Source), 0644)
//	}
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Node-scoped generation
//
// To generate from specific frames or components rather than the entire file,
// populate [Options.NodeIDs] or include node-id query parameters in the
// Figma URL.
//
// # Template inputs
//
// Text children containing ${name} placeholders promote each distinct name
// to an optional component prop, typed string | number in every dialect.
package figmacodegen
