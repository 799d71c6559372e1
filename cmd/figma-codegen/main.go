package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	figmacodegen "github.com/hellenic-development/figma-codegen"
	"github.com/hellenic-development/figma-codegen/pkg/generator"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	figmaURL    string
	accessToken string
	outputDir   string
	nodeIDs     string
	framework   string
	typescript  bool
	tailwind    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-codegen",
		Short: "Generate UI components from Figma files",
		Long:  "A tool to generate React, Vue, or Svelte component source from Figma component and frame nodes via the Figma API",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (falls back to FIGMA_TOKEN, .env files honored)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "components", "Output directory for generated files")
	rootCmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to generate (optional, generates from specific nodes instead of the entire file)")
	rootCmd.Flags().StringVarP(&framework, "framework", "f", "react", "Target framework: react, vue, svelte")
	rootCmd.Flags().BoolVar(&typescript, "typescript", false, "Emit TypeScript annotations")
	rootCmd.Flags().BoolVar(&tailwind, "tailwind", false, "Emit Tailwind utility classes instead of style declarations")

	rootCmd.MarkFlagRequired("url")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-codegen version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🧩 Figma Component Generator")
	cyan.Println("============================")
	cyan.Println()

	// Token resolution: flag first, then environment (with .env support).
	if accessToken == "" {
		godotenv.Load()
		accessToken = os.Getenv("FIGMA_TOKEN")
	}
	if accessToken == "" {
		red.Println("Error: no access token provided (use --token or set FIGMA_TOKEN)")
		os.Exit(1)
	}

	fw, err := generator.ParseFramework(framework)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Parse node IDs from CLI string.
	var parsedNodeIDs []string
	if nodeIDs != "" {
		parsedNodeIDs = figmacodegen.ParseNodeIDs(nodeIDs)
	}

	opts := figmacodegen.Options{
		AccessToken: accessToken,
		FileURL:     figmaURL,
		NodeIDs:     parsedNodeIDs,
		Framework:   fw,
		TypeScript:  typescript,
		Tailwind:    tailwind,
		OutputDir:   outputDir,
		Logger:      &cliLogger{},
	}

	result, err := figmacodegen.Run(opts)
	if err != nil {
		if errors.Is(err, generator.ErrNoComponents) {
			color.New(color.FgYellow).Println("\nNo visible component or frame nodes found; 0 components generated.")
			return
		}
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	out := result.Output

	// Write generated files.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	green.Printf("\n💾 Writing %d component(s) to %s...\n", len(out.Components), outputDir)
	for _, comp := range out.Components {
		path := filepath.Join(outputDir, comp.FileName)
		if err := os.WriteFile(path, []byte(comp.Source), 0644); err != nil {
			red.Printf("✗ %s: %v\n", comp.FileName, err)
			os.Exit(1)
		}
		fmt.Printf("  • %s (%s)\n", comp.FileName, comp.Identity.DisplayName)
	}

	manifestPath := filepath.Join(outputDir, out.ManifestFileName)
	if err := os.WriteFile(manifestPath, []byte(out.ManifestSource), 0644); err != nil {
		red.Printf("✗ %s: %v\n", out.ManifestFileName, err)
		os.Exit(1)
	}
	fmt.Printf("  • %s\n", out.ManifestFileName)

	// Display generation stats.
	cyan.Println("\n📊 Generation Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Components: %d\n", len(out.Components))
	fmt.Printf("  • Framework: %s\n", fw)
	fmt.Printf("  • TypeScript: %t\n", typescript)
	fmt.Printf("  • Tailwind: %t\n", tailwind)

	green.Printf("\n✨ Successfully generated %d component(s) in %s\n\n", len(out.Components), outputDir)
}

// cliLogger implements figmacodegen.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
