package figmacodegen

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// Options configures the generation run.
type Options struct {
	AccessToken string
	FileURL     string              // Figma file URL
	NodeIDs     []string            // empty = whole document
	Framework   generator.Framework // target dialect
	TypeScript  bool                // TypeScript surface annotations
	Tailwind    bool                // utility classes instead of style declarations
	OutputDir   string              // consumed by the caller when writing files
	Logger      Logger              // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	FileName string // Figma file name
	Output   *generator.Output
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the fetch-and-generate pipeline and returns the result.
// Fetching owns all network and auth failure handling; once a document tree
// is in memory, generation is a pure function of the tree and configuration.
// A run that finds no qualifying nodes returns generator.ErrNoComponents.
func Run(opts Options) (*Result, error) {
	// Extract file key from URL.
	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	// Node IDs come from the explicit option or from the URL itself.
	var targetNodeIDs []string
	if len(opts.NodeIDs) > 0 {
		opts.logInfo("Using %d explicit node ID(s)", len(opts.NodeIDs))
		targetNodeIDs = opts.NodeIDs
	} else {
		opts.logInfo("Checking URL for node IDs...")
		urlNodeIDs, err := figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
		if len(urlNodeIDs) > 0 {
			targetNodeIDs = urlNodeIDs
			opts.logInfo("Found %d node(s) in URL", len(targetNodeIDs))
		} else {
			opts.logInfo("No node IDs found, will generate from the entire file")
		}
	}

	opts.logInfo("Authenticating with Figma API...")
	client := figma.NewClient(opts.AccessToken)

	var roots []*figma.Node
	var fileName string

	// Fetch strategy depends on whether specific nodes were requested.
	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch nodes: %w", err)
		}
		opts.logInfo("Retrieved %d node(s)", len(nodesResp.Nodes))
		fileName = nodesResp.Name

		for _, id := range targetNodeIDs {
			nodeData, exists := nodesResp.Nodes[id]
			if !exists {
				opts.logWarn("Node %s not found in file, skipping", id)
				continue
			}
			doc := nodeData.Document
			roots = append(roots, &doc)
		}
	} else {
		opts.logInfo("Fetching file data from Figma...")
		fileResp, err := client.GetFile(fileKey)
		if err != nil {
			return nil, fmt.Errorf("fetch file: %w", err)
		}
		opts.logInfo("File: %s", fileResp.Name)
		fileName = fileResp.Name
		roots = append(roots, &fileResp.Document)
	}

	cfg := generator.Config{
		Framework:  opts.Framework,
		TypeScript: opts.TypeScript,
		Tailwind:   opts.Tailwind,
	}

	opts.logInfo("Generating %s components...", cfg.Framework)
	output, err := generator.Generate(roots, cfg)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Generated %d component(s)", len(output.Components))

	return &Result{
		FileName: fileName,
		Output:   output,
	}, nil
}

// ParseNodeIDs parses a comma-separated string of node IDs into a slice,
// normalizing the URL dash form (11933-305884) to the API colon form
// (11933:305884) and removing duplicates, matching how node IDs pasted
// straight from a Figma URL are treated.
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		// URL-encoded node IDs use a dash where the API expects a colon.
		if !strings.Contains(trimmed, ":") {
			trimmed = strings.Replace(trimmed, "-", ":", 1)
		}
		if !seen[trimmed] {
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}

	return result
}
