// Package generator translates Figma document nodes into UI component source
// text. The pipeline per qualifying node is Identify -> ExtractProperties ->
// Synthesize -> Render, followed by one BuildManifest call for the run.
// Every operation is a pure transformation of in-memory data; re-running
// generation on the same tree and configuration produces byte-identical output.
package generator

import (
	"errors"
	"fmt"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// ErrNoComponents reports that no visible COMPONENT or FRAME node was found
// in the supplied tree. Callers should report zero components generated
// rather than treat this as fatal.
var ErrNoComponents = errors.New("no visible component or frame nodes found")

// Component is one generated source file.
type Component struct {
	Identity Identity
	FileName string // {fileSlug}.{ext}
	Source   string
}

// Output is the full result of one generation run: the ordered component
// files plus the re-export manifest.
type Output struct {
	Components       []Component
	ManifestFileName string
	ManifestSource   string
}

// Generate runs the translation pipeline over every qualifying node reachable
// from the given roots and builds the re-export manifest. Qualifying nodes
// are visible COMPONENT or FRAME nodes, collected in document order. Returns
// ErrNoComponents when nothing qualifies.
func Generate(roots []*figma.Node, cfg Config) (*Output, error) {
	nodes, err := CollectQualifying(roots)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, ErrNoComponents
	}

	var namer Namer
	identities := make([]Identity, 0, len(nodes))
	out := &Output{ManifestFileName: ManifestFileName}

	for _, node := range nodes {
		id := namer.Identify(node.Name)
		rec := ExtractProperties(node)
		style := Synthesize(rec, cfg)

		identities = append(identities, id)
		out.Components = append(out.Components, Component{
			Identity: id,
			FileName: id.FileSlug + "." + cfg.Extension(),
			Source:   Render(id, rec, style, node.Children, cfg),
		})
	}

	out.ManifestSource = BuildManifest(identities, cfg)

	return out, nil
}

// walkFrame is one explicit-stack entry: entering a node's subtree or, with
// enter false, leaving it once every descendant has been processed.
type walkFrame struct {
	node  *figma.Node
	enter bool
}

// CollectQualifying walks the trees in document order (depth-first, parent
// before children) and returns every visible COMPONENT or FRAME node. The
// walk uses an explicit stack so traversal depth never couples to call-stack
// depth. A node whose ID matches one still on the current ancestor path
// aborts the walk instead of looping forever on a cyclic document; the same
// node appearing in separate branches (overlapping fetch roots, shared
// subtrees) is legal and traversed each time.
func CollectQualifying(roots []*figma.Node) ([]*figma.Node, error) {
	var qualifying []*figma.Node
	onPath := make(map[string]bool)

	stack := make([]walkFrame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, walkFrame{node: roots[i], enter: true})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := frame.node

		if !frame.enter {
			if node.ID != "" {
				delete(onPath, node.ID)
			}
			continue
		}

		if node.ID != "" {
			if onPath[node.ID] {
				return nil, fmt.Errorf("cycle detected at node %q (%s)", node.Name, node.ID)
			}
			onPath[node.ID] = true
		}

		if isQualifying(node) {
			qualifying = append(qualifying, node)
		}

		// The leave frame pops after the whole subtree, unwinding the path.
		stack = append(stack, walkFrame{node: node})
		// Push children in reverse so they pop in document order.
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{node: &node.Children[i], enter: true})
		}
	}

	return qualifying, nil
}

// isQualifying reports whether a node becomes a top-level generated component.
func isQualifying(node *figma.Node) bool {
	if node.Type != "COMPONENT" && node.Type != "FRAME" {
		return false
	}
	return node.Visible == nil || *node.Visible
}
