// Package graph exports a cause-effect tree as Mermaid flowchart syntax, for
// embedding in markdown reports and terminals that render Mermaid.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (top-down) from a tree.
// It applies semantic styling:
// - Root (the incident): ((Circle))
// - Branch nodes (causes/effects with sub-nodes): [Rectangle]
// - Leaves: [/Parallelogram/]
func GenerateMermaid(tree domain.Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range tree {
		safeID := mermaidID(node.Key)

		opener, closer := "[", "]"
		switch {
		case node.IsRoot():
			opener, closer = "((", "))"
		case len(tree.Children(node.Key)) == 0:
			opener, closer = "[/", "/]"
		}

		// Escape double quotes in labels for Mermaid
		label := strings.ReplaceAll(node.Name, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		if !node.IsRoot() {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidID(node.Parent), safeID))
		}
	}

	sb.WriteString("\n    classDef incident fill:#fee2e2,stroke:#991b1b,stroke-width:2px,color:#000;\n")
	if root := tree.Root(); root.Key != 0 {
		sb.WriteString(fmt.Sprintf("    class %s incident;\n", mermaidID(root.Key)))
	}

	return sb.String()
}

func mermaidID(key int) string {
	return fmt.Sprintf("n%d", key)
}
