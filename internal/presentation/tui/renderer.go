package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour,
// auto-detecting light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ReportMarkdown builds the markdown form of an analysis report: header
// fields followed by the tree as a nested bullet list in insertion-depth
// order.
func ReportMarkdown(r *domain.Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Title()))
	sb.WriteString(fmt.Sprintf("- **Incident:** %s\n", r.Incident))
	sb.WriteString(fmt.Sprintf("- **Category:** %s\n", r.Category))
	sb.WriteString(fmt.Sprintf("- **Analysis level:** %d\n", r.Level))
	sb.WriteString(fmt.Sprintf("- **Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	sb.WriteString("## Cause-Effect Tree\n\n")
	writeBranch(&sb, r.Nodes, r.Nodes.Root().Key, 0)
	return sb.String()
}

func writeBranch(sb *strings.Builder, tree domain.Tree, key int, depth int) {
	node, ok := tree.Lookup(key)
	if !ok {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(fmt.Sprintf("- %s\n", node.Name))
	for _, c := range tree.Children(key) {
		writeBranch(sb, tree, c.Key, depth+1)
	}
}
