// Package svg renders a laid-out cause-effect tree as a self-contained SVG
// document: one rounded rectangle per node, orthogonal connectors with
// arrowheads from parent to child, and a viewBox fitted to the content so the
// image scales to its container.
package svg

import (
	"fmt"
	"html"
	"strings"

	"github.com/aretw0/ishikawa/internal/layout"
	"github.com/aretw0/ishikawa/pkg/domain"
)

// Renderer implements ports.Renderer on top of the layout engine.
type Renderer struct {
	cfg layout.Config
}

// NewRenderer creates a renderer with the default geometry.
func NewRenderer() *Renderer {
	return &Renderer{cfg: layout.DefaultConfig()}
}

// NewRendererWithConfig creates a renderer with custom geometry.
func NewRendererWithConfig(cfg layout.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render lays out the tree and emits the SVG document.
func (r *Renderer) Render(tree domain.Tree) (string, error) {
	l, err := layout.Compute(tree, r.cfg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		l.Width, l.Height, l.Width, l.Height))

	sb.WriteString("  <style>\n")
	sb.WriteString("    .node-rect { fill: #ffffff; stroke: #1f2937; stroke-width: 1.5; }\n")
	sb.WriteString("    .root-rect { fill: #fee2e2; stroke: #991b1b; stroke-width: 2; }\n")
	sb.WriteString("    .node-text { font-family: Arial, sans-serif; font-size: 13px; fill: #111827; text-anchor: middle; }\n")
	sb.WriteString("    .edge { stroke: #4b5563; stroke-width: 1.5; fill: none; }\n")
	sb.WriteString("  </style>\n")
	sb.WriteString("  <defs>\n")
	sb.WriteString("    <marker id=\"arrow\" markerWidth=\"10\" markerHeight=\"7\" refX=\"9\" refY=\"3.5\" orient=\"auto\">\n")
	sb.WriteString("      <polygon points=\"0 0, 10 3.5, 0 7\" fill=\"#4b5563\" />\n")
	sb.WriteString("    </marker>\n")
	sb.WriteString("  </defs>\n")

	// Edges first so rectangles sit on top of connector ends.
	for _, n := range tree {
		if n.IsRoot() {
			continue
		}
		r.writeEdge(&sb, l, n)
	}
	for _, n := range tree {
		r.writeNode(&sb, l, n)
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// writeEdge draws an orthogonal connector from the parent's bottom edge to the
// child's top edge: down to the midpoint between layers, across, then down.
func (r *Renderer) writeEdge(sb *strings.Builder, l *layout.Layout, n domain.TreeNode) {
	px, _ := l.Center(n.Parent)
	cx, _ := l.Center(n.Key)

	pPos := l.Positions[n.Parent]
	cPos := l.Positions[n.Key]
	startY := pPos.Y + r.cfg.NodeHeight
	endY := cPos.Y
	midY := (startY + endY) / 2

	sb.WriteString(fmt.Sprintf(
		"  <path class=\"edge\" marker-end=\"url(#arrow)\" d=\"M %.1f %.1f V %.1f H %.1f V %.1f\" />\n",
		px, startY, midY, cx, endY))
}

func (r *Renderer) writeNode(sb *strings.Builder, l *layout.Layout, n domain.TreeNode) {
	p := l.Positions[n.Key]
	class := "node-rect"
	if n.IsRoot() {
		class = "root-rect"
	}

	sb.WriteString(fmt.Sprintf(
		"  <rect class=\"%s\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"6\" />\n",
		class, p.X, p.Y, r.cfg.NodeWidth, r.cfg.NodeHeight))

	cx, cy := l.Center(n.Key)
	sb.WriteString(fmt.Sprintf(
		"  <text class=\"node-text\" x=\"%.1f\" y=\"%.1f\">%s</text>\n",
		cx, cy+4, html.EscapeString(truncate(n.Name, 26))))
}

// truncate keeps labels inside the fixed node width.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
