// Package layout arranges a cause-effect tree for rendering: root at the top,
// children centered beneath their parent, fixed inter-layer spacing, canvas
// sized to fit the content.
package layout

import (
	"fmt"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// Config holds the layout geometry.
type Config struct {
	NodeWidth  float64
	NodeHeight float64
	HGap       float64 // horizontal gap between sibling subtrees
	VGap       float64 // vertical gap between layers
	Padding    float64 // canvas margin on all sides
}

// DefaultConfig returns the geometry used by the bundled renderer.
func DefaultConfig() Config {
	return Config{
		NodeWidth:  170,
		NodeHeight: 48,
		HGap:       28,
		VGap:       56,
		Padding:    24,
	}
}

// Position is the top-left corner of a laid-out node.
type Position struct {
	X float64
	Y float64
}

// Layout is the computed arrangement of one tree.
type Layout struct {
	Config    Config
	Positions map[int]Position // node key -> top-left corner
	Width     float64          // canvas width including padding
	Height    float64          // canvas height including padding
}

// Compute lays out a validated tree. Each subtree is assigned a horizontal
// span wide enough for all its descendants; children are centered under their
// parent, layer by layer from the root.
func Compute(tree domain.Tree, cfg Config) (*Layout, error) {
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	l := &Layout{
		Config:    cfg,
		Positions: make(map[int]Position, len(tree)),
	}

	root := tree.Root()
	span := l.subtreeSpan(tree, root.Key)
	l.place(tree, root.Key, cfg.Padding, cfg.Padding, span)

	depth := tree.Depth()
	l.Width = span + 2*cfg.Padding
	l.Height = float64(depth)*cfg.NodeHeight + float64(depth-1)*cfg.VGap + 2*cfg.Padding
	return l, nil
}

// subtreeSpan returns the horizontal span needed by the subtree rooted at key.
func (l *Layout) subtreeSpan(tree domain.Tree, key int) float64 {
	children := tree.Children(key)
	if len(children) == 0 {
		return l.Config.NodeWidth
	}

	total := 0.0
	for i, c := range children {
		if i > 0 {
			total += l.Config.HGap
		}
		total += l.subtreeSpan(tree, c.Key)
	}
	if total < l.Config.NodeWidth {
		total = l.Config.NodeWidth
	}
	return total
}

// place positions the node centered in [x, x+span) at depth y, then recurses.
func (l *Layout) place(tree domain.Tree, key int, x, y, span float64) {
	l.Positions[key] = Position{
		X: x + (span-l.Config.NodeWidth)/2,
		Y: y,
	}

	children := tree.Children(key)
	if len(children) == 0 {
		return
	}

	childTotal := 0.0
	spans := make([]float64, len(children))
	for i, c := range children {
		spans[i] = l.subtreeSpan(tree, c.Key)
		childTotal += spans[i]
	}
	childTotal += float64(len(children)-1) * l.Config.HGap

	cx := x + (span-childTotal)/2
	cy := y + l.Config.NodeHeight + l.Config.VGap
	for i, c := range children {
		l.place(tree, c.Key, cx, cy, spans[i])
		cx += spans[i] + l.Config.HGap
	}
}

// Center returns the center point of a laid-out node.
func (l *Layout) Center(key int) (float64, float64) {
	p := l.Positions[key]
	return p.X + l.Config.NodeWidth/2, p.Y + l.Config.NodeHeight/2
}
