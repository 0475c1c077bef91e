package domain

import (
	"fmt"
	"time"
)

// Report is the header payload of an exported incident analysis.
type Report struct {
	Incident    string    `json:"incident"`
	Level       int       `json:"level"`
	Category    Category  `json:"category"`
	GeneratedAt time.Time `json:"generated_at"`
	Nodes       Tree      `json:"nodes"`
}

// NewReport builds the export payload for a ready session.
// It returns ErrNoDiagram when the session has no generated tree.
func NewReport(s *Session) (*Report, error) {
	if s == nil || s.Status != StatusReady || len(s.Nodes) == 0 {
		return nil, ErrNoDiagram
	}
	return &Report{
		Incident:    s.Incident,
		Level:       s.Level,
		Category:    Classify(s.Incident),
		GeneratedAt: s.GeneratedAt,
		Nodes:       s.Nodes,
	}, nil
}

// Title returns the report document title.
func (r *Report) Title() string {
	return fmt.Sprintf("Ishikawa Incident Analysis - %s", r.Incident)
}
