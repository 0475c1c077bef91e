package domain

import (
	"strings"
	"time"
)

// Status defines the lifecycle phase of an analysis session.
type Status string

const (
	// StatusIdle means no generation is running and no prior result is held.
	StatusIdle Status = "idle"
	// StatusLoading means a generation request is outstanding.
	StatusLoading Status = "loading"
	// StatusReady means a generated tree is available for display and export.
	StatusReady Status = "ready"
)

// Session is the snapshot of one analysis session. Transitions between
// snapshots happen through the pure functions Begin, Complete and Fail so the
// state machine is testable independently of any UI layer.
type Session struct {
	ID          string    `json:"id"`
	Incident    string    `json:"incident"`
	Level       int       `json:"level"`
	Status      Status    `json:"status"`
	Nodes       Tree      `json:"nodes,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`
}

// NewSession creates a clean idle session.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Status: StatusIdle,
	}
}

// ViewState is the UI-agnostic projection of a session. Any front end
// (web page, terminal, MCP client) renders these three flags however it likes.
type ViewState struct {
	Loading       bool `json:"loading"`
	ChartVisible  bool `json:"chart_visible"`
	ExportEnabled bool `json:"export_enabled"`
}

// View projects the session onto its view state.
func (s *Session) View() ViewState {
	return ViewState{
		Loading:       s.Status == StatusLoading,
		ChartVisible:  s.Status == StatusReady,
		ExportEnabled: s.Status == StatusReady,
	}
}

// Begin validates the submitted inputs and transitions the session to Loading.
// On validation failure the session is returned unchanged alongside the error:
// no provider call may be made and prior diagram state is preserved.
// A submission while a previous one is still loading is rejected with
// ErrGenerationInFlight rather than superseding it.
func Begin(s *Session, incident string, level int) (*Session, error) {
	if strings.TrimSpace(incident) == "" {
		return s, ErrEmptyIncident
	}
	if s.Status == StatusLoading {
		return s, ErrGenerationInFlight
	}

	next := *s
	next.Incident = incident
	next.Level = level
	next.Status = StatusLoading
	// The previous chart is hidden while loading; the old tree is dropped so a
	// failure cannot resurrect stale data.
	next.Nodes = nil
	next.GeneratedAt = time.Time{}
	return &next, nil
}

// Complete transitions a loading session to Ready, swapping in the freshly
// generated tree atomically.
func Complete(s *Session, nodes Tree, at time.Time) *Session {
	next := *s
	next.Status = StatusReady
	next.Nodes = nodes
	next.GeneratedAt = at
	return &next
}

// Fail transitions a loading session back to Idle. The chart stays hidden and
// export stays disabled; the loading flag is cleared unconditionally.
func Fail(s *Session) *Session {
	next := *s
	next.Status = StatusIdle
	next.Nodes = nil
	next.GeneratedAt = time.Time{}
	return &next
}
