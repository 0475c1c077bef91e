package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/presentation/tui"
	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMarkdown(t *testing.T) {
	session := domain.NewSession("s1")
	loading, err := domain.Begin(session, "Fire in warehouse", 2)
	require.NoError(t, err)
	ready := domain.Complete(loading, mockdata.Catalog()["fire-2"],
		time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC))

	report, err := domain.NewReport(ready)
	require.NoError(t, err)

	md := tui.ReportMarkdown(report)
	assert.Contains(t, md, "# Ishikawa Incident Analysis - Fire in warehouse")
	assert.Contains(t, md, "**Category:** fire")
	assert.Contains(t, md, "**Analysis level:** 2")
	assert.Contains(t, md, "2026-08-31 09:30:00 UTC")

	// Nested bullets: sub-cause indented one level under its cause.
	assert.Contains(t, md, "- Electrical Short Circuit\n    - Aging Wiring")

	for _, n := range report.Nodes {
		assert.Contains(t, md, "- "+n.Name)
	}
}

func TestReportMarkdownDepthOrdering(t *testing.T) {
	tree := mockdata.Synthesize("Forklift collision", 3)
	ready := domain.Complete(domain.NewSession("s1"), tree, time.Now())
	ready.Incident = "Forklift collision"
	ready.Level = 3

	report, err := domain.NewReport(ready)
	require.NoError(t, err)

	md := tui.ReportMarkdown(report)
	rootIdx := strings.Index(md, "- Forklift collision")
	subIdx := strings.Index(md, "- Sub-cause 1.2")
	require.GreaterOrEqual(t, rootIdx, 0)
	require.GreaterOrEqual(t, subIdx, 0)
	assert.Less(t, rootIdx, subIdx, "root listed before deepest branch")
}
