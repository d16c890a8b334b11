package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/helixsleuth/internal/model"
)

// Message types.
type tickMsg time.Time

// List item types.
type reportItem struct {
	report m.Report
}

func (r reportItem) FilterValue() string {
	notation := "none"
	if r.report.Analysis.Outcome != nil {
		notation = r.report.Analysis.Outcome.Notation
	}

	return fmt.Sprintf("%s %s %s", r.report.ID, notation, r.report.Analysis.Sequence)
}
