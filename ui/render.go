package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoj-submit/dmoj-submit/internal/grading"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

var (
	bold      = lipgloss.NewStyle().Bold(true)
	green     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellow    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	brightRed = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	red       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	gray      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	plain     = lipgloss.NewStyle()
)

type statusKind int

const (
	statusUnknown statusKind = iota
	statusAccepted
	statusPartial
	statusWrong
	statusFailed
	statusTimeout
	statusSkipped
)

var statusStyles = map[statusKind]lipgloss.Style{
	statusUnknown:  plain,
	statusAccepted: green,
	statusPartial:  yellow,
	statusWrong:    brightRed,
	statusFailed:   red,
	statusTimeout:  gray,
	statusSkipped:  gray,
}

// shortCircuitMark replaces the status of cases the judge never ran.
const shortCircuitMark = "—"

func classify(c *grading.Case) statusKind {
	switch c.Status {
	case grading.CodeAccepted:
		if c.Points == c.Total {
			return statusAccepted
		}
		return statusPartial
	case grading.CodeWrongAnswer:
		return statusWrong
	case grading.CodeTimeLimitExceeded:
		return statusTimeout
	case grading.CodeShortCircuited:
		return statusSkipped
	case grading.CodeMemoryLimitExceeded, grading.CodeOutputLimitExceeded,
		grading.CodeRuntimeError, grading.CodeInvalidReturn:
		return statusFailed
	default:
		return statusUnknown
	}
}

// RenderUnit formats one display row, mirroring the judge's own test case table.
func RenderUnit(u grading.DisplayUnit) string {
	switch {
	case u.Unit.Batch != nil:
		title := bold.Render(fmt.Sprintf("Batch #%d", u.Ordinal))
		return fmt.Sprintf("%s (?/%.0f points)", title, u.Unit.Batch.Total)
	case u.Unit.Case != nil:
		return renderCase(u.Batched, u.Ordinal, u.Unit.Case)
	default:
		return ""
	}
}

func renderCase(batched bool, ordinal int, c *grading.Case) string {
	// '#' + ':' + up to 3 digits
	num := fmt.Sprintf("%-5s", fmt.Sprintf("#%d:", ordinal))

	var title string
	if batched {
		title = "  Case " + num
	} else {
		title = bold.Render("Test case " + num)
	}

	kind := classify(c)
	status := c.Status
	switch kind {
	case statusSkipped:
		status = shortCircuitMark
	case statusUnknown:
		logger.Warn("unexpected case status code", zap.String("status", c.Status))
	}

	parts := []string{title, statusStyles[kind].Render(status)}
	if kind == statusSkipped {
		return strings.Join(parts, " ")
	}

	parts = append(parts, fmt.Sprintf("[%.3fs, %.2f MB]", c.Time, c.Memory/1024))
	// batched cases count towards the batch total instead
	if !batched {
		parts = append(parts, fmt.Sprintf("(%.0f/%.0f)", c.Points, c.Total))
	}
	return strings.Join(parts, " ")
}
