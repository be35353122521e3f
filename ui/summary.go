package ui

import (
	"fmt"
	"io"

	"github.com/dmoj-submit/dmoj-submit/internal/grading"
)

var internalErrorNotice = []string{
	"An internal error occurred while grading, and the DMOJ administrators have been notified",
	"In the meantime, try resubmitting in a few seconds.",
}

// PrintOutcome prints the final verdict of a submission after its cases.
func PrintOutcome(w io.Writer, o grading.Outcome) {
	fmt.Fprintln(w)

	switch o.Result {
	case grading.CodeInternalError:
		// one Render per line: lipgloss pads multi-line blocks to equal width
		for _, line := range internalErrorNotice {
			fmt.Fprintln(w, brightRed.Render(line))
		}
		return
	case grading.CodeCompileError:
		fmt.Fprintln(w, "Compilation error")
		return
	case grading.CodeAborted:
		fmt.Fprintln(w, "Submission aborted!")
		return
	}

	label, _ := grading.Label(o.Result)
	fmt.Fprintf(w, "%s %s (%s)\n", bold.Render("Result:"), o.Result, label)

	runtime := "---"
	if o.Time != nil && o.Result != grading.CodeTimeLimitExceeded {
		runtime = fmt.Sprintf("%.3fs", *o.Time)
	}
	memory := "---"
	if o.Memory != nil {
		memory = fmt.Sprintf("%.2f MB", *o.Memory/1024)
	}
	fmt.Fprintf(w, "%s %s, %s\n", bold.Render("Resources:"), runtime, memory)
	fmt.Fprintf(w, "%s %.0f/%.0f\n", bold.Render("Final score:"), o.CasePoints, o.CaseTotal)
}
