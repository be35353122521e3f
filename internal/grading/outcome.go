package grading

// Outcome is the final record of a graded submission. Time and Memory are
// nil when the judge does not report them (e.g. on compile errors).
type Outcome struct {
	Result     string
	Time       *float64 // seconds
	Memory     *float64 // KB
	CasePoints float64
	CaseTotal  float64
}

