package grading

// Case and submission result codes reported by the judge.
const (
	CodeAccepted            = "AC"
	CodeWrongAnswer         = "WA"
	CodeTimeLimitExceeded   = "TLE"
	CodeMemoryLimitExceeded = "MLE"
	CodeOutputLimitExceeded = "OLE"
	CodeInvalidReturn       = "IR"
	CodeRuntimeError        = "RTE"
	CodeCompileError        = "CE"
	CodeInternalError       = "IE"
	CodeShortCircuited      = "SC"
	CodeAborted             = "AB"
)

// Submission status codes, reported while a submission is still in flight.
const (
	StatusQueued     = "QU"
	StatusProcessing = "P"
	StatusGrading    = "G"
	StatusCompleted  = "D"
)

var labels = map[string]string{
	CodeAccepted:            "Accepted",
	CodeWrongAnswer:         "Wrong Answer",
	CodeTimeLimitExceeded:   "Time Limit Exceeded",
	CodeMemoryLimitExceeded: "Memory Limit Exceeded",
	CodeOutputLimitExceeded: "Output Limit Exceeded",
	CodeInvalidReturn:       "Invalid Return",
	CodeRuntimeError:        "Runtime Error",
	CodeCompileError:        "Compile Error",
	CodeInternalError:       "Internal Error",
	CodeShortCircuited:      "Short Circuited",
	CodeAborted:             "Aborted",

	StatusQueued:     "Queued",
	StatusProcessing: "Processing",
	StatusGrading:    "Grading",
	StatusCompleted:  "Completed",
}

// Label returns the human-readable name of a status or result code.
// Unknown codes are returned unchanged with ok set to false.
func Label(code string) (label string, ok bool) {
	label, ok = labels[code]
	if !ok {
		return code, false
	}
	return label, true
}
