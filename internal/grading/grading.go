package grading

import (
	"encoding/json"
	"fmt"
)

// Case is the result of a single test case.
type Case struct {
	Type   string  `json:"type"`
	CaseID int     `json:"case_id"`
	Status string  `json:"status"`
	Time   float64 `json:"time"`   // seconds
	Memory float64 `json:"memory"` // KB
	Points float64 `json:"points"`
	Total  float64 `json:"total"`
}

// Batch groups cases that are scored together. Points stays unknown to the
// client until every case in the batch resolves.
type Batch struct {
	Type    string  `json:"type"`
	BatchID int     `json:"batch_id"`
	Cases   []Case  `json:"cases"`
	Points  float64 `json:"points"`
	Total   float64 `json:"total"`
}

// Unit is one top-level entry of a grading tree: exactly one of Case or Batch is set.
type Unit struct {
	Case  *Case
	Batch *Batch
}

// Tree is the ordered sequence of units in one submission snapshot.
// Across polls it only grows: new units are appended and a trailing batch gains cases.
type Tree []Unit

func CaseUnit(c Case) Unit {
	return Unit{Case: &c}
}

func BatchUnit(b Batch) Unit {
	return Unit{Batch: &b}
}

func (u Unit) IsBatch() bool {
	return u.Batch != nil
}

// UnmarshalJSON decodes a case or a batch. The judge tags each entry with
// "type"; an untagged entry carrying a "cases" array is taken as a batch.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type  string          `json:"type"`
		Cases json.RawMessage `json:"cases"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to decode case or batch: %w", err)
	}

	switch {
	case probe.Type == "batch", probe.Type == "" && probe.Cases != nil:
		var b Batch
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("failed to decode batch: %w", err)
		}
		*u = Unit{Batch: &b}
	case probe.Type == "case", probe.Type == "":
		var c Case
		if err := json.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("failed to decode case: %w", err)
		}
		*u = Unit{Case: &c}
	default:
		return fmt.Errorf("unknown case type %q", probe.Type)
	}
	return nil
}

// MarshalJSON encodes whichever member is set.
func (u Unit) MarshalJSON() ([]byte, error) {
	switch {
	case u.Batch != nil:
		b := *u.Batch
		if b.Type == "" {
			b.Type = "batch"
		}
		return json.Marshal(b)
	case u.Case != nil:
		c := *u.Case
		if c.Type == "" {
			c.Type = "case"
		}
		return json.Marshal(c)
	default:
		return []byte("null"), nil
	}
}
