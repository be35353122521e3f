package grading

// DisplayUnit is one printable row of a flattened grading tree.
type DisplayUnit struct {
	// Batched is true only for a case nested inside a batch.
	Batched bool
	// Ordinal is 1-based. Top-level cases and batches share one counter;
	// batched cases count from 1 within their batch.
	Ordinal int
	Unit    Unit
}

// Flatten turns a tree into display rows. A batch becomes a header row with an
// empty case list, followed immediately by one row per case it holds.
//
// Numbering follows the judge's own pages: an unbatched case consumes the next
// top-level number just like a batch does, so [case, batch(3), case] is
// numbered 1, 2 (1, 2, 3), 3.
func Flatten(tree Tree) []DisplayUnit {
	var ret []DisplayUnit
	num := 1
	for _, u := range tree {
		switch {
		case u.Batch != nil:
			header := *u.Batch
			header.Cases = nil
			ret = append(ret, DisplayUnit{Ordinal: num, Unit: Unit{Batch: &header}})
			num++

			for i := range u.Batch.Cases {
				c := u.Batch.Cases[i]
				ret = append(ret, DisplayUnit{Batched: true, Ordinal: i + 1, Unit: Unit{Case: &c}})
			}
		case u.Case != nil:
			c := *u.Case
			ret = append(ret, DisplayUnit{Ordinal: num, Unit: Unit{Case: &c}})
			num++
		}
	}
	return ret
}
