// Package edgelist loads labeled, weighted edge lists into a core.Graph.
//
// The on-disk format is CSV with a header row followed by one edge per row:
//
//	Station1,Station2,Time
//	Finsbury Park,Manor House,2
//	Manor House,Turnpike Lane,2
//
// Only the first three fields of a row are read. Fields are trimmed, blank
// lines are skipped, and a row with fewer than three fields is rejected with
// ErrMalformedRow carrying its line number.
//
// Labels are numbered alphabetically: the distinct endpoint names are
// collected in a sorted set and vertex i is the i-th name. Algorithms only
// ever see the integer IDs; Labels.Func is the mapping handed back to
// route.Labeled when printing a path.
//
// Errors:
//
//	ErrMalformedRow   - too few fields or an empty endpoint.
//	ErrBadWeight      - weight is not a finite number.
//	ErrUnknownLabel   - name not present in the label table.
//	ErrDuplicateLabel - explicit label list repeats a name.
//	core.ErrInvalidWeight (wrapped) - weight rejected by the store policy.
package edgelist
