// Package route turns engine output into the artifacts callers report.
//
//   - Reconstruct walks a predecessor array from target back to source and
//     returns the ordered vertex sequence source→…→target, or ErrUnreachable.
//   - PathWeight sums the lightest edge between consecutive vertices of a path,
//     so a reconstructed route can be checked against the distance array.
//   - NonTreeEdges lists the input edges whose undirected endpoint pair is not
//     used by a spanning forest ("closable" connections: removing all of them
//     keeps every component connected).
//   - SortEdges and Labeled prepare results for display; the label function is
//     owned by the caller and injected here, never threaded through the engines.
//
// All functions are pure: they allocate their results and never mutate inputs.
package route
