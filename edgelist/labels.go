// SPDX-License-Identifier: MIT
package edgelist

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// Labels is an immutable bijection between vertex IDs 0..n-1 and names.
type Labels struct {
	names []string
	index map[string]int
}

// SortedLabels collects the distinct names in ascending byte order and
// numbers them from 0.
func SortedLabels(names ...string) *Labels {
	set := treeset.NewWithStringComparator()
	for _, name := range names {
		set.Add(name)
	}

	sorted := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		sorted = append(sorted, it.Value().(string))
	}

	return newLabels(sorted)
}

// NewLabels numbers names in the given order. Repeated names are rejected
// with ErrDuplicateLabel.
func NewLabels(names []string) (*Labels, error) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("edgelist: label %q: %w", name, ErrDuplicateLabel)
		}
		seen[name] = struct{}{}
	}
	out := make([]string, len(names))
	copy(out, names)

	return newLabels(out), nil
}

func newLabels(names []string) *Labels {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}

	return &Labels{names: names, index: idx}
}

// Len returns the number of labels.
func (l *Labels) Len() int { return len(l.names) }

// Index returns the vertex ID of name.
func (l *Labels) Index(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("edgelist: %q: %w", name, ErrUnknownLabel)
	}

	return i, nil
}

// Name returns the label of vertex i, or "#i" when i is out of range.
func (l *Labels) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return fmt.Sprintf("#%d", i)
	}

	return l.names[i]
}

// Names returns a copy of all labels in ID order.
func (l *Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}

// Func returns Name as a plain function value, the form route.Labeled expects.
func (l *Labels) Func() func(int) string { return l.Name }
