// SPDX-License-Identifier: MIT
package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/core"
)

const minFields = 3

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	nw, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return nw, nil
}

// Load reads a CSV edge list from r, numbers the endpoint names
// alphabetically, and builds the graph.
func Load(r io.Reader, opts ...Option) (*Network, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, err := readRows(r, o)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, 2*len(rows))
	for _, e := range rows {
		names = append(names, e.A, e.B)
	}

	return build(SortedLabels(names...), rows, o)
}

// FromEdges builds a Network from in-code rows. With a nil labels slice the
// names are numbered alphabetically, as Load does; otherwise labels fixes the
// numbering and every endpoint must appear in it.
func FromEdges(labels []string, edges []LabeledEdge, opts ...Option) (*Network, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		tbl *Labels
		err error
	)
	if labels == nil {
		names := make([]string, 0, 2*len(edges))
		for _, e := range edges {
			names = append(names, e.A, e.B)
		}
		tbl = SortedLabels(names...)
	} else if tbl, err = NewLabels(labels); err != nil {
		return nil, err
	}

	rows := make([]LabeledEdge, len(edges))
	copy(rows, edges)

	return build(tbl, rows, o)
}

func readRows(r io.Reader, o options) ([]LabeledEdge, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []LabeledEdge
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgelist: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		line, _ := cr.FieldPos(0)
		if first && o.header {
			first = false
			continue
		}
		first = false

		e, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, e)
	}

	return rows, nil
}

func parseRow(rec []string, line int) (LabeledEdge, error) {
	if len(rec) < minFields {
		return LabeledEdge{}, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(rec), minFields, ErrMalformedRow)
	}
	a, b := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
	if a == "" || b == "" {
		return LabeledEdge{}, fmt.Errorf("line %d: empty endpoint: %w", line, ErrMalformedRow)
	}
	raw := strings.TrimSpace(rec[2])
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return LabeledEdge{}, fmt.Errorf("line %d: %q: %w", line, raw, ErrBadWeight)
	}

	return LabeledEdge{A: a, B: b, Weight: w, Line: line}, nil
}

func build(tbl *Labels, rows []LabeledEdge, o options) (*Network, error) {
	g, err := core.NewGraph(tbl.Len(), o.gopts...)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	for _, e := range rows {
		u, err := tbl.Index(e.A)
		if err != nil {
			return nil, rowErr(e, err)
		}
		v, err := tbl.Index(e.B)
		if err != nil {
			return nil, rowErr(e, err)
		}
		if _, err = g.AddEdge(u, v, e.Weight); err != nil {
			return nil, rowErr(e, err)
		}
	}

	return &Network{Graph: g, Labels: tbl, Edges: rows}, nil
}

func rowErr(e LabeledEdge, err error) error {
	if e.Line > 0 {
		return fmt.Errorf("line %d: %w", e.Line, err)
	}

	return fmt.Errorf("edge %s-%s: %w", e.A, e.B, err)
}
