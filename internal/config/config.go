// SPDX-License-Identifier: MIT

// Package config decodes the YAML description of a matrix and two selectors
// used by the ixview command, and turns it into library values.
//
// Example file:
//
//	matrix:
//	  rows: 4
//	  cols: 4
//	  order: col-major
//	  fill: iota
//	rows: {kind: list, indices: [3, 1]}
//	cols: {kind: seq, first: 0, size: 2, incr: 2, fixedIncr: true}
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/matrix"
)

// ErrInvalidConfig is returned for structurally invalid descriptions.
var ErrInvalidConfig = errors.New("config: invalid description")

const (
	fillIota   = "iota"
	fillZero   = "zero"
	orderRow   = "row-major"
	orderCol   = "col-major"
	kindSingle = "single"
)

// Config is the root of a view description.
type Config struct {
	Matrix MatrixConfig   `yaml:"matrix"`
	Rows   SelectorConfig `yaml:"rows"`
	Cols   SelectorConfig `yaml:"cols"`
}

// MatrixConfig describes the nested Dense.
// Data is read in row-major order; Fill ("iota" or "zero") is used when Data is empty.
type MatrixConfig struct {
	Rows     int       `yaml:"rows"`
	Cols     int       `yaml:"cols"`
	Order    string    `yaml:"order,omitempty"`
	Fixed    bool      `yaml:"fixed,omitempty"`
	ReadOnly bool      `yaml:"readonly,omitempty"`
	Data     []float64 `yaml:"data,omitempty"`
	Fill     string    `yaml:"fill,omitempty"`
}

// SelectorConfig describes one selector.
// Kind is one of single, seq, list, array, all.
type SelectorConfig struct {
	Kind      string `yaml:"kind"`
	Index     int    `yaml:"index,omitempty"`
	First     int    `yaml:"first,omitempty"`
	Size      int    `yaml:"size,omitempty"`
	Incr      *int   `yaml:"incr,omitempty"`
	FixedIncr bool   `yaml:"fixedIncr,omitempty"`
	FixedSize bool   `yaml:"fixedSize,omitempty"`
	Indices   []int  `yaml:"indices,omitempty"`
}

// Load reads and parses a description file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML description.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse description: %w", err)
	}

	return &cfg, nil
}

// Dense builds the nested matrix.
func (c *Config) Dense() (*matrix.Dense, error) {
	mc := c.Matrix
	var opts []matrix.Option
	switch strings.TrimSpace(mc.Order) {
	case "", orderRow:
		opts = append(opts, matrix.WithRowMajor())
	case orderCol:
		opts = append(opts, matrix.WithColMajor())
	default:
		return nil, fmt.Errorf("matrix.order %q: %w", mc.Order, ErrInvalidConfig)
	}
	if mc.Fixed {
		opts = append(opts, matrix.WithFixedShape())
	}
	if mc.ReadOnly {
		opts = append(opts, matrix.WithReadOnly())
	}

	values := mc.Data
	if len(values) == 0 {
		switch strings.TrimSpace(mc.Fill) {
		case "", fillIota:
			values = make([]float64, max(mc.Rows*mc.Cols, 0))
			for i := range values {
				values[i] = float64(i)
			}
		case fillZero:
			values = make([]float64, max(mc.Rows*mc.Cols, 0))
		default:
			return nil, fmt.Errorf("matrix.fill %q: %w", mc.Fill, ErrInvalidConfig)
		}
	}

	return matrix.NewDenseFrom(mc.Rows, mc.Cols, values, opts...)
}

// Selector builds one selector from its description.
func (s SelectorConfig) Selector() (index.Selector, error) {
	switch strings.TrimSpace(s.Kind) {
	case kindSingle:
		return index.Single(s.Index), nil
	case "seq":
		var opts []index.SeqOption
		if s.Incr != nil {
			if s.FixedIncr {
				opts = append(opts, index.WithFixedIncr(*s.Incr))
			} else {
				opts = append(opts, index.WithIncr(*s.Incr))
			}
		}
		if s.FixedSize {
			opts = append(opts, index.WithFixedSize())
		}

		return index.Seq(s.First, s.Size, opts...)
	case "list":
		return index.List(s.Indices...), nil
	case "array":
		return index.Array(s.Indices...), nil
	case "all", "":
		return index.All(), nil
	default:
		return nil, fmt.Errorf("selector kind %q: %w", s.Kind, ErrInvalidConfig)
	}
}

// Build returns the nested matrix and both selectors, with every selector
// position validated against the matrix so the result is safe to evaluate.
func (c *Config) Build() (*matrix.Dense, index.Selector, index.Selector, error) {
	m, err := c.Dense()
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := c.Rows.Selector()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := c.Cols.Selector()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cols: %w", err)
	}
	if err = index.Validate(index.Bind(rows, m.Rows(), m.Traits().Rows), m.Rows()); err != nil {
		return nil, nil, nil, fmt.Errorf("rows: %w", err)
	}
	if err = index.Validate(index.Bind(cols, m.Cols(), m.Traits().Cols), m.Cols()); err != nil {
		return nil, nil, nil, fmt.Errorf("cols: %w", err)
	}

	return m, rows, cols, nil
}
