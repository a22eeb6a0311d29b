// SPDX-License-Identifier: MIT
// Package: glayout/session
//
// params.go - the four user parameters plus the iteration count.

package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Defaults of a fresh session.
const (
	DefaultVertices     = 9
	DefaultDimensions   = 3
	DefaultMaxDegree    = 3
	DefaultIterations   = 1
	DefaultCenterWeight = 0.1
)

// Params are the user-editable inputs of a session.
type Params struct {
	Vertices     int     `yaml:"vertices" json:"vertices" validate:"min=2"`
	Dimensions   int     `yaml:"dimensions" json:"dimensions" validate:"min=1"`
	MaxDegree    int     `yaml:"max_degree" json:"max_degree" validate:"min=2"`
	Iterations   int     `yaml:"iterations" json:"iterations" validate:"min=0"`
	CenterWeight float64 `yaml:"center_weight" json:"center_weight"`
}

// DefaultParams returns 9 vertices in 3 dimensions, degree bound 3, one
// iteration per Layout and a center weight of 0.1.
func DefaultParams() Params {
	return Params{
		Vertices:     DefaultVertices,
		Dimensions:   DefaultDimensions,
		MaxDegree:    DefaultMaxDegree,
		Iterations:   DefaultIterations,
		CenterWeight: DefaultCenterWeight,
	}
}

// Validate checks the struct tags and that CenterWeight is finite.
// Errors wrap ErrInvalidParams and name the first offending field.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("Params.Validate: %w: %w", ErrInvalidParams, formatValidationError(err))
	}
	if math.IsNaN(p.CenterWeight) || math.IsInf(p.CenterWeight, 0) {
		return fmt.Errorf("Params.Validate: CenterWeight: must be finite: %w", ErrInvalidParams)
	}

	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%s: must be at least %s", e.Field(), e.Param())
	default:
		return fmt.Errorf("%s: validation failed (%s)", e.Field(), e.Tag())
	}
}
