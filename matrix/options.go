// SPDX-License-Identifier: MIT

// Package matrix: numeric policy options for Dense.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - One switch, one meaning: validateNaNInf decides whether Set, SetRow,
//     Apply and Assign reject NaN/±Inf. The flag travels with Clone.
//
// Notes:
//   - Layout runs that opt into NaN propagation for coincident vertices need a
//     matrix built with WithNoValidateNaNInf, otherwise the final commit is
//     refused with ErrNaNInf and the caller's state stays intact.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
const DefaultValidateNaNInf = true

// Option configures a Dense at construction time.
type Option func(*options)

// options is the resolved construction policy.
type options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables finite-only ingestion (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf be stored.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults, last wins.
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
