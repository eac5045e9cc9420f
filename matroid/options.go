// SPDX-License-Identifier: MIT
// Package: chromatroid/matroid
//
// options.go — functional options for Matroid construction.
//
// Contract:
//   • Options mutate an unexported config resolved inside New.
//   • Option constructors panic on programmer-error arguments (nil
//     validator); New itself never panics.

package matroid

// Option configures Matroid construction.
type Option func(*config)

// config collects resolved construction options.
type config struct {
	validator Validator
}

// defaultConfig returns the standard configuration: full exchange-axiom
// validation.
func defaultConfig() config {
	return config{validator: ExchangeValidator}
}

// WithValidator swaps the validation strategy. Use AcceptAllValidator to
// bypass the quadratic exchange check for families that are valid by
// construction. Panics if v is nil.
func WithValidator(v Validator) Option {
	if v == nil {
		panic("matroid: WithValidator requires a non-nil validator")
	}

	return func(cfg *config) { cfg.validator = v }
}
