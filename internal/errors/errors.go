// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrUnknownPolicy     = errors.New("unknown strike-selection policy")
	ErrInvalidMarketView = errors.New("invalid market view")
	ErrDatabaseError     = errors.New("database error")
)

// DomainError represents invalid contract parameters: a field whose value
// falls outside the domain of the closed-form model.
type DomainError struct {
	Field   string
	Value   float64
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s (%g): %s", e.Field, e.Value, e.Message)
}

// NewDomainError creates a new DomainError.
func NewDomainError(field string, value float64, message string) *DomainError {
	return &DomainError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConvergenceError represents a root-finding failure: the bracket does not
// contain a root, or the iteration budget was exhausted above tolerance.
type ConvergenceError struct {
	Low        float64
	High       float64
	Target     float64
	Iterations int
	Message    string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("convergence error on [%g, %g] (target %g, %d iterations): %s",
		e.Low, e.High, e.Target, e.Iterations, e.Message)
}

// NewConvergenceError creates a new ConvergenceError.
func NewConvergenceError(low, high, target float64, iterations int, message string) *ConvergenceError {
	return &ConvergenceError{
		Low:        low,
		High:       high,
		Target:     target,
		Iterations: iterations,
		Message:    message,
	}
}

// UnknownStrategyError represents a strategy name outside the fixed catalog.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy: %q", e.Name)
}

// NewUnknownStrategyError creates a new UnknownStrategyError.
func NewUnknownStrategyError(name string) *UnknownStrategyError {
	return &UnknownStrategyError{Name: name}
}

// UnachievableTargetError represents a delta target outside the range
// achievable for the given volatility and expiry. Callers can retry with
// different parameters; this is not a solver bug.
type UnachievableTargetError struct {
	Target float64
	Min    float64
	Max    float64
}

func (e *UnachievableTargetError) Error() string {
	return fmt.Sprintf("unachievable target: delta %g outside achievable range [%g, %g]",
		e.Target, e.Min, e.Max)
}

// NewUnachievableTargetError creates a new UnachievableTargetError.
func NewUnachievableTargetError(target, min, max float64) *UnachievableTargetError {
	return &UnachievableTargetError{
		Target: target,
		Min:    min,
		Max:    max,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
