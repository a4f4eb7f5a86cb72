package complexitydyn

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "complexitydyn:" so it can be grepped in logs.
// Match with errors.Is; *DomainError carries the offending index and value.
var (
	// ErrDomain is returned when a growth function yields a non-positive,
	// NaN or infinite value at a probed index.
	ErrDomain = errors.New("complexitydyn: growth function outside positive domain")

	// ErrInvalidDepth indicates a truncation depth N < 1.
	ErrInvalidDepth = errors.New("complexitydyn: truncation depth must be >= 1")

	// ErrInvalidAlpha indicates a scale factor that is not a finite positive number.
	ErrInvalidAlpha = errors.New("complexitydyn: scale factor must be > 0")

	// ErrInvalidBound indicates a negative iterate bound or horizon.
	ErrInvalidBound = errors.New("complexitydyn: iterate bound must be >= 0")

	// ErrInvalidThreshold indicates a resolution or separation threshold that is NaN or negative.
	ErrInvalidThreshold = errors.New("complexitydyn: threshold must be a non-negative number")

	// ErrNoFunctions indicates an empty function collection where one is required.
	ErrNoFunctions = errors.New("complexitydyn: no growth functions given")

	// ErrUnknownGrowth is returned by ParseGrowth for an unrecognized expression.
	ErrUnknownGrowth = errors.New("complexitydyn: unknown growth expression")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("complexitydyn: invalid configuration")
)

// DomainError reports which side of a distance evaluation left the domain.
type DomainError struct {
	Side  string  // "f" or "g"
	Index int     // probed n
	Value float64 // offending value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %s(%d) = %g", ErrDomain, e.Side, e.Index, e.Value)
}

// Unwrap lets errors.Is(err, ErrDomain) match.
func (e *DomainError) Unwrap() error { return ErrDomain }
