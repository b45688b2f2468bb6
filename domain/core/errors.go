package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors (fatal: the run cannot proceed without a table)
	ErrLoad              = errors.New("load failed")
	ErrFileNotFound      = fmt.Errorf("%w: file not found", ErrLoad)
	ErrNoEncodingMatched = fmt.Errorf("%w: no supported encoding parses the file", ErrLoad)
	ErrEmptyTable        = fmt.Errorf("%w: file has no data rows", ErrLoad)
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file format", ErrLoad)

	// Analysis errors (recovered locally, the affected statistic is skipped)
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrColumnNotFound   = errors.New("column not found")
	ErrNotNumeric       = errors.New("column is not numeric")

	// Render errors (recovered locally, the affected artifact is skipped)
	ErrRender = errors.New("render failed")
)

// Error constructors with context
func NewLoadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
}

func NewRenderError(chart string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, chart, err)
}

func NewColumnError(column string, err error) error {
	return fmt.Errorf("%w: column %q", err, column)
}

// Error checking helpers
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}

func IsRenderError(err error) bool {
	return errors.Is(err, ErrRender)
}

func IsAnalysisError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrNotNumeric)
}
