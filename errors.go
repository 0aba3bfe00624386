package webfinger

import (
	"github.com/discoverykit/webfinger/internal/errorutil"
	"github.com/discoverykit/webfinger/internal/grammar"
)

// Common errors.
const (
	// ErrEmptyInput is returned when the identifier is empty or
	// consists solely of whitespace.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is returned when the identifier does not fully
	// match the resource grammar.
	ErrMalformedInput = grammar.ErrMalformedInput
)

// IsGrammarErr returns true if the error reports an identifier that could
// not be normalized, as opposed to a programming error. Callers can use it
// to turn normalization failures into user facing validation errors.
func IsGrammarErr(err error) bool { return errorutil.IsGrammarErr(err) }
