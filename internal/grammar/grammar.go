// Package grammar implements the permissive resource identifier grammar
// used for WebFinger / OpenID Connect discovery normalization.
//
// The grammar deliberately trades RFC 3986 compliance for tolerance of
// informal user input: a bare host, "user@host", "acct:user@host" and
// "tel:+1234" all match, which general purpose URI parsers reject or
// mis-split.
package grammar

import (
	"regexp"
	"strings"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// Recognized resource schemes. The same set feeds the scheme alternation
// of the grammar and the serializer dispatch, so the two cannot drift apart.
const (
	SchemeHTTPS  = "https"
	SchemeHTTP   = "http"
	SchemeAcct   = "acct"
	SchemeMailto = "mailto"
	SchemeTel    = "tel"
	SchemeDevice = "device"
)

// Schemes returns the recognized scheme tokens in alternation order.
func Schemes() []string {
	return []string{SchemeHTTPS, SchemeHTTP, SchemeAcct, SchemeMailto, SchemeTel, SchemeDevice}
}

// host excludes the characters that delimit port, path, query and fragment.
const hostClass = `[^?#:/]+`

var hostPattern = regexp.MustCompile(`^` + hostClass + `$`)

// IsHost reports whether s is a syntactically valid host per the resource grammar.
func IsHost[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	return hostPattern.MatchString(string(s))
}

// IsBlank reports whether s is empty or consists solely of whitespace.
func IsBlank[T ~string | ~[]byte](s T) bool {
	return strings.TrimSpace(string(s)) == ""
}
