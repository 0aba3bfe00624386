package webfinger

//go:generate go tool errtrace -w .

import (
	"context"
	"log/slog"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/discoverykit/webfinger/internal/grammar"
	"github.com/discoverykit/webfinger/internal/log"
	"github.com/discoverykit/webfinger/internal/util"
)

// Recognized resource schemes.
const (
	SchemeHTTPS  = grammar.SchemeHTTPS
	SchemeHTTP   = grammar.SchemeHTTP
	SchemeAcct   = grammar.SchemeAcct
	SchemeMailto = grammar.SchemeMailto
	SchemeTel    = grammar.SchemeTel
	SchemeDevice = grammar.SchemeDevice
)

// IsNonHTTPScheme reports whether scheme is one of the schemes whose
// canonical serialization omits the authority slashes (acct, mailto,
// tel, device).
func IsNonHTTPScheme(scheme string) bool {
	switch scheme {
	case SchemeAcct, SchemeMailto, SchemeTel, SchemeDevice:
		return true
	}
	return false
}

var pkgLog atomic.Pointer[slog.Logger]

func init() { pkgLog.Store(log.Def) }

// SetLogger replaces the logger used to report identifiers that fail to
// normalize. Passing nil silences the reports.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	pkgLog.Store(l)
}

// Normalize parses a user supplied resource identifier from the given
// input s (string or []byte) into a [Resource], following the identifier
// normalization rules of WebFinger / OpenID Connect discovery.
//
// The identifier may be anything a user would type to name a resource:
// a bare host ("example.com"), an account-like handle ("bob@example.com"),
// a full URL ("https://example.com/bob") or a non-HTTP identifier
// ("acct:bob@example.com", "tel:+15551234"). When no scheme is present
// one is inferred: a bare user@host with no port, path or query becomes
// an "acct" identifier, anything else defaults to "https". A fragment,
// if present, is dropped.
//
// Blank input yields [ErrEmptyInput] and input that does not fully match
// the resource grammar yields [ErrMalformedInput]. Both conditions are
// routine for user input, satisfy [IsGrammarErr] and are reported on the
// logger configured with [SetLogger].
func Normalize[T ~string | ~[]byte](s T) (*Resource, error) {
	if grammar.IsBlank(s) {
		pkgLog.Load().LogAttrs(context.Background(), slog.LevelWarn,
			"cannot normalize blank resource identifier")
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	m, err := grammar.ParseResource(s)
	if err != nil {
		pkgLog.Load().LogAttrs(context.Background(), slog.LevelWarn,
			"resource identifier does not match the grammar",
			slog.Any("identifier", log.StringValue(s)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	return buildFromMatch(m), nil
}

func buildFromMatch(m grammar.Match) *Resource {
	r := &Resource{
		Scheme:   m.Scheme,
		User:     m.User,
		Path:     m.Path,
		RawQuery: m.Query,
	}
	if m.HasPort {
		r.Addr = HostPort(m.Host, m.Port)
	} else {
		r.Addr = Host(m.Host)
	}
	// The captured fragment is deliberately not copied: a normalized
	// resource never carries one.
	if r.Scheme == "" {
		r.Scheme = inferScheme(r)
	}
	return r
}

// inferScheme applies the discovery scheme defaults in priority order:
// a bare user@host with no port, path and query is an account identifier,
// anything else is assumed to be a web resource.
func inferScheme(r *Resource) string {
	if _, hasPort := r.Addr.Port(); !hasPort &&
		util.TrimSP(r.User) != "" &&
		util.TrimSP(r.Path) == "" &&
		util.TrimSP(r.RawQuery) == "" {
		return SchemeAcct
	}
	return SchemeHTTPS
}
