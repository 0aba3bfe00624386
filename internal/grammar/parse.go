package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/discoverykit/webfinger/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// resourcePattern is applied as a total match over the whole identifier.
// Scheme tokens are matched case-sensitively and an optional "//" after
// the scheme is consumed but not captured. The userinfo is any run of
// characters up to "@", the host any run excluding "?#:/", the port a
// possibly empty digit run after ":". Backtracking capture semantics of
// the original discovery normalization pattern are preserved: Go's
// regexp produces the same leftmost-first submatches.
var resourcePattern = regexp.MustCompile(`^` +
	`(?:(?P<scheme>` + strings.Join(Schemes(), `|`) + `):(?://)?)?` +
	`(?:(?P<user>[^@]+)@)?` +
	`(?P<host>` + hostClass + `)` +
	`(?::(?P<port>\d*))?` +
	`(?P<path>[^?#]+)?` +
	`(?:\?(?P<query>[^#]+))?` +
	`(?:#(?P<fragment>.*))?` +
	`$`)

var (
	schemeIdx   = resourcePattern.SubexpIndex("scheme")
	userIdx     = resourcePattern.SubexpIndex("user")
	hostIdx     = resourcePattern.SubexpIndex("host")
	portIdx     = resourcePattern.SubexpIndex("port")
	pathIdx     = resourcePattern.SubexpIndex("path")
	queryIdx    = resourcePattern.SubexpIndex("query")
	fragmentIdx = resourcePattern.SubexpIndex("fragment")
)

// Match holds the components captured from a resource identifier.
// Absent optional components are empty strings; an absent or empty port
// capture is reported as HasPort == false.
type Match struct {
	Scheme   string
	User     string
	Host     string
	Port     uint16
	HasPort  bool
	Path     string
	Query    string
	Fragment string
}

// ParseResource matches the resource grammar against the given input s
// (string or []byte). Partial matches are rejected: the whole input must
// match end-to-end. A port capture that overflows uint16 is reported as
// [ErrMalformedInput].
func ParseResource[T ~string | ~[]byte](s T) (Match, error) {
	if len(s) == 0 {
		return Match{}, errtrace.Wrap(ErrEmptyInput)
	}

	sub := resourcePattern.FindStringSubmatch(string(s))
	if sub == nil {
		return Match{}, errtrace.Wrap(newMalformedInputErr("input %q does not match the resource grammar", string(s)))
	}

	m := Match{
		Scheme:   sub[schemeIdx],
		User:     sub[userIdx],
		Host:     sub[hostIdx],
		Path:     sub[pathIdx],
		Query:    sub[queryIdx],
		Fragment: sub[fragmentIdx],
	}
	if p := sub[portIdx]; p != "" {
		port, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Match{}, errtrace.Wrap(newMalformedInputErr("port %q out of range", p))
		}
		m.Port, m.HasPort = uint16(port), true
	}
	return m, nil
}

var hostportPattern = regexp.MustCompile(`^(?P<host>` + hostClass + `)(?::(?P<port>\d*))?$`)

var (
	hpHostIdx = hostportPattern.SubexpIndex("host")
	hpPortIdx = hostportPattern.SubexpIndex("port")
)

// ParseHostport parses a "host[:port]" string using the host and port
// rules of the resource grammar.
func ParseHostport[T ~string | ~[]byte](s T) (host string, port uint16, hasPort bool, err error) {
	if len(s) == 0 {
		return "", 0, false, errtrace.Wrap(ErrEmptyInput)
	}

	sub := hostportPattern.FindStringSubmatch(string(s))
	if sub == nil {
		return "", 0, false, errtrace.Wrap(newMalformedInputErr("input %q does not match the hostport grammar", string(s)))
	}
	host = sub[hpHostIdx]
	if p := sub[hpPortIdx]; p != "" {
		v, perr := strconv.ParseUint(p, 10, 16)
		if perr != nil {
			return "", 0, false, errtrace.Wrap(newMalformedInputErr("port %q out of range", p))
		}
		port, hasPort = uint16(v), true
	}
	return host, port, hasPort, nil
}
