package webfinger

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/discoverykit/webfinger/internal/ioutil"
	"github.com/discoverykit/webfinger/internal/types"
	"github.com/discoverykit/webfinger/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// ParseAddr parses a network address from the given input s (string or []byte).
func ParseAddr[T ~string | ~[]byte](s T) (Addr, error) { return errtrace.Wrap2(types.ParseAddr(s)) }

// RenderOptions contains options for rendering resources.
type RenderOptions = types.RenderOptions

// Resource is the normalized, component-separated representation of a
// discovery resource identifier.
//
// A Resource is constructed once, usually by [Normalize], and not mutated
// afterwards. It carries no fragment component: fragments are not part of
// a normalized discovery identifier and are dropped during normalization.
type Resource struct {
	// Scheme is the resource scheme. [Normalize] always sets it, either
	// from an explicit capture or by inference.
	Scheme string
	// User is the userinfo portion before "@" in the authority.
	User string
	// Addr is the authority host with optional port.
	Addr Addr
	// Path is everything between the authority and "?" or "#".
	Path string
	// RawQuery is the raw, unparsed content between "?" and "#".
	RawQuery string
}

var (
	_ types.Renderer             = (*Resource)(nil)
	_ types.Equalable            = (*Resource)(nil)
	_ types.ValidFlag            = (*Resource)(nil)
	_ types.Cloneable[*Resource] = (*Resource)(nil)
)

// Clone returns a deep copy of the resource.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}
	r2 := *r
	r2.Addr = r.Addr.Clone()
	return &r2
}

// RenderTo writes the canonical form of the resource to the provided writer.
//
// Resources with an acct, mailto, tel or device scheme are rendered as
// "scheme:user@host:port/path?query" with no authority slashes after the
// scheme. Resources with any other scheme, including a blank one, are
// rendered in the generic [net/url.URL] authority form.
func (r *Resource) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	if !IsNonHTTPScheme(r.Scheme) {
		return errtrace.Wrap2(fmt.Fprint(w, r.toURL().String()))
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint(r.Scheme, ":")
	if util.TrimSP(r.User) != "" {
		cw.Fprint(r.User, "@")
	}
	if !r.Addr.IsZero() {
		cw.Fprint(r.Addr)
	}
	if p := r.Path; util.TrimSP(p) != "" {
		if cw.Count() > 0 && p[0] != '/' {
			cw.Fprint("/")
		}
		cw.Fprint(p)
	}
	if q := r.RawQuery; util.TrimSP(q) != "" {
		cw.Fprint("?", q)
	}
	return errtrace.Wrap2(cw.Result())
}

// toURL converts the resource to a [net/url.URL] for generic
// authority-form serialization.
func (r *Resource) toURL() *url.URL {
	u := url.URL{
		Scheme:   r.Scheme,
		RawQuery: r.RawQuery,
	}
	if !r.Addr.IsZero() {
		u.Host = r.Addr.String()
	}
	if util.TrimSP(r.User) != "" {
		u.User = url.User(r.User)
	}
	if p := r.Path; p != "" {
		u.RawPath = p
		if dec, err := url.PathUnescape(p); err == nil {
			u.Path = dec
		} else {
			u.Path = p
		}
	}
	return &u
}

// Render returns the canonical string form of the resource.
func (r *Resource) Render(opts *RenderOptions) string {
	if r == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string form of the resource.
func (r *Resource) String() string {
	if r == nil {
		return ""
	}
	return r.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the resource.
func (r *Resource) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			r.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, r.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(r.String()))
		return
	default:
		type hideMethods Resource
		type Resource hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Resource)(r))
		return
	}
}

// Equal compares this resource with another for equality. Hosts compare
// case-insensitively, all other components literally.
func (r *Resource) Equal(val any) bool {
	var other *Resource
	switch v := val.(type) {
	case Resource:
		other = &v
	case *Resource:
		other = v
	default:
		return false
	}

	if r == other {
		return true
	} else if r == nil || other == nil {
		return false
	}
	return r.Scheme == other.Scheme &&
		r.User == other.User &&
		r.Addr.Equal(other.Addr) &&
		r.Path == other.Path &&
		r.RawQuery == other.RawQuery
}

// IsValid checks whether the resource is syntactically valid: a scheme is
// present and the host satisfies the resource grammar.
func (r *Resource) IsValid() bool {
	return r != nil && r.Scheme != "" && r.Addr.IsValid()
}

// MarshalText implements [encoding.TextMarshaler].
func (r *Resource) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Resource) UnmarshalText(text []byte) error {
	r1, err := Normalize(text)
	if err != nil {
		*r = Resource{}
		return errtrace.Wrap(err)
	}
	*r = *r1
	return nil
}
