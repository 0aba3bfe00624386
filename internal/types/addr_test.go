package types_test

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/discoverykit/webfinger/internal/grammar"
	"github.com/discoverykit/webfinger/internal/types"
)

func TestHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
	}{
		{"empty", ""},
		{"domain", "ExAmplE.COM"},
		{"IPv4", "192.168.0.1"},
		{"IPv6", "2001:db8::9:1"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			addr := types.Host(c.host)
			if got, want := addr.Host(), c.host; got != want {
				t.Errorf("addr.Host() = %q, want %q", got, want)
			}
			if want := net.ParseIP(c.host); want != nil {
				if got := addr.IP(); !got.Equal(want) {
					t.Errorf("addr.IP() = %v, want %v", got, want)
				}
			}
			if got, ok := addr.Port(); ok {
				t.Errorf("addr.Port() = (%v, %v), want (0, false)", got, ok)
			}
		})
	}
}

func TestHostPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		port uint16
	}{
		{"empty", "", 0},
		{"domain", "example.com", 8080},
		{"IPv4", "192.168.0.1", 8080},
		{"IPv6", "2001:db8::9:1", 8080},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			addr := types.HostPort(c.host, c.port)
			if got, want := addr.Host(), c.host; got != want {
				t.Errorf("addr.Host() = %q, want %q", got, want)
			}
			if got, ok := addr.Port(); !ok || got != c.port {
				t.Errorf("addr.Port() = (%v, %v), want (%v, true)", got, ok, c.port)
			}
		})
	}
}

func TestParseAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    types.Addr
		wantErr error
	}{
		{"empty", "", types.Addr{}, grammar.ErrEmptyInput},
		{"host", "example.com", types.Host("example.com"), nil},
		{"host and port", "example.com:8080", types.HostPort("example.com", 8080), nil},
		{"empty port", "example.com:", types.Host("example.com"), nil},
		{"IPv4 and port", "127.0.0.1:80", types.HostPort("127.0.0.1", 80), nil},
		{"path rejected", "example.com/p", types.Addr{}, grammar.ErrMalformedInput},
		{"port overflow", "example.com:99999", types.Addr{}, grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := types.ParseAddr(c.input)
			if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("types.ParseAddr(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, gotErr, c.wantErr, diff,
				)
			}
			if !got.Equal(c.want) {
				t.Errorf("types.ParseAddr(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestAddr_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want string
	}{
		{"zero", types.Addr{}, ""},
		{"host", types.Host("example.com"), "example.com"},
		{"host and port", types.HostPort("example.com", 8080), "example.com:8080"},
		{"IPv4", types.Host("192.168.0.1"), "192.168.0.1"},
		{"IPv6", types.Host("2001:db8::9:1"), "[2001:db8::9:1]"},
		{"IPv6 and port", types.HostPort("2001:db8::9:1", 8080), "[2001:db8::9:1]:8080"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.String(); got != c.want {
				t.Errorf("addr.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestAddr_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b types.Addr
		want bool
	}{
		{"zero", types.Addr{}, types.Addr{}, true},
		{"same host", types.Host("example.com"), types.Host("example.com"), true},
		{"host case-insensitive", types.Host("example.com"), types.Host("EXAMPLE.COM"), true},
		{"different hosts", types.Host("example.com"), types.Host("example.org"), false},
		{"same IP", types.Host("192.168.0.1"), types.Host("192.168.0.1"), true},
		{"IP vs domain", types.Host("192.168.0.1"), types.Host("example.com"), false},
		{"same host different port", types.HostPort("example.com", 80), types.HostPort("example.com", 443), false},
		{"port set vs unset", types.HostPort("example.com", 0), types.Host("example.com"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("(%v).Equal(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestAddr_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr types.Addr
		want bool
	}{
		{"zero", types.Addr{}, false},
		{"domain", types.Host("example.com"), true},
		{"IPv4", types.Host("127.0.0.1"), true},
		{"IPv6", types.Host("2001:db8::9:1"), true},
		{"host with slash", types.Host("a/b"), false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.addr.IsValid(); got != c.want {
				t.Errorf("(%v).IsValid() = %v, want %v", c.addr, got, c.want)
			}
		})
	}
}

func TestAddr_MarshalText(t *testing.T) {
	t.Parallel()

	addr := types.HostPort("example.com", 8080)
	text, err := addr.MarshalText()
	if err != nil {
		t.Fatalf("addr.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(text), "example.com:8080"; got != want {
		t.Errorf("addr.MarshalText() = %q, want %q", got, want)
	}

	var addr2 types.Addr
	if err := addr2.UnmarshalText(text); err != nil {
		t.Fatalf("addr.UnmarshalText(%q) error = %v, want nil", text, err)
	}
	if !addr2.Equal(addr) {
		t.Errorf("addr.UnmarshalText(%q) = %v, want %v", text, addr2, addr)
	}
}
