// Package webfinger normalizes user supplied resource identifiers into
// canonical structured URIs for WebFinger / OpenID Connect discovery, and
// serializes them back to strings.
//
// # Overview
//
// Discovery identifiers are typed informally: a bare host, an email-like
// handle, a phone number or a full URL. General purpose URI parsers
// reject or mis-split most of these forms, so this package applies a
// single permissive grammar over the whole input and a deterministic
// scheme inference policy on top of it:
//
//	r, err := webfinger.Normalize("bob@example.com")
//	// r.Scheme == "acct", r.User == "bob", r.Addr.Host() == "example.com"
//
//	r, err = webfinger.Normalize("example.com/bob")
//	// r.Scheme == "https", r.Path == "/bob"
//
//	r, err = webfinger.Normalize("tel:+15551234")
//	// r.Scheme == "tel"
//
// Fragments are always dropped: a normalized [Resource] never carries
// one. Blank input and input outside the grammar yield [ErrEmptyInput]
// and [ErrMalformedInput] respectively; both are routine user input
// failures satisfying [IsGrammarErr], not exceptional conditions.
//
// # Serialization
//
// [Serialize] renders a Resource back to its canonical string. Resources
// with an acct, mailto, tel or device scheme are serialized without the
// authority slashes a generic URI serializer would emit:
//
//	webfinger.Serialize(r) // "acct:bob@example.com", never "acct://bob@example.com"
//
// HTTP and HTTPS resources, and any unrecognized scheme, use the generic
// [net/url.URL] authority form. A nil Resource serializes to "".
//
// # Consuming the result
//
// A discovery client typically dereferences http/https resources
// directly and passes every other scheme as the "resource" query
// parameter of a WebFinger request; [IsNonHTTPScheme] supports that
// dispatch. The serialized form is stable and suitable as a cache key.
//
// # Concurrency
//
// [Normalize] and [Serialize] are pure functions without shared mutable
// state and are safe for concurrent use. Resource values themselves are
// not safe for concurrent modification; use [Resource.Clone] when
// sharing across goroutines.
package webfinger
