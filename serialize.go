package webfinger

// Serialize renders a normalized resource to its canonical string form,
// typically used as a discovery request target or a cache key.
//
// A nil resource serializes to the empty string: "nothing to serialize"
// is a valid input, not an error. See [Resource.RenderTo] for the
// per-scheme serialization rules. Serialization never fails for a
// well-formed resource.
func Serialize(r *Resource) string {
	return r.Render(nil)
}
