package resolver

// MapFieldErrors localizes every field message with the default rules.
// Fields absent from the input are absent from the output.
func MapFieldErrors[K comparable](fields map[K]string, c Catalog) map[K]string {
	return MapFieldErrorsWith(defaultResolver, fields, c)
}

// MapFieldErrorsWith is MapFieldErrors with an explicit resolver.
func MapFieldErrorsWith[K comparable](r *Resolver, fields map[K]string, c Catalog) map[K]string {
	out, _ := LookupFieldErrors(r, fields, c)
	return out
}

// LookupFieldErrors is MapFieldErrorsWith that also returns the raw messages
// no rule matched, keyed by field.
func LookupFieldErrors[K comparable](r *Resolver, fields map[K]string, c Catalog) (out, unmatched map[K]string) {
	out = make(map[K]string, len(fields))
	unmatched = make(map[K]string)
	for field, raw := range fields {
		msg, ok := r.Lookup(raw, c)
		out[field] = msg
		if !ok {
			unmatched[field] = raw
		}
	}
	return out, unmatched
}

// FirstErrors keeps the first message of each field. Fields with no
// messages are dropped.
func FirstErrors[K comparable](fields map[K][]string) map[K]string {
	out := make(map[K]string, len(fields))
	for field, msgs := range fields {
		if len(msgs) == 0 {
			continue
		}
		out[field] = msgs[0]
	}
	return out
}
