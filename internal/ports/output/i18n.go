package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

// Translator is a T that also negotiates which of its locales serves a
// request.
type Translator interface {
	T
	// Match returns the best supported locale for the given preferences
	// (tags or Accept-Language values), or the default locale.
	Match(preferences ...string) string
}
