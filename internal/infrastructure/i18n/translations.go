package i18n

import (
	"embed"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"authmsg/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	supported       []language.Tag
	matcher         language.Matcher
	logger          *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en"). Every embedded active.*.toml file is loaded. A default
// without a catalog is replaced by the closest loaded locale, or en.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		logger.Warn("i18n: invalid default locale, using en", "locale", defaultLocale, "err", err)
		tag = language.English
	}

	bundle, loaded := loadBundle(tag, logger)
	if len(loaded) > 0 {
		_, index, confidence := language.NewMatcher(loaded).Match(tag)
		fallback := language.English
		if confidence != language.No {
			fallback = loaded[index]
		}
		if fallback != tag {
			if confidence == language.No {
				logger.Warn("i18n: no catalog for default locale, using en", "locale", defaultLocale)
			}
			tag = fallback
			bundle, loaded = loadBundle(tag, logger)
		}
	}

	// The matcher falls back to its first entry, so the default goes first.
	supported := []language.Tag{tag}
	for _, t := range loaded {
		if t != tag {
			supported = append(supported, t)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		supported:       supported,
		matcher:         language.NewMatcher(supported),
		logger:          logger,
	}
}

// loadBundle loads every embedded catalog and returns the locales that have one.
func loadBundle(defaultLanguage language.Tag, logger *slog.Logger) (*i18n.Bundle, []language.Tag) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var loaded []language.Tag
	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(localeFS, file)
		if err != nil {
			logger.Error("i18n: failed to load catalog", "file", file, "err", err)
			continue
		}
		loaded = append(loaded, mf.Tag)
	}
	return bundle, loaded
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Warn("i18n: localize failed", "key", key, "locales", languages, "err", err)
		return key
	}
	return msg
}

// DefaultLocale returns the fallback locale.
func (t *Translator) DefaultLocale() string {
	return t.defaultLanguage.String()
}

// Locales lists the loaded locales, default first.
func (t *Translator) Locales() []string {
	out := make([]string, len(t.supported))
	for i, tag := range t.supported {
		out[i] = tag.String()
	}
	return out
}

// Match picks the best loaded locale for the given preferences, in priority
// order. Each preference may be a single tag ("fr") or a full Accept-Language
// header ("fr-CA,fr;q=0.9,en;q=0.5"). Unknown or empty preferences yield the
// default locale.
func (t *Translator) Match(preferences ...string) string {
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := t.matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return t.supported[index].String()
	}
	return t.defaultLanguage.String()
}
