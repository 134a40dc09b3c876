package i18n

import (
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmsg/internal/domain/messages"
)

func newTestTranslator(t *testing.T, locale string) *Translator {
	t.Helper()
	return NewTranslator(locale, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCatalogsDefineEveryMessage(t *testing.T) {
	files, err := fs.Glob(localeFS, "active.*.toml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			data, err := fs.ReadFile(localeFS, file)
			require.NoError(t, err)

			var groups map[string]map[string]string
			require.NoError(t, toml.Unmarshal(data, &groups))

			for _, id := range messages.All() {
				group, name, ok := splitID(string(id))
				require.True(t, ok, "malformed id %s", id)
				assert.NotEmpty(t, groups[group][name], "%s missing %s", file, id)
			}
		})
	}
}

func splitID(id string) (string, string, bool) {
	for i := 0; i < len(id); i++ {
		if id[i] == '.' {
			return id[:i], id[i+1:], true
		}
	}
	return "", "", false
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t, "en")

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"english", "en", string(messages.AuthInvalidEmail), "Please enter a valid email address."},
		{"french", "fr", string(messages.AuthInvalidEmail), "Veuillez saisir une adresse e-mail valide."},
		{"regional french", "fr-CA", string(messages.CommonForbidden), "Vous n'êtes pas autorisé à effectuer cette action."},
		{"unknown locale falls back to default", "de", string(messages.ProfileUpdated), "Your profile has been updated."},
		{"empty locale uses default", "", string(messages.AuthLoggedOut), "You have been signed out."},
		{"unknown key returns key", "fr", "auth.doesNotExist", "auth.doesNotExist"},
		{"empty key", "fr", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.locale, tt.key, nil))
		})
	}
}

func TestTranslator_DefaultLocale(t *testing.T) {
	assert.Equal(t, "fr", newTestTranslator(t, "fr").DefaultLocale())
	assert.Equal(t, "en", newTestTranslator(t, "not a locale!").DefaultLocale())
	assert.Equal(t, "fr", newTestTranslator(t, "fr-CA").DefaultLocale())
}

func TestTranslator_DefaultWithoutCatalog(t *testing.T) {
	tr := newTestTranslator(t, "de")
	assert.Equal(t, "en", tr.DefaultLocale())
	assert.Equal(t, []string{"en", "fr"}, tr.Locales())
	assert.Equal(t, "en", tr.Match("", "de-DE,de;q=0.9"))

	want := newTestTranslator(t, "en").T("en", "auth.tooManyLoginAttempts", nil)
	assert.NotEqual(t, "auth.tooManyLoginAttempts", want)
	assert.Equal(t, want, tr.T(tr.Match(""), "auth.tooManyLoginAttempts", nil))
	assert.Equal(t, want, tr.T("de", "auth.tooManyLoginAttempts", nil))
}

func TestTranslator_Locales(t *testing.T) {
	tr := newTestTranslator(t, "fr")
	assert.Equal(t, []string{"fr", "en"}, tr.Locales())
}

func TestTranslator_Match(t *testing.T) {
	tr := newTestTranslator(t, "en")

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"none", nil, "en"},
		{"single tag", []string{"fr"}, "fr"},
		{"regional tag", []string{"fr-BE"}, "fr"},
		{"accept-language header", []string{"de-DE,fr;q=0.8,en;q=0.5"}, "fr"},
		{"first usable preference wins", []string{"", "fr", "en"}, "fr"},
		{"unsupported falls through", []string{"ja", "fr"}, "fr"},
		{"garbage", []string{";;;"}, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}
