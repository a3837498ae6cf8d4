package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "de-DE"}, b.Locales())
}

func TestStatusLabels(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	en := b.Localizer("en-US")
	assert.Equal(t, "Open", en.Text(TaskStatusOpen))
	assert.Equal(t, "In Progress", en.Text(TaskStatusInProgress))
	assert.Equal(t, "Done", en.Text(TaskStatusDone))

	de := b.Localizer("de-DE")
	assert.Equal(t, "Offen", de.Text(TaskStatusOpen))
	assert.Equal(t, "In Bearbeitung", de.Text(TaskStatusInProgress))
	assert.Equal(t, "Erledigt", de.Text(TaskStatusDone))
}

func TestLocalizer_FallsBackToBase(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	de := b.Localizer("de-DE")
	assert.Equal(t, "Keyboard Shortcuts", de.Text("HELP_TITLE"), "key missing from de-DE uses en-US")
	assert.Equal(t, "UNKNOWN_KEY", de.Text("UNKNOWN_KEY"))
	assert.Equal(t, "ID 42 kopiert", de.Text("NOTICE_COPIED", "42"))
}

func TestMatch(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	cases := map[string]string{
		"en-US":     "en-US",
		"de-DE":     "de-DE",
		"de":        "de-DE",
		"de-AT":     "de-DE",
		"en-GB":     "en-US",
		"ja-JP":     "en-US",
		"not a tag": "en-US",
		"":          "en-US",
	}
	for in, want := range cases {
		assert.Equal(t, want, b.Localizer(in).Locale(), "locale %q", in)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		fs   fstest.MapFS
	}{
		{"empty", fstest.MapFS{}},
		{"missing base", fstest.MapFS{
			"locales/de-DE.toml": {Data: []byte("locale = \"de-DE\"\n[messages]\nA = \"a\"\n")},
		}},
		{"name mismatch", fstest.MapFS{
			"locales/en-US.toml": {Data: []byte("locale = \"de-DE\"\n[messages]\nA = \"a\"\n")},
		}},
		{"bad toml", fstest.MapFS{
			"locales/en-US.toml": {Data: []byte("locale = \n")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.fs)
			assert.Error(t, err)
		})
	}
}

func TestLoad_CustomTables(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US.toml": {Data: []byte("locale = \"en-US\"\n[messages]\nGREETING = \"Hello %s\"\nBYE = \"Bye\"\n")},
		"locales/fr-FR.toml": {Data: []byte("locale = \"fr-FR\"\n[messages]\nGREETING = \"Bonjour %s\"\n")},
	}
	b, err := Load(fsys)
	require.NoError(t, err)

	fr := b.Localizer("fr")
	assert.Equal(t, "fr-FR", fr.Locale())
	assert.Equal(t, "Bonjour Ada", fr.Text("GREETING", "Ada"))
	assert.Equal(t, "Bye", fr.Text("BYE"))
}
