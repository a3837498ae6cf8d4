// Package i18n loads the resource-text tables and serves localized strings.
//
// Tables are embedded TOML files under locales/, one per locale. Every locale
// is layered over the base locale, so a key missing from a translation falls
// back to the en-US text.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the fallback locale every table is layered over.
const BaseLocale = "en-US"

// Status label keys.
const (
	TaskStatusOpen       = "TASK_STATUS_OPEN"
	TaskStatusInProgress = "TASK_STATUS_IN_PROGRESS"
	TaskStatusDone       = "TASK_STATUS_DONE"
)

//go:embed locales/*.toml
var embedded embed.FS

type tableFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// Bundle holds every loaded table and the x/text catalog built from them.
type Bundle struct {
	tables  map[string]map[string]string
	tags    []language.Tag
	matcher language.Matcher
	catalog *catalog.Builder
}

// LoadEmbedded loads the tables compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return Load(embedded)
}

// Load reads locales/*.toml from fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locale tables: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale tables found")
	}
	sort.Strings(paths)

	tables := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale table %s: %w", p, err)
		}
		var file tableFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale table %s: %w", p, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); locale != want {
			return nil, fmt.Errorf("locale table %s: locale %q must match file name %q", p, locale, want)
		}
		if _, dup := tables[locale]; dup {
			return nil, fmt.Errorf("locale table %s: locale %q already loaded", p, locale)
		}
		msgs := make(map[string]string, len(file.Messages))
		for k, v := range file.Messages {
			k = strings.TrimSpace(k)
			if k == "" {
				return nil, fmt.Errorf("locale table %s: message key cannot be blank", p)
			}
			msgs[k] = v
		}
		tables[locale] = msgs
	}

	base, ok := tables[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	locales := make([]string, 0, len(tables))
	for l := range tables {
		if l != BaseLocale {
			locales = append(locales, l)
		}
	}
	sort.Strings(locales)
	locales = append([]string{BaseLocale}, locales...)

	b := &Bundle{
		tables:  tables,
		catalog: catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", l, err)
		}
		b.tags = append(b.tags, tag)
		for k, v := range base {
			if err := b.catalog.SetString(tag, k, v); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", l, k, err)
			}
		}
		for k, v := range tables[l] {
			if err := b.catalog.SetString(tag, k, v); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", l, k, err)
			}
		}
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales returns the loaded locales, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, t := range b.tags {
		out[i] = t.String()
	}
	return out
}

// Match picks the loaded locale closest to the requested one. Unparseable or
// unsupported requests resolve to the base locale.
func (b *Bundle) Match(locale string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return b.tags[0]
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Localizer returns a printer for the closest loaded locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.Match(locale)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.catalog)),
	}
}

// Localizer renders messages for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Locale is the matched locale.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Text formats the message stored under key. Unknown keys render as the key.
func (l *Localizer) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
