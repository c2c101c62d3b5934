// Package i18n renders player-facing reforge messages from embedded YAML
// catalogs. Unknown languages fall back to English.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the loaded locales
type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// Load reads the catalogs embedded in the binary
func Load() (*Catalog, error) {
	return LoadFS(localesFS)
}

// LoadFS reads every locales/*.yaml file in fsys. The file name must match
// the locale it declares, and English must be present.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, LocaleGlob)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGlobFailed, err)
	}
	if len(paths) == 0 {
		return nil, errors.New(ErrMsgNoCatalogs)
	}
	sort.Strings(paths)

	c := &Catalog{builder: catalog.NewBuilder(catalog.Fallback(language.English))}
	seen := make(map[string]bool, len(paths))
	hasBase := false

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadFailed, p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf(ErrMsgParseFailed, p, err)
		}

		locale := strings.TrimSpace(file.Locale)
		if locale == "" {
			return nil, fmt.Errorf(ErrMsgLocaleRequired, p)
		}
		if locale != strings.TrimSuffix(path.Base(p), path.Ext(p)) {
			return nil, fmt.Errorf(ErrMsgLocaleMismatch, p, locale)
		}
		if seen[locale] {
			return nil, fmt.Errorf(ErrMsgDuplicateLocale, p, locale)
		}
		seen[locale] = true

		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgBadLocale, p, locale, err)
		}

		keys := make([]string, 0, len(file.Messages))
		for key := range file.Messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := c.builder.SetString(tag, key, file.Messages[key]); err != nil {
				return nil, fmt.Errorf(ErrMsgSetMessage, p, key, err)
			}
		}

		// The matcher falls back to its first tag
		if tag == language.English {
			hasBase = true
			c.tags = append([]language.Tag{tag}, c.tags...)
		} else {
			c.tags = append(c.tags, tag)
		}
	}

	if !hasBase {
		return nil, fmt.Errorf(ErrMsgBaseMissing, LocaleEnglish)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Locales lists the loaded locale codes, English first
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.tags))
	for _, tag := range c.tags {
		out = append(out, tag.String())
	}
	return out
}

// IsSupported reports whether code resolves to a loaded locale
func (c *Catalog) IsSupported(code string) bool {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return false
	}
	_, _, confidence := c.matcher.Match(tag)
	return confidence != language.No
}

// Match resolves code to the closest loaded locale
func (c *Catalog) Match(code string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return c.tags[0]
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return c.tags[0]
	}
	return c.tags[index]
}

// Printer returns a printer bound to the closest locale for code
func (c *Catalog) Printer(code string) *message.Printer {
	return message.NewPrinter(c.Match(code), message.Catalog(c.builder))
}

// Translate renders key in the closest locale for code
func (c *Catalog) Translate(code, key string, args ...any) string {
	return c.Printer(code).Sprintf(key, args...)
}
