package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the UI strings of every supported language.
type Catalog struct {
	keys     map[Lang][]string
	printers map[Lang]*message.Printer
}

var defaultCatalog = mustLoadEmbedded()

func mustLoadEmbedded() *Catalog {
	c, err := LoadCatalog(localeFS)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads locales/<lang>.yaml for each supported language from fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(Default.Tag()))
	c := &Catalog{
		keys:     make(map[Lang][]string, len(supported)),
		printers: make(map[Lang]*message.Printer, len(supported)),
	}

	for _, lang := range supported {
		name := path.Join("locales", lang.String()+".yaml")
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		if strings.TrimSpace(file.Locale) != lang.String() {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name", name, file.Locale)
		}

		keys := make([]string, 0, len(file.Messages))
		for key, value := range file.Messages {
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("catalog %s: message key cannot be blank", name)
			}
			if err := builder.SetString(lang.Tag(), key, value); err != nil {
				return nil, fmt.Errorf("catalog %s: set %q: %w", name, key, err)
			}
			keys = append(keys, key)
		}
		slices.Sort(keys)
		c.keys[lang] = keys
	}

	for _, lang := range supported {
		c.printers[lang] = message.NewPrinter(lang.Tag(), message.Catalog(builder))
	}
	return c, nil
}

// Keys returns the sorted message keys defined for lang.
func (c *Catalog) Keys(lang Lang) []string {
	return slices.Clone(c.keys[lang])
}

// Printer returns the message printer for lang, or the default language's
// printer when lang is not supported.
func (c *Catalog) Printer(lang Lang) *message.Printer {
	if p, ok := c.printers[lang]; ok {
		return p
	}
	return c.printers[Default]
}

// T looks key up for lang. A missing key is returned unchanged.
func (c *Catalog) T(lang Lang, key string, args ...any) string {
	return c.Printer(lang).Sprintf(key, args...)
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// T looks key up in the embedded catalog.
func T(lang Lang, key string, args ...any) string {
	return defaultCatalog.T(lang, key, args...)
}
