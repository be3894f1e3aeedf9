// Package catalog holds the site's UI copy. Each locale is a directory of
// YAML files, one per page namespace, registered with golang.org/x/text/message
// so templates can translate by key.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every page is written in first; other locales
// fall back to it key by key.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var localesFS embed.FS

var defaultBundle = func() *Bundle {
	bundle, err := LoadEmbedded()
	if err == nil {
		err = bundle.Register()
	}
	if err != nil {
		panic(fmt.Sprintf("i18n catalog: %v", err))
	}
	return bundle
}()

// Default returns the embedded bundle. Its messages are registered with
// x/text at package init.
func Default() *Bundle {
	return defaultBundle
}

// namespaceFile is one locales/<locale>/<namespace>.yaml file.
type namespaceFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle is the copy for every loaded locale.
type Bundle struct {
	// text maps locale to message key to copy.
	text map[string]map[string]string
	// keys maps locale to namespace to the namespace's sorted keys.
	keys map[string]map[string][]string
}

// LoadEmbedded loads the locales compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(localesFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml file in fsys.
//
// A file's locale and namespace fields must match its path, every key must
// be prefixed with "<namespace>.", and BaseLocale must be present.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no locale files")
	}
	sort.Strings(files)

	b := &Bundle{
		text: map[string]map[string]string{},
		keys: map[string]map[string][]string{},
	}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var file namespaceFile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if err := b.add(name, file); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("no copy for base locale %s", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) add(name string, file namespaceFile) error {
	locale := strings.TrimSpace(file.Locale)
	namespace := strings.TrimSpace(file.Namespace)
	switch dirLocale, fileNamespace := path.Base(path.Dir(name)), strings.TrimSuffix(path.Base(name), ".yaml"); {
	case locale == "" || namespace == "":
		return errors.New("locale and namespace are required")
	case locale != dirLocale:
		return fmt.Errorf("locale %q is filed under %q", locale, dirLocale)
	case namespace != fileNamespace:
		return fmt.Errorf("namespace %q is filed as %q", namespace, fileNamespace)
	case len(file.Messages) == 0:
		return errors.New("no messages")
	}

	text := b.text[locale]
	if text == nil {
		text = map[string]string{}
		b.text[locale] = text
		b.keys[locale] = map[string][]string{}
	}
	if _, dup := b.keys[locale][namespace]; dup {
		return fmt.Errorf("namespace %q loaded twice for %s", namespace, locale)
	}

	keys := make([]string, 0, len(file.Messages))
	for raw, value := range file.Messages {
		key := strings.TrimSpace(raw)
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("key %q outside namespace %q", key, namespace)
		}
		if _, dup := text[key]; dup {
			return fmt.Errorf("key %q defined twice for %s", key, locale)
		}
		text[key] = value
		keys = append(keys, key)
	}
	sort.Strings(keys)
	b.keys[locale][namespace] = keys
	return nil
}

// Register installs every message with x/text under its locale tag and,
// when different, the tag's bare language, so "en" matches "en-US" copy.
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if bare := language.Make(base.String()); bare != tag {
				tags = append(tags, bare)
			}
		}
		for _, namespace := range sortedKeys(b.keys[locale]) {
			for _, key := range b.keys[locale][namespace] {
				for _, t := range tags {
					if err := message.SetString(t, key, b.text[locale][key]); err != nil {
						return fmt.Errorf("register %s %s: %w", locale, key, err)
					}
				}
			}
		}
	}
	return nil
}

// Tags returns the tag of every locale, BaseLocale first, for language
// matching.
func (b *Bundle) Tags() []language.Tag {
	if b == nil {
		return nil
	}
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for _, locale := range b.Locales() {
		if locale == BaseLocale {
			continue
		}
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasLocale reports whether any copy was loaded for locale.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.text[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the loaded locales, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return sortedKeys(b.text)
}

// Message returns the copy for key in locale, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	for _, l := range []string{strings.TrimSpace(locale), BaseLocale} {
		if value, ok := b.text[l][key]; ok {
			return value, true
		}
	}
	return "", false
}

// Keys returns the sorted message keys of one namespace in locale.
func (b *Bundle) Keys(locale, namespace string) []string {
	if b == nil {
		return nil
	}
	keys := b.keys[strings.TrimSpace(locale)][strings.TrimSpace(namespace)]
	return append([]string(nil), keys...)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
