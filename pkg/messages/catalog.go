package messages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/appcadastro/registro/pkg/validator"
)

// DefaultLanguage is used when a request names no supported language.
const DefaultLanguage = "pt-BR"

//go:embed locales/*.yaml
var bundled embed.FS

// Entry pairs an error kind with the text shown for it.
type Entry struct {
	Kind    validator.Kind `yaml:"kind" json:"kind"`
	Message string         `yaml:"message" json:"message"`
}

type document struct {
	Fields  map[string][]Entry `yaml:"fields"`
	Notices map[string]string  `yaml:"notices"`
}

// Catalog maps (language, field, kind) to display text. It is read-only after
// loading and safe for concurrent use.
type Catalog struct {
	docs        map[string]document
	defaultLang string
	tags        []language.Tag
	matcher     language.Matcher
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage overrides DefaultLanguage.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// Bundled loads the catalogs shipped with the package (pt-BR and en).
func Bundled(opts ...Option) (*Catalog, error) {
	sub, err := fs.Sub(bundled, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, opts...)
}

// Load reads every *.yaml / *.yml file at the root of fsys. The file name
// without extension is the language tag, e.g. "pt-BR.yaml".
func Load(fsys fs.FS, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		docs:        make(map[string]document),
		defaultLang: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}

	def, err := language.Parse(c.defaultLang)
	if err != nil {
		return nil, errors.Join(ErrInvalidLanguage, err)
	}
	c.defaultLang = def.String()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrNoCatalogs, err)
	}

	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(e.Name(), ext))
		if err != nil {
			return nil, errors.Join(ErrInvalidLanguage, fmt.Errorf("%s: %w", e.Name(), err))
		}
		content, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
		doc, err := parse(content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParse, fmt.Errorf("%s: %w", e.Name(), err))
		}
		c.docs[tag.String()] = doc
	}

	if len(c.docs) == 0 {
		return nil, ErrNoCatalogs
	}
	if _, ok := c.docs[c.defaultLang]; !ok {
		return nil, ErrDefaultMissing
	}

	// The matcher falls back to the first tag, so the default goes first.
	c.tags = append(c.tags, def)
	for _, lang := range c.Languages() {
		if lang != c.defaultLang {
			c.tags = append(c.tags, language.MustParse(lang))
		}
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

func parse(content []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return document{}, err
	}
	for field, entries := range doc.Fields {
		for _, e := range entries {
			if e.Kind == "" {
				return document{}, fmt.Errorf("field %q: entry without kind", field)
			}
		}
	}
	return doc, nil
}

// Languages returns the loaded language tags, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.docs))
	for lang := range c.docs {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Match picks the best supported language for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.tags[idx].String()
}

// Field returns the catalog entries of a field in declaration order.
func (c *Catalog) Field(lang, field string) []Entry {
	if entries, ok := c.doc(lang).Fields[field]; ok {
		return slices.Clone(entries)
	}
	return slices.Clone(c.docs[c.defaultLang].Fields[field])
}

// Message returns the text for one marker. Missing entries fall back to the
// default language and then to the kind token itself.
func (c *Catalog) Message(lang, field string, kind validator.Kind) string {
	if msg, ok := lookup(c.doc(lang), field, kind); ok {
		return msg
	}
	if msg, ok := lookup(c.docs[c.defaultLang], field, kind); ok {
		return msg
	}
	return string(kind)
}

// Messages returns the texts for every marker in res, in catalog order.
// Markers without a catalog entry come last, sorted by kind.
func (c *Catalog) Messages(lang, field string, res validator.Result) []string {
	if res.Valid() {
		return nil
	}
	out := make([]string, 0, len(res))
	seen := make(map[validator.Kind]bool, len(res))
	for _, e := range c.Field(lang, field) {
		if res.Has(e.Kind) && !seen[e.Kind] {
			out = append(out, e.Message)
			seen[e.Kind] = true
		}
	}
	for _, kind := range res.Kinds() {
		if !seen[kind] {
			out = append(out, c.Message(lang, field, kind))
		}
	}
	return out
}

// Translate converts per-field markers into per-field texts.
func (c *Catalog) Translate(lang string, errs map[string]validator.Result) map[string][]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(errs))
	for field, res := range errs {
		if msgs := c.Messages(lang, field, res); len(msgs) > 0 {
			out[field] = msgs
		}
	}
	return out
}

// Notice returns a non-field text such as a confirmation, or key when it is unknown.
func (c *Catalog) Notice(lang, key string) string {
	if msg, ok := c.doc(lang).Notices[key]; ok {
		return msg
	}
	if msg, ok := c.docs[c.defaultLang].Notices[key]; ok {
		return msg
	}
	return key
}

func (c *Catalog) doc(lang string) document {
	if doc, ok := c.docs[lang]; ok {
		return doc
	}
	if tag, err := language.Parse(lang); err == nil {
		if doc, ok := c.docs[tag.String()]; ok {
			return doc
		}
	}
	return c.docs[c.defaultLang]
}

func lookup(doc document, field string, kind validator.Kind) (string, bool) {
	for _, e := range doc.Fields[field] {
		if e.Kind == kind {
			return e.Message, true
		}
	}
	return "", false
}
