package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrIncompletePack  = errors.New("translation pack is missing required keys")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Key identifies one translatable label.
type Key string

const (
	Title                    Key = "title"
	SelectImage              Key = "select_image"
	FileSize                 Key = "file_size"
	SelectStandardDimension  Key = "select_standard_dimension"
	StandardDimension        Key = "standard_dimension"
	Width                    Key = "width"
	Height                   Key = "height"
	SuggestedDimension       Key = "suggested_dimension"
	SelectSuggestedDimension Key = "select_suggested_dimension"
	NewSize                  Key = "new_size"
	SizeReduction            Key = "size_reduction"
	SizeJPG                  Key = "size_jpg"
	SizePNG                  Key = "size_png"
	Resize                   Key = "resize"
	Success                  Key = "success"
	ImageResized             Key = "image_resized"
)

var requiredKeys = []Key{
	Title, SelectImage, FileSize, SelectStandardDimension, StandardDimension,
	Width, Height, SuggestedDimension, SelectSuggestedDimension, NewSize,
	SizeReduction, SizeJPG, SizePNG, Resize, Success, ImageResized,
}

// RequiredKeys lists every key a language pack must define.
func RequiredKeys() []Key {
	return append([]Key(nil), requiredKeys...)
}

type Language string

const (
	English Language = "english"
	Persian Language = "persian"
)

var languages = []Language{English, Persian}

func Languages() []Language {
	return append([]Language(nil), languages...)
}

// ParseLanguage accepts a pack name ("persian") or its display name ("فارسی").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range languages {
		if strings.EqualFold(s, string(l)) || s == l.DisplayName() {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

func (l Language) FileName() string {
	return string(l) + ".json"
}

func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Persian:
		return "فارسی"
	default:
		return string(l)
	}
}

type Translations map[Key]string

func (t Translations) Get(k Key) string {
	if v, ok := t[k]; ok {
		return v
	}
	return string(k)
}

// Validate reports every required key the pack lacks.
func (t Translations) Validate() error {
	var missing []string
	for _, k := range requiredKeys {
		if _, ok := t[k]; !ok {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompletePack, strings.Join(missing, ", "))
	}
	return nil
}

// Load reads the language pack for lang from dir and checks it is complete.
func Load(dir string, lang Language) (Translations, error) {
	path := filepath.Join(dir, lang.FileName())

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations %s: %w", path, err)
	}

	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse translations %s: %w", path, err)
	}

	t := make(Translations, len(raw))
	for k, v := range raw {
		t[Key(k)] = v
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// LoadOrDefault is Load with the built-in English labels as the fallback.
func LoadOrDefault(dir string, lang Language, log *zap.Logger) Translations {
	t, err := Load(dir, lang)
	if err != nil {
		log.Error("Error loading translations, using built-in defaults",
			zap.String("language", string(lang)),
			zap.String("dir", dir),
			zap.Error(err))
		return Defaults()
	}

	log.Debug("Translations loaded",
		zap.String("language", string(lang)),
		zap.Int("keys", len(t)))

	return t
}

// Catalog holds one loaded pack per language.
type Catalog struct {
	packs    map[Language]Translations
	fallback Language
}

func NewCatalog(dir string, fallback Language, log *zap.Logger) *Catalog {
	c := &Catalog{
		packs:    make(map[Language]Translations, len(languages)),
		fallback: fallback,
	}
	for _, l := range languages {
		c.packs[l] = LoadOrDefault(dir, l, log)
	}
	return c
}

// Lookup returns the pack named by s, or the fallback pack when s is empty or unknown.
func (c *Catalog) Lookup(s string) Translations {
	if l, err := ParseLanguage(s); err == nil {
		return c.packs[l]
	}
	return c.packs[c.fallback]
}
