package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogs embed.FS

// Translator resolves message IDs for one language, falling back to English.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded catalogs and selects lang.
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(catalogs, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(catalogs, file); err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", file, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// T returns the localized text for id, or id itself when no catalog has it.
func (t *Translator) T(id string) string {
	msg, _ := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg == "" {
		return id
	}
	return msg
}

func (t *Translator) Language() language.Tag {
	return t.tag
}
