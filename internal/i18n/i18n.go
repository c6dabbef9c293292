package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle de mensajes: los defaults en inglés van
// embebidos y los archivos locales (locales/active.*.toml) se cargan si
// existen, para poder traducir sin recompilar.
func NewTranslations(defaultLang, localesDir string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesDir == "" {
		localesDir = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil && localized == "" {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "AI code review service for pull requests"

	[app_description]
	other = "Fetches PR metadata and diffs from GitHub, GitLab or Bitbucket and generates a code review with Gemini"

	[serve_command_usage]
	other = "Start the HTTP review server"

	[flag_host_usage]
	other = "Address to bind the HTTP listener"

	[flag_port_usage]
	other = "Port to bind the HTTP listener"

	[flag_debug_usage]
	other = "Enable debug logging"

	[flag_lang_usage]
	other = "Language for CLI and log messages"

	[warn_ai_disabled]
	other = "GEMINI_API_KEY is not set. Review generation will return errors; all other routes remain functional"

	[warn_provider_register]
	other = "Could not register the {{.Provider}} provider: {{.Error}}"

	[server_starting]
	other = "Starting review server"

	[server_stopped]
	other = "Review server stopped"

	[shutdown_signal]
	other = "Shutdown signal received"
	`
