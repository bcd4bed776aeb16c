package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Settings holds the runtime options of fieldkit consumers.
type Settings struct {
	// SupportedLanguages sets how many entries a translation set must hold.
	SupportedLanguages []string `env:"FIELDKIT_SUPPORTED_LANGUAGES" envSeparator:"," envDefault:"en,ru,uz"`
	// PhoneRegion is the default region for national phone numbers.
	PhoneRegion    string `env:"FIELDKIT_PHONE_REGION"`
	ValidationMode string `env:"FIELDKIT_VALIDATION_MODE" envDefault:"all"`
	LogLevel       string `env:"FIELDKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"FIELDKIT_LOG_FORMAT" envDefault:"json"`
	DocsAddr       string `env:"FIELDKIT_DOCS_ADDR" envDefault:":8080"`
}

// LoadSettings loads Settings through the cached loader and validates them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

// ParseSettings reads Settings from the current environment, bypassing the
// cache.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingConfig, err)
	}
	return s, s.Validate()
}

// Validate checks values that env tags cannot express.
func (s Settings) Validate() error {
	var errs []error
	if _, err := s.Languages(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.Mode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(s.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if s.PhoneRegion != "" && phonenumbers.GetCountryCodeForRegion(strings.ToUpper(s.PhoneRegion)) == 0 {
		errs = append(errs, fmt.Errorf("unknown phone region %q", s.PhoneRegion))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSettings}, errs...)...)
	}
	return nil
}

// Languages parses SupportedLanguages as BCP 47 tags. Duplicates collapse.
func (s Settings) Languages() ([]language.Tag, error) {
	tags := make([]language.Tag, 0, len(s.SupportedLanguages))
	seen := make(map[language.Tag]bool, len(s.SupportedLanguages))
	for _, code := range s.SupportedLanguages {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("supported language %q: %w", code, err)
		}
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, errors.New("no supported languages configured")
	}
	return tags, nil
}

// LanguageCount is the expected size of a translation set. It is zero when
// the language list is invalid.
func (s Settings) LanguageCount() int {
	tags, err := s.Languages()
	if err != nil {
		return 0
	}
	return len(tags)
}

func (s Settings) Mode() (field.Mode, error) {
	return field.ParseMode(s.ValidationMode)
}

// Region returns PhoneRegion in the upper-case form phonenumbers expects.
func (s Settings) Region() string {
	return strings.ToUpper(s.PhoneRegion)
}
