// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more `.env` files (the default `.env` when no path
//     is given); later files win.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each configuration is parsed once per process.
//   - MustLoad and MustLoadEnv panic on failure for configuration the process
//     cannot start without.
//   - ResetCache and ForceReloadConfig exist for tests.
//
// Settings is the configuration fieldkit itself reads:
//
//	FIELDKIT_SUPPORTED_LANGUAGES  comma separated BCP 47 tags (default en,ru,uz)
//	FIELDKIT_PHONE_REGION         default region for national phone numbers
//	FIELDKIT_VALIDATION_MODE      all | first (default all)
//	FIELDKIT_LOG_LEVEL            debug | info | warn | error (default info)
//	FIELDKIT_LOG_FORMAT           json | text (default json)
//	FIELDKIT_DOCS_ADDR            listen address of the schema docs server
//
// # Usage
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//		log.Fatal(err)
//	}
//	translations := field.TranslationSet(TranslationSchema, field.TranslationOptions{
//		Languages: settings.LanguageCount(),
//	})
//
// # Error Handling
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile, ErrInvalidSettings and ErrNilPointer.
package config
