package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed value per config type. Failed parses are not
// cached, so a later call can succeed once the environment is fixed.
var cache = struct {
	sync.Mutex
	values map[reflect.Type]any
}{values: make(map[reflect.Type]any)}

var defaultEnvLoaded sync.Once

// Load parses environment variables into v using its env struct tags. The
// first successful parse of each type is cached and returned to every later
// caller of that type. A .env file in the working directory is read once
// before the first parse if it exists.
//
//	type DocsConfig struct {
//		Addr string `env:"FIELDKIT_DOCS_ADDR" envDefault:":8080"`
//	}
//
//	var cfg DocsConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cache.Lock()
	defer cache.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment. Later
// files override earlier ones and the existing environment. With no paths the
// default .env in the working directory is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	cache.Lock()
	defer cache.Unlock()
	clear(cache.values)
}

// ForceReloadConfig parses the environment again for T and replaces the
// cached value.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cache.Lock()
	delete(cache.values, reflect.TypeFor[T]())
	cache.Unlock()

	return Load(v)
}
