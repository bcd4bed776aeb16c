package docserver

import "time"

type Config struct {
	ReadTimeout     time.Duration `env:"FIELDKIT_DOCS_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FIELDKIT_DOCS_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"FIELDKIT_DOCS_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Options converts non-zero config values into options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 3)
	if c.ReadTimeout > 0 {
		opts = append(opts, WithReadTimeout(c.ReadTimeout))
	}
	if c.WriteTimeout > 0 {
		opts = append(opts, WithWriteTimeout(c.WriteTimeout))
	}
	if c.ShutdownTimeout > 0 {
		opts = append(opts, WithShutdownTimeout(c.ShutdownTimeout))
	}
	return opts
}
