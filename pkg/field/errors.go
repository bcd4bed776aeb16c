package field

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError through errors.Is.
var ErrConfiguration = errors.New("invalid field configuration")

// ConfigurationError reports contradictory builder options. Builders panic
// with it while descriptors are declared, so misconfiguration stops the
// process at startup instead of surfacing per request.
type ConfigurationError struct {
	Subject string
	Option  string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s field: %s: %s", e.Subject, e.Option, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func misconfigured(kind Kind, option, reason string) {
	panic(&ConfigurationError{Subject: kind.String(), Option: option, Reason: reason})
}

// Catch runs a builder and converts a configuration panic into an error.
// Useful when options come from runtime configuration. Any other panic is
// propagated.
func Catch(build func() Descriptor) (d Descriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfgErr, ok := r.(*ConfigurationError)
			if !ok {
				panic(r)
			}
			err = cfgErr
		}
	}()
	return build(), nil
}
