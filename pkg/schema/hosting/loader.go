package hosting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hostwise/hostctl/pkg/errors"
)

// Loader parses and validates hosting configuration files.
type Loader interface {
	Load(path string) (*Config, error)
	LoadFromBytes(data []byte, sourcePath string) (*Config, error)
	Validate(path string) error
}

type loader struct {
	validator *Validator
}

// NewLoader creates a hosting configuration loader. YAML and JSON documents
// are both accepted; JSON parses as a YAML subset.
func NewLoader() Loader {
	return &loader{validator: NewValidator()}
}

// Load parses a hosting configuration from the given path.
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, fmt.Sprintf("failed to read %s", path), err)
	}
	return l.LoadFromBytes(data, path)
}

// LoadFromBytes parses a hosting configuration from raw bytes.
func (l *loader) LoadFromBytes(data []byte, sourcePath string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ParseError(sourcePath, err)
	}

	if validationErrors := l.validator.Validate(&cfg); len(validationErrors) > 0 {
		errMsgs := make([]string, len(validationErrors))
		for i, e := range validationErrors {
			errMsgs[i] = e.Error()
		}
		return nil, errors.ValidationError(
			"hosting configuration validation failed",
			map[string]interface{}{
				"errors": errMsgs,
			},
		)
	}

	return &cfg, nil
}

// Validate parses and validates without returning the configuration.
func (l *loader) Validate(path string) error {
	_, err := l.Load(path)
	return err
}
