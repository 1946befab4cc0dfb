package hosting

import (
	"fmt"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator validates hosting configurations.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a hosting configuration and returns all validation errors.
func (v *Validator) Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	for i, rw := range cfg.Rewrites {
		errs = append(errs, v.validateRewrite(i, rw)...)
	}
	for i, rd := range cfg.Redirects {
		field := fmt.Sprintf("redirects[%d]", i)
		errs = append(errs, validatePattern(field, rd.Glob, rd.Regex)...)
		if rd.Destination == "" {
			errs = append(errs, ValidationError{Field: field + ".destination", Message: "destination is required"})
		}
		if rd.Type != 0 && (rd.Type < 300 || rd.Type > 399) {
			errs = append(errs, ValidationError{Field: field + ".type", Message: "type must be a 3xx status code"})
		}
	}
	for i, h := range cfg.Headers {
		field := fmt.Sprintf("headers[%d]", i)
		errs = append(errs, validatePattern(field, h.Glob, h.Regex)...)
		for j, pair := range h.Headers {
			if pair.Key == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.headers[%d].key", field, j),
					Message: "key is required",
				})
			}
		}
	}
	if cfg.AppAssociation != "" && cfg.AppAssociation != "AUTO" && cfg.AppAssociation != "NONE" {
		errs = append(errs, ValidationError{Field: "appAssociation", Message: `must be "AUTO" or "NONE"`})
	}
	if cfg.I18n != nil && cfg.I18n.Root == "" {
		errs = append(errs, ValidationError{Field: "i18n.root", Message: "root is required"})
	}

	return errs
}

func (v *Validator) validateRewrite(i int, rw Rewrite) []ValidationError {
	field := fmt.Sprintf("rewrites[%d]", i)
	errs := validatePattern(field, rw.Glob, rw.Regex)

	targets := 0
	if rw.Destination != "" {
		targets++
	}
	if rw.DynamicLinks {
		targets++
	}
	if rw.Function != nil {
		targets++
		if rw.Function.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".function.name", Message: "name is required"})
		}
	}
	if rw.Run != nil {
		targets++
		if rw.Run.ServiceID == "" {
			errs = append(errs, ValidationError{Field: field + ".run.serviceId", Message: "serviceId is required"})
		}
	}

	switch targets {
	case 0:
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "a destination, dynamicLinks, function, or run target is required",
		})
	case 1:
		// Exactly one target, valid.
	default:
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "only one of destination, dynamicLinks, function, or run may be set",
		})
	}

	return errs
}

// validatePattern enforces that exactly one of the glob source and the regex
// pattern is present.
func validatePattern(field, glob, regex string) []ValidationError {
	switch {
	case glob == "" && regex == "":
		return []ValidationError{{Field: field, Message: "a source or regex pattern is required"}}
	case glob != "" && regex != "":
		return []ValidationError{{Field: field, Message: "source and regex are mutually exclusive"}}
	}
	return nil
}
