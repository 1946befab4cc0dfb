package inventory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hostwise/hostctl/pkg/errors"
)

// Load parses an inventory document (YAML or JSON) from the given path.
// The document carries the deploy groups for the current operation and the
// live snapshot; see LoadFromBytes for validation rules.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, fmt.Sprintf("failed to read %s", path), err)
	}
	return LoadFromBytes(data, path)
}

// LoadFromBytes parses an inventory document from raw bytes.
func LoadFromBytes(data []byte, sourcePath string) (*Index, error) {
	var idx Index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, errors.ParseError(sourcePath, err)
	}

	var errs []string
	for _, group := range idx.Groups {
		for _, b := range append(append([]Backend{}, group.Target...), group.Live...) {
			if err := validateBackend(group.Name, b); err != "" {
				errs = append(errs, err)
			}
		}
	}
	for region, byID := range idx.Snapshot.Backends {
		for id, b := range byID {
			if b.ID == "" {
				b.ID = id
			}
			if b.Region == "" {
				b.Region = region
			}
			if b.ID != id || b.Region != region {
				errs = append(errs, fmt.Sprintf("snapshot.%s.%s: descriptor id/region does not match its index position", region, id))
			}
			if err := validateBackend("snapshot", b); err != "" {
				errs = append(errs, err)
			}
			byID[id] = b
		}
	}

	if len(errs) > 0 {
		return nil, errors.ValidationError("inventory validation failed", map[string]interface{}{
			"errors": errs,
		})
	}
	return &idx, nil
}

func validateBackend(scope string, b Backend) string {
	if b.ID == "" {
		return fmt.Sprintf("%s: backend is missing an id", scope)
	}
	if b.Region == "" {
		return fmt.Sprintf("%s: backend %s is missing a region", scope, b.ID)
	}
	switch b.Platform {
	case PlatformLegacy, PlatformModern:
		return ""
	default:
		return fmt.Sprintf("%s: backend %s has unknown platform %q", scope, b.ID, b.Platform)
	}
}
