// Package hosting defines the user-authored hosting configuration schema and
// its loader. The schema is the input to the provider transformer; symbolic
// function and service references in it are resolved at deploy time against
// the backend inventory.
package hosting

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is a user-authored hosting configuration. A nil slice or pointer
// means the section was absent from the source document, which is distinct
// from an explicitly empty section.
type Config struct {
	Rewrites       []Rewrite    `yaml:"rewrites,omitempty" json:"rewrites,omitempty"`
	Redirects      []Redirect   `yaml:"redirects,omitempty" json:"redirects,omitempty"`
	Headers        []HeaderRule `yaml:"headers,omitempty" json:"headers,omitempty"`
	CleanURLs      *bool        `yaml:"cleanUrls,omitempty" json:"cleanUrls,omitempty"`
	TrailingSlash  *bool        `yaml:"trailingSlash,omitempty" json:"trailingSlash,omitempty"`
	AppAssociation string       `yaml:"appAssociation,omitempty" json:"appAssociation,omitempty"`
	I18n           *I18n        `yaml:"i18n,omitempty" json:"i18n,omitempty"`
}

// Rewrite routes a matched path to a destination: a literal URL, a platform
// dynamic-links handler, a compute function, or a container service. Exactly
// one of Glob/Regex and exactly one target variant must be set; the validator
// enforces both.
type Rewrite struct {
	Glob  string `yaml:"source,omitempty" json:"source,omitempty"`
	Regex string `yaml:"regex,omitempty" json:"regex,omitempty"`

	Destination  string          `yaml:"destination,omitempty" json:"destination,omitempty"`
	DynamicLinks bool            `yaml:"dynamicLinks,omitempty" json:"dynamicLinks,omitempty"`
	Function     *FunctionTarget `yaml:"function,omitempty" json:"function,omitempty"`
	Run          *RunTarget      `yaml:"run,omitempty" json:"run,omitempty"`
}

// FunctionTarget is a symbolic reference to a compute function backend.
// In YAML it accepts both the scalar shorthand `function: api` and the
// mapping form `function: {name: api, region: europe-west1}`.
type FunctionTarget struct {
	Name   string `yaml:"name" json:"name"`
	Region string `yaml:"region,omitempty" json:"region,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand for a function reference.
func (f *FunctionTarget) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		f.Name = name
		return nil
	}

	// Plain struct alias avoids recursing into this method.
	type plain FunctionTarget
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("function target must be a name or a {name, region} mapping: %w", err)
	}
	*f = FunctionTarget(p)
	return nil
}

// RunTarget is a symbolic reference to a container service. Region defaults
// to the provider default region when absent.
type RunTarget struct {
	ServiceID string `yaml:"serviceId" json:"serviceId"`
	Region    string `yaml:"region,omitempty" json:"region,omitempty"`
}

// Redirect maps a matched path to a fixed location with an optional HTTP
// status code.
type Redirect struct {
	Glob        string `yaml:"source,omitempty" json:"source,omitempty"`
	Regex       string `yaml:"regex,omitempty" json:"regex,omitempty"`
	Destination string `yaml:"destination" json:"destination"`
	Type        int    `yaml:"type,omitempty" json:"type,omitempty"`
}

// HeaderRule attaches an ordered list of header pairs to matched paths.
type HeaderRule struct {
	Glob    string   `yaml:"source,omitempty" json:"source,omitempty"`
	Regex   string   `yaml:"regex,omitempty" json:"regex,omitempty"`
	Headers []Header `yaml:"headers" json:"headers"`
}

// Header is a single key/value pair on a header rule.
type Header struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// I18n configures the internationalized-content root.
type I18n struct {
	Root string `yaml:"root" json:"root"`
}
