// Package provider defines the provider-native hosting configuration schema
// and the transformer that produces it from a user-authored configuration and
// the backend inventory.
package provider

import (
	"encoding/json"
)

// Trailing-slash behaviors accepted by the hosting API.
const (
	TrailingSlashAdd    = "ADD"
	TrailingSlashRemove = "REMOVE"
)

// Config is the literal configuration shape the hosting API accepts. Section
// presence mirrors the input: a nil slice means the section was absent and is
// omitted on the wire, while an empty non-nil slice is emitted as [].
type Config struct {
	Rewrites       []Rewrite    `json:"rewrites,omitempty"`
	Redirects      []Redirect   `json:"redirects,omitempty"`
	Headers        []HeaderRule `json:"headers,omitempty"`
	CleanURLs      *bool        `json:"cleanUrls,omitempty"`
	TrailingSlash  string       `json:"trailingSlashBehavior,omitempty"`
	AppAssociation string       `json:"appAssociation,omitempty"`
	I18n           *I18n        `json:"i18n,omitempty"`
}

// MarshalJSON keeps the nil-vs-empty distinction for list sections, which
// omitempty alone would collapse.
func (c Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{})
	if c.Rewrites != nil {
		out["rewrites"] = c.Rewrites
	}
	if c.Redirects != nil {
		out["redirects"] = c.Redirects
	}
	if c.Headers != nil {
		out["headers"] = c.Headers
	}
	if c.CleanURLs != nil {
		out["cleanUrls"] = *c.CleanURLs
	}
	if c.TrailingSlash != "" {
		out["trailingSlashBehavior"] = c.TrailingSlash
	}
	if c.AppAssociation != "" {
		out["appAssociation"] = c.AppAssociation
	}
	if c.I18n != nil {
		out["i18n"] = c.I18n
	}
	return json.Marshal(out)
}

// Rewrite is a fully resolved provider rewrite. Exactly one of Path,
// Function, Run, and DynamicLinks is populated; no symbolic references
// remain.
type Rewrite struct {
	Glob  string `json:"glob,omitempty"`
	Regex string `json:"regex,omitempty"`

	Path           string      `json:"path,omitempty"`
	Function       string      `json:"function,omitempty"`
	FunctionRegion string      `json:"functionRegion,omitempty"`
	Run            *RunRewrite `json:"run,omitempty"`
	DynamicLinks   bool        `json:"dynamicLinks,omitempty"`
}

// RunRewrite routes a rewrite through a container service.
type RunRewrite struct {
	ServiceID string `json:"serviceId"`
	Region    string `json:"region,omitempty"`
}

// Redirect is a provider redirect.
type Redirect struct {
	Glob       string `json:"glob,omitempty"`
	Regex      string `json:"regex,omitempty"`
	Location   string `json:"location"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// HeaderRule attaches a header mapping to matched paths. The mapping is
// always present, even when empty.
type HeaderRule struct {
	Glob    string            `json:"glob,omitempty"`
	Regex   string            `json:"regex,omitempty"`
	Headers map[string]string `json:"headers"`
}

// I18n configures the internationalized-content root.
type I18n struct {
	Root string `json:"root"`
}
