package provider

import (
	"github.com/hostwise/hostctl/pkg/errors"
	"github.com/hostwise/hostctl/pkg/inventory"
	"github.com/hostwise/hostctl/pkg/resolver"
	"github.com/hostwise/hostctl/pkg/schema/hosting"
)

// Transformer converts a user-authored hosting configuration to the
// provider-native schema, resolving symbolic backend references against the
// inventory for one pipeline phase.
type Transformer struct {
	resolver *resolver.Resolver
}

// NewTransformer creates a transformer over the given inventory and phase.
func NewTransformer(index *inventory.Index, phase inventory.Phase) *Transformer {
	return &Transformer{resolver: resolver.New(index, phase)}
}

// Transform converts the configuration section by section. A section appears
// in the output iff it was present in the input; a rewrite whose target is
// deferred by the liveness gate is dropped from the output list without
// error.
func (t *Transformer) Transform(cfg *hosting.Config) (*Config, error) {
	out := &Config{}

	if cfg.Rewrites != nil {
		rewrites, err := t.transformRewrites(cfg.Rewrites)
		if err != nil {
			return nil, err
		}
		out.Rewrites = rewrites
	}
	if cfg.Redirects != nil {
		out.Redirects = transformRedirects(cfg.Redirects)
	}
	if cfg.Headers != nil {
		out.Headers = transformHeaders(cfg.Headers)
	}

	out.CleanURLs = cfg.CleanURLs
	if cfg.TrailingSlash != nil {
		if *cfg.TrailingSlash {
			out.TrailingSlash = TrailingSlashAdd
		} else {
			out.TrailingSlash = TrailingSlashRemove
		}
	}
	out.AppAssociation = cfg.AppAssociation
	if cfg.I18n != nil {
		out.I18n = &I18n{Root: cfg.I18n.Root}
	}

	return out, nil
}

// transformRewrites translates each rule, dropping the ones whose targets are
// deferred. The result is non-nil even when every rule drops, so an
// explicitly configured section still emits as an empty list.
func (t *Transformer) transformRewrites(rewrites []hosting.Rewrite) ([]Rewrite, error) {
	out := make([]Rewrite, 0, len(rewrites))
	for _, rw := range rewrites {
		translated, err := t.transformRewrite(rw)
		if err != nil {
			return nil, err
		}
		if translated != nil {
			out = append(out, *translated)
		}
	}
	return out, nil
}

// transformRewrite dispatches on the rule's target variant. A nil result with
// nil error means the rule was dropped by the liveness gate.
func (t *Transformer) transformRewrite(rw hosting.Rewrite) (*Rewrite, error) {
	out := &Rewrite{Glob: rw.Glob, Regex: rw.Regex}

	switch {
	case rw.Destination != "":
		out.Path = rw.Destination
		return out, nil

	case rw.DynamicLinks:
		out.DynamicLinks = true
		return out, nil

	case rw.Function != nil:
		endpoint, err := t.resolver.ResolveFunction(rw.Function.Name, rw.Function.Region)
		if err != nil {
			return nil, err
		}
		if endpoint == nil {
			return nil, nil
		}
		return emitEndpoint(out, endpoint), nil

	case rw.Run != nil:
		endpoint, err := t.resolver.ResolveRun(rw.Run.ServiceID, rw.Run.Region)
		if err != nil {
			return nil, err
		}
		if endpoint == nil {
			return nil, nil
		}
		return emitEndpoint(out, endpoint), nil

	default:
		return nil, errors.New(errors.ErrCodeValidation, "rewrite has no target")
	}
}

// emitEndpoint writes a resolved endpoint into the provider rewrite shape.
// Modern-generation matches of a function reference surface as run rewrites;
// the conversion is transparent to the configuration author.
func emitEndpoint(out *Rewrite, endpoint *resolver.Endpoint) *Rewrite {
	switch endpoint.Kind {
	case resolver.KindFunction:
		out.Function = endpoint.ID
		out.FunctionRegion = endpoint.Region
	case resolver.KindRun:
		out.Run = &RunRewrite{ServiceID: endpoint.ID, Region: endpoint.Region}
	}
	return out
}

func transformRedirects(redirects []hosting.Redirect) []Redirect {
	out := make([]Redirect, 0, len(redirects))
	for _, rd := range redirects {
		out = append(out, Redirect{
			Glob:       rd.Glob,
			Regex:      rd.Regex,
			Location:   rd.Destination,
			StatusCode: rd.Type,
		})
	}
	return out
}

// transformHeaders converts each rule's ordered pair list to a mapping.
// Later duplicate keys overwrite earlier ones.
func transformHeaders(headers []hosting.HeaderRule) []HeaderRule {
	out := make([]HeaderRule, 0, len(headers))
	for _, h := range headers {
		mapping := make(map[string]string, len(h.Headers))
		for _, pair := range h.Headers {
			mapping[pair.Key] = pair.Value
		}
		out = append(out, HeaderRule{
			Glob:    h.Glob,
			Regex:   h.Regex,
			Headers: mapping,
		})
	}
	return out
}
