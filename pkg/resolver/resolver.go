// Package resolver matches symbolic backend references from rewrite rules
// against the backend inventory, producing exactly one routable endpoint per
// reference or a classified failure.
package resolver

import (
	"github.com/hostwise/hostctl/pkg/errors"
	"github.com/hostwise/hostctl/pkg/inventory"
)

// DefaultRegion is applied to container-service references that omit a region.
const DefaultRegion = "us-central1"

// EndpointKind selects the provider rewrite shape for a resolved endpoint.
type EndpointKind string

const (
	// KindFunction routes through a direct function trigger (legacy platform).
	KindFunction EndpointKind = "function"

	// KindRun routes through a container-service proxy (modern platform).
	KindRun EndpointKind = "run"
)

// Endpoint is a fully resolved routing target.
type Endpoint struct {
	Kind   EndpointKind
	ID     string
	Region string
}

// Resolver resolves symbolic references for a single deploy-pipeline phase.
// The inventory is treated as read-only; two resolvers over the same index
// and phase always produce identical results.
type Resolver struct {
	index *inventory.Index
	phase inventory.Phase
}

// New creates a resolver over the given inventory for the given phase.
func New(index *inventory.Index, phase inventory.Phase) *Resolver {
	return &Resolver{index: index, phase: phase}
}

// ResolveFunction resolves a function reference to an endpoint.
//
// Candidates come from the operation's target plan first, falling back to the
// live snapshot; a region narrows the set when given. Zero candidates is a
// BACKEND_NOT_FOUND error and two or more is AMBIGUOUS_BACKEND regardless of
// phase: the region hint is the only disambiguator.
//
// A modern-platform match that is not yet live is deferred during the plan
// phase, returning (nil, nil): the service cannot be routed to before it
// exists, and the finalize-phase pass of the same operation picks it up once
// it is live. Callers must not finalize before every planned backend has been
// made live; the resolver cannot check that ordering itself.
func (r *Resolver) ResolveFunction(name, region string) (*Endpoint, error) {
	candidates := inventory.FilterRegion(r.index.Candidates(name), region)

	if len(candidates) == 0 {
		return nil, errors.BackendNotFound(name)
	}
	if len(candidates) > 1 {
		return nil, errors.AmbiguousBackend(name)
	}

	match := candidates[0]
	switch match.Backend.Platform {
	case inventory.PlatformLegacy:
		return &Endpoint{Kind: KindFunction, ID: name, Region: match.Backend.Region}, nil
	case inventory.PlatformModern:
		if r.deferred(match) {
			return nil, nil
		}
		return &Endpoint{Kind: KindRun, ID: name, Region: match.Backend.Region}, nil
	default:
		return nil, errors.New(errors.ErrCodeValidation, "backend "+name+" has an unknown platform")
	}
}

// ResolveRun resolves a container-service reference. An empty region defaults
// to DefaultRegion before matching.
//
// Unlike function references, a service reference with no matching backend
// passes through unchanged: services may exist outside the function
// inventory, so the reference is emitted as written. Matching is
// generation-agnostic, since a legacy backend can be surfaced through a
// service name (by convention its id). The liveness gate still applies when
// the match is a not-yet-live modern backend from the target plan.
func (r *Resolver) ResolveRun(serviceID, region string) (*Endpoint, error) {
	if region == "" {
		region = DefaultRegion
	}

	endpoint := &Endpoint{Kind: KindRun, ID: serviceID, Region: region}
	candidates := inventory.FilterRegion(r.index.Candidates(serviceID), region)
	for _, c := range candidates {
		if c.Backend.Platform == inventory.PlatformModern && r.deferred(c) {
			return nil, nil
		}
	}
	return endpoint, nil
}

// deferred reports whether routing to this candidate must wait for the
// finalize phase.
func (r *Resolver) deferred(c inventory.Candidate) bool {
	return r.phase == inventory.PhasePlan && !c.Live
}
