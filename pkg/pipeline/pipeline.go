// Package pipeline wraps the two-phase resolution protocol of a deploy
// operation: one conservative pass before backends are created and one final
// pass once they are live.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/hostwise/hostctl/pkg/errors"
	"github.com/hostwise/hostctl/pkg/inventory"
	"github.com/hostwise/hostctl/pkg/provider"
	"github.com/hostwise/hostctl/pkg/schema/hosting"
)

// Operation is a single deploy operation's resolution context. The same
// configuration and inventory feed both phases; the two calls share no
// mutable state and are each deterministic given their inputs.
//
// Precondition for Finalize: every backend in the inventory's target plan has
// been made live since Plan was called. The resolver assumes this ordering
// and cannot verify it.
type Operation struct {
	// ID identifies this operation in caller-side records.
	ID string

	config *hosting.Config
	index  *inventory.Index

	planned bool
}

// NewOperation creates an operation over a validated configuration and the
// inventory produced by the deployment planner.
func NewOperation(cfg *hosting.Config, index *inventory.Index) *Operation {
	return &Operation{
		ID:     uuid.New().String(),
		config: cfg,
		index:  index,
	}
}

// Plan produces the provider configuration for the planning phase. Rewrites
// targeting not-yet-live container services are dropped; they reappear in the
// Finalize result.
func (o *Operation) Plan() (*provider.Config, error) {
	cfg, err := provider.NewTransformer(o.index, inventory.PhasePlan).Transform(o.config)
	if err != nil {
		return nil, err
	}
	o.planned = true
	return cfg, nil
}

// Finalize produces the provider configuration for the finalizing phase, the
// version actually uploaded. It must only run after Plan and after the target
// plan's backends are live.
func (o *Operation) Finalize() (*provider.Config, error) {
	if !o.planned {
		return nil, errors.New(errors.ErrCodeValidation, "finalize called before plan for operation "+o.ID)
	}
	return provider.NewTransformer(o.index, inventory.PhaseFinalize).Transform(o.config)
}
