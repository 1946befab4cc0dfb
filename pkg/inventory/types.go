// Package inventory defines the backend inventory consumed by the rewrite
// resolution engine: the backends a deploy operation intends to create or
// update, the backends it already knows to be live, and a project-wide
// snapshot of everything currently serving traffic.
package inventory

// Platform identifies the backend generation.
type Platform string

const (
	// PlatformLegacy backends deploy to a single fixed region and expose an
	// HTTPS trigger directly.
	PlatformLegacy Platform = "legacy"

	// PlatformModern backends deploy to any region and are always routable
	// through the container-service rewrite shape.
	PlatformModern Platform = "modern"
)

// Phase identifies where in the deploy pipeline resolution is happening.
type Phase string

const (
	// PhasePlan runs before backends are created or updated. Resolution must
	// be conservative: routes to not-yet-live services are deferred.
	PhasePlan Phase = "plan"

	// PhaseFinalize runs after all planned backends are live.
	PhaseFinalize Phase = "finalize"
)

// Backend describes a single compute backend.
type Backend struct {
	ID       string   `json:"id" yaml:"id"`
	Region   string   `json:"region" yaml:"region"`
	Platform Platform `json:"platform" yaml:"platform"`
}

// DeployGroup is one logical deployment unit within the current operation.
// Target holds the backends this operation intends to create or update;
// Live holds the backends of this unit that already exist.
type DeployGroup struct {
	Name   string    `json:"name" yaml:"name"`
	Target []Backend `json:"target,omitempty" yaml:"target,omitempty"`
	Live   []Backend `json:"live,omitempty" yaml:"live,omitempty"`
}

// Snapshot is a project-wide view of currently-live backends, indexed
// region → id. Loaded records whether the snapshot was actually fetched;
// an unloaded snapshot yields no candidates rather than failing lookups.
type Snapshot struct {
	Loaded   bool                          `json:"loaded" yaml:"loaded"`
	Backends map[string]map[string]Backend `json:"backends,omitempty" yaml:"backends,omitempty"`
}

// Contains reports whether a live backend with the given region and id is
// present in the snapshot.
func (s Snapshot) Contains(region, id string) bool {
	if !s.Loaded {
		return false
	}
	_, ok := s.Backends[region][id]
	return ok
}

// Index is the queryable inventory view handed to the resolver. It is
// read-only from the resolver's perspective.
type Index struct {
	Groups   []DeployGroup `json:"groups,omitempty" yaml:"groups,omitempty"`
	Snapshot Snapshot      `json:"snapshot" yaml:"snapshot"`
}
