package inventory

// Candidate is a backend matched during endpoint resolution, annotated with
// whether it is already serving traffic. A target-plan backend counts as live
// when the same id and region appear in its deploy group's live set or in the
// loaded snapshot.
type Candidate struct {
	Backend Backend
	Live    bool
}

// TargetCandidates returns the backends in the operation's target plan whose
// id matches.
func (idx *Index) TargetCandidates(id string) []Candidate {
	var out []Candidate
	for _, group := range idx.Groups {
		for _, b := range group.Target {
			if b.ID != id {
				continue
			}
			out = append(out, Candidate{
				Backend: b,
				Live:    group.contains(b) || idx.Snapshot.Contains(b.Region, b.ID),
			})
		}
	}
	return out
}

// LiveCandidates returns the snapshot backends whose id matches. An unloaded
// snapshot yields no candidates.
func (idx *Index) LiveCandidates(id string) []Candidate {
	if !idx.Snapshot.Loaded {
		return nil
	}
	var out []Candidate
	for _, byID := range idx.Snapshot.Backends {
		if b, ok := byID[id]; ok {
			out = append(out, Candidate{Backend: b, Live: true})
		}
	}
	return out
}

// Candidates performs the two-tier lookup: target plan first, falling back to
// the live snapshot only when the plan has no backend with the given id.
func (idx *Index) Candidates(id string) []Candidate {
	if target := idx.TargetCandidates(id); len(target) > 0 {
		return target
	}
	return idx.LiveCandidates(id)
}

// FilterRegion keeps only candidates in the given region. An empty region
// keeps everything.
func FilterRegion(candidates []Candidate, region string) []Candidate {
	if region == "" {
		return candidates
	}
	var out []Candidate
	for _, c := range candidates {
		if c.Backend.Region == region {
			out = append(out, c)
		}
	}
	return out
}

func (g DeployGroup) contains(b Backend) bool {
	for _, live := range g.Live {
		if live.ID == b.ID && live.Region == b.Region {
			return true
		}
	}
	return false
}
