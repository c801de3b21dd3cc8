// Package dedupe groups canonical records by identity key and resolves
// each group to its most complete member. It runs once over the
// concatenated records of a whole run; tie-breaking depends on insertion
// order, so callers must feed records in a fixed, reproducible order.
package dedupe

import (
	"sort"

	"github.com/jonathan/candidate-ingest/internal/types"
)

// group is one duplicate group: all records sharing an identity key, in
// first-seen order.
type group struct {
	key     string
	members []types.CanonicalRecord
}

// Deduplicate resolves duplicate identities across a run's records.
// Records without a derivable identity key are always kept; they are
// never grouped with each other or with anything else. Within a group the
// winner is the highest completeness score; equal scores keep the
// first-inserted record. This tie-break is deliberate policy, not an
// accident of the sort: no other signal distinguishes equal-score records.
// Losers are returned as audit entries. Never fails: an unscorable record
// simply scores low.
func Deduplicate(records []types.CanonicalRecord) ([]types.CanonicalRecord, []types.DuplicateEntry) {
	groups := make(map[string]*group)
	// sequence keeps output order deterministic: groups appear at their
	// first-seen position, keyless records stay in place as singletons.
	var sequence []any

	for _, rec := range records {
		key := IdentityKey(rec.LinkedInURL)
		if key == "" {
			sequence = append(sequence, rec)
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			sequence = append(sequence, g)
		}
		g.members = append(g.members, rec)
	}

	kept := make([]types.CanonicalRecord, 0, len(records))
	var report []types.DuplicateEntry

	for _, item := range sequence {
		switch v := item.(type) {
		case types.CanonicalRecord:
			kept = append(kept, v)
		case *group:
			winner, losers := resolve(v)
			kept = append(kept, winner)
			report = append(report, losers...)
		}
	}

	return kept, report
}

// resolve picks a group's winner by completeness and emits audit entries
// for every other member.
func resolve(g *group) (types.CanonicalRecord, []types.DuplicateEntry) {
	if len(g.members) == 1 {
		return g.members[0], nil
	}

	scored := make([]scoredRecord, len(g.members))
	for i, rec := range g.members {
		scored[i] = scoredRecord{record: rec, score: CompletenessScore(&rec)}
	}

	// Stability is load-bearing: on score ties the first-inserted record
	// must win.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	best := scored[0]
	losers := make([]types.DuplicateEntry, 0, len(scored)-1)
	for i := 1; i < len(scored); i++ {
		rec := scored[i].record
		losers = append(losers, types.DuplicateEntry{
			LinkedInURL:       rec.LinkedInURL,
			FirstName:         rec.FirstName,
			LastName:          rec.LastName,
			Title:             rec.Title,
			CompanyName:       rec.CompanyName,
			CompletenessScore: scored[i].score,
			BestRecordScore:   best.score,
			DuplicateRank:     i + 1,
			TotalDuplicates:   len(scored),
		})
	}

	return best.record, losers
}

type scoredRecord struct {
	record types.CanonicalRecord
	score  int
}
