// Package dataset implements the in-memory listing pipeline: an immutable
// record set with chainable filters and the aggregate views computed over it.
package dataset

import (
	"sort"

	"airbnb-insights/models"
)

// RecordSet is an immutable, ordered collection of records. Every filter
// returns a new RecordSet and never touches the receiver, so chains like
// set.FilterByRange(c).FilterByAmenities(req) each narrow the previous
// result. Sets are safe to share between readers once built.
type RecordSet struct {
	records []models.Record
}

// New builds a RecordSet over a defensive copy of records; later mutations
// of the caller's slice do not reach the set.
func New(records []models.Record) *RecordSet {
	copied := make([]models.Record, len(records))
	copy(copied, records)
	return &RecordSet{records: copied}
}

// Len returns the number of records in the set.
func (s *RecordSet) Len() int {
	return len(s.records)
}

// Records returns a copy of the underlying record slice, in source order.
func (s *RecordSet) Records() []models.Record {
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// FilterByRange keeps records whose price, bedrooms and review score all
// parse to valid numbers and satisfy every bound present in criteria.
// A record with any unparseable numeric field is dropped even when no bound
// touches that field — missing data never matches.
func (s *RecordSet) FilterByRange(criteria models.Criteria) *RecordSet {
	kept := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		price, ok := parsePrice(r["price"])
		if !ok {
			continue
		}
		bedrooms, ok := parseNumber(r["bedrooms"])
		if !ok {
			continue
		}
		review, ok := parseNumber(r["review_scores_rating"])
		if !ok {
			continue
		}
		if !within(price, criteria.MinPrice, criteria.MaxPrice) ||
			!within(bedrooms, criteria.MinBedrooms, criteria.MaxBedrooms) ||
			!within(review, criteria.MinReview, criteria.MaxReview) {
			continue
		}
		kept = append(kept, r)
	}
	return &RecordSet{records: kept}
}

// within checks a value against an optional min/max pair; nil bounds pass.
func within(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// FilterByAmenities keeps records whose normalized amenity list contains
// every required entry. An empty requirement keeps the whole set.
func (s *RecordSet) FilterByAmenities(required []string) *RecordSet {
	kept := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if hasAllAmenities(normalizeAmenities(r), required) {
			kept = append(kept, r)
		}
	}
	return &RecordSet{records: kept}
}

// FilterByExpression keeps records matching a compiled expression. A nil
// expression leaves the set as-is.
func (s *RecordSet) FilterByExpression(e *Expression) *RecordSet {
	if e == nil {
		return s
	}
	kept := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if e.Matches(r) {
			kept = append(kept, r)
		}
	}
	return &RecordSet{records: kept}
}

// ComputeStats summarises the current set. Coercion here is looser than in
// FilterByRange: an unparseable price counts as 0, and an unparseable or
// zero bedroom count counts as 1, so every record contributes to the
// average and the division can never hit zero while records exist.
func (s *RecordSet) ComputeStats() models.Stats {
	stats := models.Stats{Count: len(s.records)}

	var totalPrice, totalBedrooms float64
	for _, r := range s.records {
		price, ok := parsePrice(r["price"])
		if !ok {
			price = 0
		}
		bedrooms, ok := parseNumber(r["bedrooms"])
		if !ok || bedrooms == 0 {
			bedrooms = 1
		}
		totalPrice += price
		totalBedrooms += bedrooms
	}
	if totalBedrooms > 0 {
		stats.AvgPricePerBedroom = totalPrice / totalBedrooms
	}
	return stats
}

// ComputeHostRankings groups records by host name — "Unknown" when the field
// is absent or empty — and returns one entry per host, most listings first.
// Hosts with equal counts keep the order in which they first appeared.
func (s *RecordSet) ComputeHostRankings() []models.HostRanking {
	counts := make(map[string]int, len(s.records))
	order := make([]string, 0, len(s.records))
	for _, r := range s.records {
		host := r["host_name"]
		if host == "" {
			host = "Unknown"
		}
		if _, seen := counts[host]; !seen {
			order = append(order, host)
		}
		counts[host]++
	}

	rankings := make([]models.HostRanking, 0, len(order))
	for _, host := range order {
		rankings = append(rankings, models.HostRanking{HostName: host, Count: counts[host]})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Count > rankings[j].Count
	})
	return rankings
}
