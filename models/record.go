package models

import "time"

// Record is one listing's field-to-text mapping as loaded from the source CSV.
// Values stay raw text; any numeric or list interpretation happens downstream
// under the dataset package's fallback policies.
type Record map[string]string

// Criteria holds the optional numeric bounds used by range filtering.
// A nil field means no constraint on that dimension.
type Criteria struct {
	MinPrice    *float64 `yaml:"min_price"`
	MaxPrice    *float64 `yaml:"max_price"`
	MinBedrooms *float64 `yaml:"min_bedrooms"`
	MaxBedrooms *float64 `yaml:"max_bedrooms"`
	MinReview   *float64 `yaml:"min_review"`
	MaxReview   *float64 `yaml:"max_review"`
}

// Stats is the scalar summary computed over a record set.
type Stats struct {
	Count              int     `json:"count"`
	AvgPricePerBedroom float64 `json:"avg_price_per_bedroom"`
}

// HostRanking is one host's entry in the grouped ranking.
type HostRanking struct {
	HostName string `json:"host_name"`
	Count    int    `json:"count"`
}

// Report is the serializable result of an analysis run.
type Report struct {
	GeneratedAt  time.Time     `json:"generated_at"`
	Stats        Stats         `json:"stats"`
	HostRankings []HostRanking `json:"host_rankings"`
	Listings     []Record      `json:"listings"`
}
