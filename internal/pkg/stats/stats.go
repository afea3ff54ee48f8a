// Package stats holds the pure aggregation folds used by the report
// assemblers. Every function here is side-effect free and safe on empty
// input: division guards go through Ratio so callers never see NaN or Inf.
package stats

import "time"

// Ratio returns num/den, or 0 when den is not positive. All derived rates
// in the reporting layer go through this single guard.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Percent returns matching/total as a percentage, 0 when total is 0.
func Percent(matching, total float64) float64 {
	return Ratio(matching, total) * 100
}

// Breakdown counts rows per category produced by the key extractor.
func Breakdown[T any, K comparable](rows []T, key func(T) K) map[K]int {
	out := make(map[K]int, 8)
	for _, row := range rows {
		out[key(row)]++
	}
	return out
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundingBox returns the extremes of the given coordinates, or nil for an
// empty set. Callers must handle the nil case rather than a degenerate box.
func BoundingBox(coords []Coordinate) *Bounds {
	if len(coords) == 0 {
		return nil
	}
	b := &Bounds{
		North: coords[0].Latitude,
		South: coords[0].Latitude,
		East:  coords[0].Longitude,
		West:  coords[0].Longitude,
	}
	for _, c := range coords[1:] {
		if c.Latitude > b.North {
			b.North = c.Latitude
		}
		if c.Latitude < b.South {
			b.South = c.Latitude
		}
		if c.Longitude > b.East {
			b.East = c.Longitude
		}
		if c.Longitude < b.West {
			b.West = c.Longitude
		}
	}
	return b
}

// WeightedSection is a section's contribution to overall progress.
type WeightedSection struct {
	Progress float64
	Length   float64
}

// WeightedProgress returns the length-weighted average progress
// Σ(progress·length)/Σ(length), 0 when the total length is 0.
func WeightedProgress(sections []WeightedSection) float64 {
	var weighted, total float64
	for _, s := range sections {
		if s.Length <= 0 {
			continue
		}
		weighted += s.Progress * s.Length
		total += s.Length
	}
	return Ratio(weighted, total)
}

// DailyActivity buckets timestamps by UTC calendar day (ISO date string)
// and counts entries per day.
func DailyActivity(timestamps []time.Time) map[string]int {
	out := make(map[string]int, 16)
	for _, ts := range timestamps {
		out[ts.UTC().Format("2006-01-02")]++
	}
	return out
}

// Sum folds a numeric projection over rows.
func Sum[T any](rows []T, value func(T) float64) float64 {
	var total float64
	for _, row := range rows {
		total += value(row)
	}
	return total
}

// Average returns the mean of a projection over rows, 0 for an empty set.
func Average[T any](rows []T, value func(T) float64) float64 {
	return Ratio(Sum(rows, value), float64(len(rows)))
}
