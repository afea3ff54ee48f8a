package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		num  float64
		den  float64
		want float64
	}{
		{name: "simple division", num: 6, den: 10, want: 0.6},
		{name: "zero denominator", num: 5, den: 0, want: 0},
		{name: "negative denominator", num: 5, den: -2, want: 0},
		{name: "zero numerator", num: 0, den: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.num, tt.den))
		})
	}
}

func TestPercent(t *testing.T) {
	// 10 quality reports with 6 passing -> 60.0
	assert.Equal(t, 60.0, Percent(6, 10))

	// Empty input set never yields NaN
	got := Percent(0, 0)
	assert.Equal(t, 0.0, got)
	assert.False(t, got != got, "must not be NaN")
}

func TestBreakdown(t *testing.T) {
	rows := []string{"PASS", "FAIL", "PASS", "CONDITIONAL_PASS", "PASS"}

	counts := Breakdown(rows, func(s string) string { return s })

	assert.Equal(t, 3, counts["PASS"])
	assert.Equal(t, 1, counts["FAIL"])
	assert.Equal(t, 1, counts["CONDITIONAL_PASS"])

	// Sum of per-category counts equals total row count
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, len(rows), total)
}

func TestBreakdown_Empty(t *testing.T) {
	counts := Breakdown([]int{}, func(i int) int { return i })
	assert.Empty(t, counts)
}

func TestBoundingBox(t *testing.T) {
	t.Run("two points", func(t *testing.T) {
		coords := []Coordinate{
			{Latitude: -6.3, Longitude: 143.9},
			{Latitude: -5.0, Longitude: 144.5},
		}

		b := BoundingBox(coords)
		assert.NotNil(t, b)
		assert.Equal(t, -5.0, b.North)
		assert.Equal(t, -6.3, b.South)
		assert.Equal(t, 144.5, b.East)
		assert.Equal(t, 143.9, b.West)
	})

	t.Run("single point collapses to itself", func(t *testing.T) {
		b := BoundingBox([]Coordinate{{Latitude: -9.45, Longitude: 147.15}})
		assert.NotNil(t, b)
		assert.Equal(t, &Bounds{North: -9.45, South: -9.45, East: 147.15, West: 147.15}, b)
	})

	t.Run("empty set returns nil, never panics", func(t *testing.T) {
		assert.Nil(t, BoundingBox(nil))
		assert.Nil(t, BoundingBox([]Coordinate{}))
	})
}

func TestWeightedProgress(t *testing.T) {
	tests := []struct {
		name     string
		sections []WeightedSection
		want     float64
	}{
		{
			name: "two sections",
			sections: []WeightedSection{
				{Progress: 40, Length: 5000},
				{Progress: 0, Length: 3000},
			},
			want: 25, // (5000*40 + 3000*0) / 8000
		},
		{
			name:     "single section",
			sections: []WeightedSection{{Progress: 80, Length: 1200}},
			want:     80,
		},
		{
			name:     "empty list",
			sections: nil,
			want:     0,
		},
		{
			name:     "zero total length",
			sections: []WeightedSection{{Progress: 50, Length: 0}},
			want:     0,
		},
		{
			name: "zero-length sections excluded from the weighting",
			sections: []WeightedSection{
				{Progress: 100, Length: 0},
				{Progress: 50, Length: 2000},
			},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedProgress(tt.sections)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestDailyActivity(t *testing.T) {
	day1 := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 16, 23, 59, 59, 0, time.UTC)

	hist := DailyActivity([]time.Time{day1, day1.Add(2 * time.Hour), day2})

	assert.Equal(t, 2, hist["2024-06-15"])
	assert.Equal(t, 1, hist["2024-06-16"])
	assert.Len(t, hist, 2)
}

func TestDailyActivity_NormalizesToUTC(t *testing.T) {
	// 2024-06-15 23:00 +10 (Port Moresby) is 13:00 UTC the same day;
	// 2024-06-16 08:00 +10 is 22:00 UTC on the 15th.
	pg := time.FixedZone("PGT", 10*3600)
	hist := DailyActivity([]time.Time{
		time.Date(2024, 6, 15, 23, 0, 0, 0, pg),
		time.Date(2024, 6, 16, 8, 0, 0, 0, pg),
	})

	assert.Equal(t, 2, hist["2024-06-15"])
	assert.Len(t, hist, 1)
}

func TestSumAndAverage(t *testing.T) {
	vals := []float64{10, 20, 30}
	ident := func(f float64) float64 { return f }

	assert.Equal(t, 60.0, Sum(vals, ident))
	assert.Equal(t, 20.0, Average(vals, ident))
	assert.Equal(t, 0.0, Average(nil, ident))
}
