package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/pkg/export"
	"github.com/tpdc055/connectpng/internal/pkg/stats"
)

func TestOverviewData_Sections(t *testing.T) {
	data := &OverviewData{
		TotalProjects: 3,
		StatusBreakdown: map[model.ProjectStatus]int{
			model.ProjectPlanning:   1,
			model.ProjectInProgress: 2,
		},
		TotalKm:         70,
		OverallProgress: 87.5,
		Funding: FundingTotals{
			Allocated: 1500, Released: 1000, Utilized: 500, UtilizationRate: 33.3333,
		},
		QualityPassRate:          50,
		MilestoneAchievementRate: 50,
	}

	sections := data.Sections()
	assert.Len(t, sections, 3)
	assert.Equal(t, "summary", sections[0].Name)
	assert.Equal(t, [][]string{{"3", "70.00", "87.50", "50.00", "50.00"}}, sections[0].Rows)

	// Breakdown rows come out in sorted key order, not map order.
	assert.Equal(t, "status_breakdown", sections[1].Name)
	assert.Equal(t, [][]string{
		{"IN_PROGRESS", "2"},
		{"PLANNING", "1"},
	}, sections[1].Rows)

	assert.Equal(t, "funding", sections[2].Name)
	assert.Equal(t, "33.33", sections[2].Rows[0][4])
}

func TestGpsData_Sections_NoBounds(t *testing.T) {
	data := &GpsData{
		TotalPoints:     0,
		PhaseBreakdown:  map[model.WorkPhase]int{},
		StatusBreakdown: map[string]int{},
		DailyActivity:   map[string]int{},
	}

	sections := data.Sections()
	assert.Equal(t, [][]string{{"0", "", "", "", ""}}, sections[0].Rows)
}

func TestGpsData_Sections_SortedActivity(t *testing.T) {
	data := &GpsData{
		TotalPoints: 3,
		Bounds:      &stats.Bounds{North: -5.9, South: -6.3, East: 147.2, West: 146.7},
		PhaseBreakdown: map[model.WorkPhase]int{
			model.PhaseSealing: 1,
			model.PhaseDrain:   2,
		},
		StatusBreakdown: map[string]int{"RECORDED": 3},
		DailyActivity: map[string]int{
			"2025-03-11": 1,
			"2025-03-10": 2,
		},
	}

	sections := data.Sections()

	phases := sections[1]
	assert.Equal(t, [][]string{
		{"DRAIN", "2"},
		{"SEALING", "1"},
	}, phases.Rows)

	activity := sections[3]
	assert.Equal(t, [][]string{
		{"2025-03-10", "2"},
		{"2025-03-11", "1"},
	}, activity.Rows)
}

func TestReportExport_JSONRoundTrip(t *testing.T) {
	projectID := uuid.New()
	original := &Report{
		ReportType:  ReportOverview,
		GeneratedAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
		Filters:     ReportFilters{ProjectID: &projectID},
		Data: &OverviewData{
			TotalProjects: 3,
			StatusBreakdown: map[model.ProjectStatus]int{
				model.ProjectPlanning:   1,
				model.ProjectInProgress: 2,
			},
			TotalKm:         70,
			OverallProgress: 87.5,
			Funding: FundingTotals{
				Allocated: 1500, Released: 1000, Utilized: 500,
				UtilizationRate: stats.Percent(500, 1500),
			},
			QualityPassRate:          50,
			MilestoneAchievementRate: 50,
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, export.WriteJSON(&buf, original))

	var decoded struct {
		ReportType  string        `json:"report_type"`
		GeneratedAt time.Time     `json:"generated_at"`
		Filters     ReportFilters `json:"filters"`
		Data        OverviewData  `json:"data"`
	}
	assert.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, original.ReportType, decoded.ReportType)
	assert.True(t, original.GeneratedAt.Equal(decoded.GeneratedAt))
	assert.Equal(t, original.Filters, decoded.Filters)
	assert.Equal(t, original.Data.(*OverviewData), &decoded.Data)
}

func TestReportExport_Deterministic(t *testing.T) {
	data := &FinancialData{
		Totals: FundingTotals{Allocated: 5500, Released: 2000},
		SourceBreakdown: map[string]float64{
			"GoPNG": 2500,
			"ADB":   3000,
		},
	}

	var first, second bytes.Buffer
	assert.NoError(t, export.WriteCSV(&first, data.Sections()))
	assert.NoError(t, export.WriteCSV(&second, data.Sections()))
	assert.Equal(t, first.String(), second.String())

	// Sorted source keys: ADB before GoPNG.
	assert.Contains(t, first.String(), "ADB,3000.00\nGoPNG,2500.00")
}
