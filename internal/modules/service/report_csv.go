package service

import (
	"sort"

	"github.com/tpdc055/connectpng/internal/pkg/export"
)

// CSV flattening for report payloads. Map-backed breakdowns are emitted in
// sorted key order so repeated exports of the same data are byte-identical.

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func breakdownSection[K ~string](name, keyHeader string, m map[K]int) export.Section {
	s := export.Section{Name: name, Header: []string{keyHeader, "count"}}
	for _, k := range sortedKeys(m) {
		s.Rows = append(s.Rows, []string{string(k), export.Int(m[k])})
	}
	return s
}

func fundingTotalsSection(name string, t FundingTotals) export.Section {
	return export.Section{
		Name:   name,
		Header: []string{"allocated", "released", "utilized", "committed", "utilization_rate"},
		Rows: [][]string{{
			export.Float(t.Allocated),
			export.Float(t.Released),
			export.Float(t.Utilized),
			export.Float(t.Committed),
			export.Float(t.UtilizationRate),
		}},
	}
}

func (d *OverviewData) Sections() []export.Section {
	return []export.Section{
		{
			Name:   "summary",
			Header: []string{"total_projects", "total_km", "overall_progress", "quality_pass_rate", "milestone_achievement_rate"},
			Rows: [][]string{{
				export.Int(d.TotalProjects),
				export.Float(d.TotalKm),
				export.Float(d.OverallProgress),
				export.Float(d.QualityPassRate),
				export.Float(d.MilestoneAchievementRate),
			}},
		},
		breakdownSection("status_breakdown", "status", d.StatusBreakdown),
		fundingTotalsSection("funding", d.Funding),
	}
}

func (d *ProgressData) Sections() []export.Section {
	items := export.Section{
		Name:   "reports",
		Header: []string{"project_id", "report_date", "current_progress", "planned_progress", "delta", "schedule_status"},
	}
	for _, r := range d.Items {
		items.Rows = append(items.Rows, []string{
			r.ProjectID.String(),
			r.ReportDate.Format("2006-01-02"),
			export.Float(r.CurrentProgress),
			export.Float(r.PlannedProgress),
			export.Float(r.ProgressDelta()),
			string(r.ScheduleStatus),
		})
	}

	return []export.Section{
		{
			Name:   "summary",
			Header: []string{"total_reports", "average_delta"},
			Rows:   [][]string{{export.Int(d.TotalReports), export.Float(d.AverageDelta)}},
		},
		breakdownSection("schedule_breakdown", "schedule_status", d.ScheduleBreakdown),
		items,
	}
}

func (d *ContractorData) Sections() []export.Section {
	rows := export.Section{
		Name:   "contractors",
		Header: []string{"id", "name", "is_active", "assignments", "contract_value", "avg_rating"},
	}
	for _, c := range d.Contractors {
		active := "false"
		if c.IsActive {
			active = "true"
		}
		rows.Rows = append(rows.Rows, []string{
			c.ID.String(),
			c.Name,
			active,
			export.Int(c.Assignments),
			export.Float(c.ContractValue),
			export.Float(c.AvgRating),
		})
	}

	return []export.Section{
		{
			Name:   "summary",
			Header: []string{"total_contractors", "active", "inactive"},
			Rows:   [][]string{{export.Int(d.TotalContractors), export.Int(d.ActiveCount), export.Int(d.InactiveCount)}},
		},
		rows,
	}
}

func (d *ProvinceData) Sections() []export.Section {
	rows := export.Section{
		Name:   "provinces",
		Header: []string{"code", "name", "region", "projects", "total_km", "progress", "funding_allocated"},
	}
	for _, p := range d.Provinces {
		rows.Rows = append(rows.Rows, []string{
			p.Code,
			p.Name,
			p.Region,
			export.Int(p.Projects),
			export.Float(p.TotalKm),
			export.Float(p.Progress),
			export.Float(p.FundingAllocated),
		})
	}
	return []export.Section{rows}
}

func (d *GpsData) Sections() []export.Section {
	summary := export.Section{
		Name:   "summary",
		Header: []string{"total_points", "north", "south", "east", "west"},
	}
	if d.Bounds != nil {
		summary.Rows = [][]string{{
			export.Int(int(d.TotalPoints)),
			export.Float(d.Bounds.North),
			export.Float(d.Bounds.South),
			export.Float(d.Bounds.East),
			export.Float(d.Bounds.West),
		}}
	} else {
		summary.Rows = [][]string{{export.Int(int(d.TotalPoints)), "", "", "", ""}}
	}

	activity := export.Section{Name: "daily_activity", Header: []string{"date", "count"}}
	for _, day := range sortedKeys(d.DailyActivity) {
		activity.Rows = append(activity.Rows, []string{day, export.Int(d.DailyActivity[day])})
	}

	return []export.Section{
		summary,
		breakdownSection("phase_breakdown", "phase", d.PhaseBreakdown),
		breakdownSection("status_breakdown", "status", d.StatusBreakdown),
		activity,
	}
}

func (d *FinancialData) Sections() []export.Section {
	source := export.Section{Name: "source_breakdown", Header: []string{"source", "allocated"}}
	for _, k := range sortedKeys(d.SourceBreakdown) {
		source.Rows = append(source.Rows, []string{k, export.Float(d.SourceBreakdown[k])})
	}

	txs := export.Section{
		Name:   "transactions",
		Header: []string{"funding_id", "transaction_type", "amount", "transaction_date", "reference"},
	}
	for _, t := range d.Transactions {
		txs.Rows = append(txs.Rows, []string{
			t.FundingID.String(),
			string(t.TransactionType),
			export.Float(t.Amount),
			t.TransactionDate.Format("2006-01-02"),
			t.Reference,
		})
	}

	return []export.Section{
		fundingTotalsSection("totals", d.Totals),
		source,
		txs,
	}
}
