package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/pkg/stats"
	"github.com/tpdc055/connectpng/internal/telemetry"
)

// reportFetchLimit caps the row sets folded into a single report.
const reportFetchLimit = 10000

// gpsItemLimit caps the raw points echoed back in a gps report.
const gpsItemLimit = 500

// ReportType names for the Generate dispatcher.
const (
	ReportOverview   = "overview"
	ReportProgress   = "progress"
	ReportContractor = "contractor"
	ReportProvince   = "province"
	ReportGps        = "gps"
	ReportFinancial  = "financial"
)

type ReportService interface {
	Generate(ctx context.Context, reportType string, f ReportFilters) (*Report, error)
}

// ReportFilters narrows the entity sets folded into a report. All fields are
// optional; absent fields impose no restriction.
type ReportFilters struct {
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	ProvinceID   *uuid.UUID `json:"province_id,omitempty"`
	ContractorID *uuid.UUID `json:"contractor_id,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

func (f ReportFilters) dateRange() repo.DateRange {
	return repo.DateRange{Start: f.StartDate, End: f.EndDate}
}

// Report is the envelope every assembler returns. Data holds one of the
// typed payloads below.
type Report struct {
	ReportType  string        `json:"report_type"`
	GeneratedAt time.Time     `json:"generated_at"`
	Filters     ReportFilters `json:"filters"`
	Data        interface{}   `json:"data"`
}

type reportService struct {
	projects    repo.ProjectRepo
	sections    repo.SectionRepo
	provinces   repo.ProvinceRepo
	contractors repo.ContractorRepo
	points      repo.GpsPointRepo
	quality     repo.QualityReportRepo
	progress    repo.ProgressReportRepo
	milestones  repo.MilestoneRepo
	fundings    repo.FundingRepo
}

func NewReportService(
	projects repo.ProjectRepo,
	sections repo.SectionRepo,
	provinces repo.ProvinceRepo,
	contractors repo.ContractorRepo,
	points repo.GpsPointRepo,
	quality repo.QualityReportRepo,
	progress repo.ProgressReportRepo,
	milestones repo.MilestoneRepo,
	fundings repo.FundingRepo,
) ReportService {
	return &reportService{
		projects:    projects,
		sections:    sections,
		provinces:   provinces,
		contractors: contractors,
		points:      points,
		quality:     quality,
		progress:    progress,
		milestones:  milestones,
		fundings:    fundings,
	}
}

func (s *reportService) Generate(ctx context.Context, reportType string, f ReportFilters) (*Report, error) {
	start := time.Now()

	var (
		data interface{}
		rows int64
		err  error
	)
	switch reportType {
	case ReportOverview:
		data, rows, err = s.overview(ctx, f)
	case ReportProgress:
		data, rows, err = s.progressReport(ctx, f)
	case ReportContractor:
		data, rows, err = s.contractorReport(ctx, f)
	case ReportProvince:
		data, rows, err = s.provinceReport(ctx, f)
	case ReportGps:
		data, rows, err = s.gpsReport(ctx, f)
	case ReportFinancial:
		data, rows, err = s.financialReport(ctx, f)
	default:
		return nil, ErrUnknownReportType
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		telemetry.RecordReportError(ctx, reportType, durationMs)
		return nil, mapStoreErr(err)
	}
	telemetry.RecordReportSuccess(ctx, reportType, durationMs, rows)

	return &Report{
		ReportType:  reportType,
		GeneratedAt: time.Now().UTC(),
		Filters:     f,
		Data:        data,
	}, nil
}

// FundingTotals aggregates the four funding buckets plus the derived
// utilization rate (utilized/allocated).
type FundingTotals struct {
	Allocated       float64 `json:"allocated"`
	Released        float64 `json:"released"`
	Utilized        float64 `json:"utilized"`
	Committed       float64 `json:"committed"`
	UtilizationRate float64 `json:"utilization_rate"`
}

func fundingTotals(fundings []*model.ProjectFunding) FundingTotals {
	t := FundingTotals{
		Allocated: stats.Sum(fundings, func(f *model.ProjectFunding) float64 { return f.BudgetAllocated }),
		Released:  stats.Sum(fundings, func(f *model.ProjectFunding) float64 { return f.FundsReleased }),
		Utilized:  stats.Sum(fundings, func(f *model.ProjectFunding) float64 { return f.FundsUtilized }),
		Committed: stats.Sum(fundings, func(f *model.ProjectFunding) float64 { return f.FundsCommitted }),
	}
	t.UtilizationRate = stats.Percent(t.Utilized, t.Allocated)
	return t
}

type OverviewData struct {
	TotalProjects   int                         `json:"total_projects"`
	StatusBreakdown map[model.ProjectStatus]int `json:"status_breakdown"`
	TotalKm         float64                     `json:"total_km"`
	OverallProgress float64                     `json:"overall_progress"`

	Funding FundingTotals `json:"funding"`

	QualityPassRate          float64 `json:"quality_pass_rate"`
	MilestoneAchievementRate float64 `json:"milestone_achievement_rate"`
}

func (s *reportService) overview(ctx context.Context, f ReportFilters) (*OverviewData, int64, error) {
	var (
		projects   []*model.Project
		sections   []*model.ProjectSection
		fundings   []*model.ProjectFunding
		quality    []*model.QualityReport
		milestones []*model.Milestone
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pf := repo.ProjectFilter{ProvinceID: f.ProvinceID, ContractorID: f.ContractorID, Range: f.dateRange()}
		projects, err = s.projects.List(gctx, pf, time.Time{}, uuid.Nil, reportFetchLimit, false)
		return err
	})
	g.Go(func() error {
		var err error
		sections, err = s.sections.ListAll(gctx, f.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		fundings, err = s.fundings.List(gctx, repo.FundingFilter{ProjectID: f.ProjectID, Limit: reportFetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		quality, err = s.quality.List(gctx, repo.QualityReportFilter{ProjectID: f.ProjectID, Range: f.dateRange(), Limit: reportFetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		milestones, err = s.milestones.List(gctx, repo.MilestoneFilter{ProjectID: f.ProjectID, Limit: reportFetchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	weighted := make([]stats.WeightedSection, len(sections))
	for i, sec := range sections {
		weighted[i] = stats.WeightedSection{Progress: sec.ProgressPercentage, Length: sec.Length}
	}

	passed := 0
	for _, q := range quality {
		if q.QaQcStatus == model.QaQcPass {
			passed++
		}
	}
	achieved := 0
	for _, m := range milestones {
		if m.Status == model.MilestoneAchieved {
			achieved++
		}
	}

	data := &OverviewData{
		TotalProjects:            len(projects),
		StatusBreakdown:          stats.Breakdown(projects, func(p *model.Project) model.ProjectStatus { return p.Status }),
		TotalKm:                  stats.Sum(projects, func(p *model.Project) float64 { return p.TotalDistance }),
		OverallProgress:          stats.WeightedProgress(weighted),
		Funding:                  fundingTotals(fundings),
		QualityPassRate:          stats.Percent(float64(passed), float64(len(quality))),
		MilestoneAchievementRate: stats.Percent(float64(achieved), float64(len(milestones))),
	}
	rows := int64(len(projects) + len(sections) + len(fundings) + len(quality) + len(milestones))
	return data, rows, nil
}

type ProgressData struct {
	TotalReports      int                          `json:"total_reports"`
	ScheduleBreakdown map[model.ScheduleStatus]int `json:"schedule_breakdown"`
	AverageDelta      float64                      `json:"average_delta"`

	// ProjectProgress is the length-weighted section progress per project.
	ProjectProgress map[uuid.UUID]float64 `json:"project_progress"`

	Items []*model.ProgressReport `json:"items"`
}

func (s *reportService) progressReport(ctx context.Context, f ReportFilters) (*ProgressData, int64, error) {
	var (
		reports  []*model.ProgressReport
		sections []*model.ProjectSection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reports, err = s.progress.List(gctx, repo.ProgressReportFilter{ProjectID: f.ProjectID, Range: f.dateRange(), Limit: reportFetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		sections, err = s.sections.ListAll(gctx, f.ProjectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	byProject := map[uuid.UUID][]stats.WeightedSection{}
	for _, sec := range sections {
		byProject[sec.ProjectID] = append(byProject[sec.ProjectID], stats.WeightedSection{
			Progress: sec.ProgressPercentage,
			Length:   sec.Length,
		})
	}
	projectProgress := make(map[uuid.UUID]float64, len(byProject))
	for id, w := range byProject {
		projectProgress[id] = stats.WeightedProgress(w)
	}

	data := &ProgressData{
		TotalReports:      len(reports),
		ScheduleBreakdown: stats.Breakdown(reports, func(r *model.ProgressReport) model.ScheduleStatus { return r.ScheduleStatus }),
		AverageDelta:      stats.Average(reports, func(r *model.ProgressReport) float64 { return r.ProgressDelta() }),
		ProjectProgress:   projectProgress,
		Items:             reports,
	}
	return data, int64(len(reports) + len(sections)), nil
}

// ContractorSummary is one contractor's line in the contractor report.
type ContractorSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"is_active"`
	Assignments   int       `json:"assignments"`
	ContractValue float64   `json:"contract_value"`
	AvgRating     float64   `json:"avg_rating"`
}

type ContractorData struct {
	TotalContractors int                 `json:"total_contractors"`
	ActiveCount      int                 `json:"active_count"`
	InactiveCount    int                 `json:"inactive_count"`
	Contractors      []ContractorSummary `json:"contractors"`
}

func (s *reportService) contractorReport(ctx context.Context, f ReportFilters) (*ContractorData, int64, error) {
	var (
		contractors []*model.Contractor
		assignments []*model.ContractorProject
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contractors, err = s.contractors.List(gctx, repo.ContractorFilter{Limit: reportFetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		assignments, err = s.contractors.ListAssignments(gctx, f.ContractorID, f.ProjectID, reportFetchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	byContractor := map[uuid.UUID][]*model.ContractorProject{}
	for _, a := range assignments {
		byContractor[a.ContractorID] = append(byContractor[a.ContractorID], a)
	}

	data := &ContractorData{TotalContractors: len(contractors)}
	for _, c := range contractors {
		if c.IsActive {
			data.ActiveCount++
		} else {
			data.InactiveCount++
		}

		rows := byContractor[c.ID]
		data.Contractors = append(data.Contractors, ContractorSummary{
			ID:            c.ID,
			Name:          c.Name,
			IsActive:      c.IsActive,
			Assignments:   len(rows),
			ContractValue: stats.Sum(rows, func(a *model.ContractorProject) float64 { return a.ContractValue }),
			AvgRating:     stats.Average(rows, func(a *model.ContractorProject) float64 { return a.PerformanceRating }),
		})
	}
	return data, int64(len(contractors) + len(assignments)), nil
}

// ProvinceSummary is one province's line in the province report.
type ProvinceSummary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	Region           string    `json:"region"`
	Projects         int       `json:"projects"`
	TotalKm          float64   `json:"total_km"`
	Progress         float64   `json:"progress"`
	FundingAllocated float64   `json:"funding_allocated"`
}

type ProvinceData struct {
	Provinces []ProvinceSummary `json:"provinces"`
}

func (s *reportService) provinceReport(ctx context.Context, f ReportFilters) (*ProvinceData, int64, error) {
	var (
		provinces []*model.Province
		projects  []*model.Project
		sections  []*model.ProjectSection
		fundings  []*model.ProjectFunding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		provinces, err = s.provinces.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pf := repo.ProjectFilter{ProvinceID: f.ProvinceID, Range: f.dateRange()}
		projects, err = s.projects.List(gctx, pf, time.Time{}, uuid.Nil, reportFetchLimit, false)
		return err
	})
	g.Go(func() error {
		var err error
		sections, err = s.sections.ListAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		fundings, err = s.fundings.List(gctx, repo.FundingFilter{Limit: reportFetchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	projectProvince := map[uuid.UUID]uuid.UUID{}
	byProvince := map[uuid.UUID][]*model.Project{}
	for _, p := range projects {
		projectProvince[p.ID] = p.ProvinceID
		byProvince[p.ProvinceID] = append(byProvince[p.ProvinceID], p)
	}

	sectionsByProvince := map[uuid.UUID][]stats.WeightedSection{}
	for _, sec := range sections {
		prov, ok := projectProvince[sec.ProjectID]
		if !ok {
			continue
		}
		sectionsByProvince[prov] = append(sectionsByProvince[prov], stats.WeightedSection{
			Progress: sec.ProgressPercentage,
			Length:   sec.Length,
		})
	}

	fundingByProvince := map[uuid.UUID]float64{}
	for _, fd := range fundings {
		prov, ok := projectProvince[fd.ProjectID]
		if !ok {
			continue
		}
		fundingByProvince[prov] += fd.BudgetAllocated
	}

	data := &ProvinceData{}
	for _, prov := range provinces {
		if f.ProvinceID != nil && *f.ProvinceID != prov.ID {
			continue
		}
		provProjects := byProvince[prov.ID]
		data.Provinces = append(data.Provinces, ProvinceSummary{
			ID:               prov.ID,
			Name:             prov.Name,
			Code:             prov.Code,
			Region:           prov.Region,
			Projects:         len(provProjects),
			TotalKm:          stats.Sum(provProjects, func(p *model.Project) float64 { return p.TotalDistance }),
			Progress:         stats.WeightedProgress(sectionsByProvince[prov.ID]),
			FundingAllocated: fundingByProvince[prov.ID],
		})
	}
	rows := int64(len(provinces) + len(projects) + len(sections) + len(fundings))
	return data, rows, nil
}

type GpsData struct {
	TotalPoints     int64                   `json:"total_points"`
	PhaseBreakdown  map[model.WorkPhase]int `json:"phase_breakdown"`
	StatusBreakdown map[string]int          `json:"status_breakdown"`

	// Bounds is nil when no point matched the filters.
	Bounds *stats.Bounds `json:"bounds"`

	DailyActivity map[string]int `json:"daily_activity"`

	Items []*model.GpsPoint `json:"items"`
}

func (s *reportService) gpsReport(ctx context.Context, f ReportFilters) (*GpsData, int64, error) {
	pf := repo.GpsPointFilter{
		ProjectID:    f.ProjectID,
		ContractorID: f.ContractorID,
		Range:        f.dateRange(),
		Limit:        reportFetchLimit,
	}

	var (
		points []*model.GpsPoint
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		points, err = s.points.List(gctx, pf, false)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.points.Count(gctx, pf)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	coords := make([]stats.Coordinate, len(points))
	timestamps := make([]time.Time, len(points))
	for i, p := range points {
		coords[i] = stats.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
		timestamps[i] = p.Timestamp
	}

	items := points
	if len(items) > gpsItemLimit {
		items = items[:gpsItemLimit]
	}

	data := &GpsData{
		TotalPoints:     total,
		PhaseBreakdown:  stats.Breakdown(points, func(p *model.GpsPoint) model.WorkPhase { return p.Phase }),
		StatusBreakdown: stats.Breakdown(points, func(p *model.GpsPoint) string { return p.Status }),
		Bounds:          stats.BoundingBox(coords),
		DailyActivity:   stats.DailyActivity(timestamps),
		Items:           items,
	}
	return data, int64(len(points)), nil
}

type FinancialData struct {
	Totals FundingTotals `json:"totals"`

	// SourceBreakdown sums allocations per funding source.
	SourceBreakdown map[string]float64 `json:"source_breakdown"`

	Fundings     []*model.ProjectFunding     `json:"fundings"`
	Transactions []*model.FundingTransaction `json:"transactions"`
}

func (s *reportService) financialReport(ctx context.Context, f ReportFilters) (*FinancialData, int64, error) {
	var (
		fundings []*model.ProjectFunding
		txs      []*model.FundingTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fundings, err = s.fundings.List(gctx, repo.FundingFilter{ProjectID: f.ProjectID, Limit: reportFetchLimit})
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.fundings.ListTransactions(gctx, repo.TransactionFilter{ProjectID: f.ProjectID, Range: f.dateRange(), Limit: reportFetchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	source := map[string]float64{}
	for _, fd := range fundings {
		source[fd.FundingSource] += fd.BudgetAllocated
	}

	data := &FinancialData{
		Totals:          fundingTotals(fundings),
		SourceBreakdown: source,
		Fundings:        fundings,
		Transactions:    txs,
	}
	return data, int64(len(fundings) + len(txs)), nil
}
