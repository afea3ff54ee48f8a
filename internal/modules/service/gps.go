package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

type GpsService interface {
	Record(ctx context.Context, in RecordGpsPointInput) (*model.GpsPoint, error)
	List(ctx context.Context, in ListGpsPointsInput) ([]*model.GpsPoint, error)
}

type gpsService struct {
	points   repo.GpsPointRepo
	projects repo.ProjectRepo
	events   EventPublisher
}

func NewGpsService(points repo.GpsPointRepo, projects repo.ProjectRepo, events EventPublisher) GpsService {
	return &gpsService{points: points, projects: projects, events: events}
}

type RecordGpsPointInput struct {
	ProjectID    uuid.UUID       `json:"project_id" binding:"required"`
	SectionID    *uuid.UUID      `json:"section_id"`
	ContractorID *uuid.UUID      `json:"contractor_id"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	Phase        model.WorkPhase `json:"phase"`
	Side         model.RoadSide  `json:"side"`
	Distance     float64         `json:"distance"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
	Timestamp    *time.Time      `json:"timestamp"`
	UserID       *uuid.UUID      `json:"-"`
}

func (s *gpsService) Record(ctx context.Context, in RecordGpsPointInput) (*model.GpsPoint, error) {
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, mapStoreErr(err)
	}

	// Field devices may report an offline capture time; default to now.
	ts := time.Now().UTC()
	if in.Timestamp != nil {
		ts = in.Timestamp.UTC()
	}

	side := in.Side
	if side == "" {
		side = model.SideCenter
	}
	status := in.Status
	if status == "" {
		status = "RECORDED"
	}

	p := &model.GpsPoint{
		ProjectID:    in.ProjectID,
		SectionID:    in.SectionID,
		ContractorID: in.ContractorID,
		UserID:       in.UserID,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Phase:        in.Phase,
		Side:         side,
		Distance:     in.Distance,
		Status:       status,
		Notes:        in.Notes,
		Timestamp:    ts,
	}
	if err := s.points.Create(ctx, p); err != nil {
		return nil, mapStoreErr(err)
	}

	s.events.Publish(ctx, "gps.recorded", p.ID.String(), p)
	return p, nil
}

type ListGpsPointsInput struct {
	ProjectID    *uuid.UUID
	SectionID    *uuid.UUID
	ContractorID *uuid.UUID
	Phase        *model.WorkPhase
	Status       *string
	Range        repo.DateRange
	Limit        int
	Desc         bool
}

func (s *gpsService) List(ctx context.Context, in ListGpsPointsInput) ([]*model.GpsPoint, error) {
	f := repo.GpsPointFilter{
		ProjectID:    in.ProjectID,
		SectionID:    in.SectionID,
		ContractorID: in.ContractorID,
		Phase:        in.Phase,
		Status:       in.Status,
		Range:        in.Range,
		Limit:        in.Limit,
	}
	points, err := s.points.List(ctx, f, in.Desc)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return points, nil
}
