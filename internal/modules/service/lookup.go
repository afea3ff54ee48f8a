package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

const lookupKeyPrefix = "lookup:"

// LookupService serves the small reference lists dropdowns are built from.
// Provinces come from the database behind a Redis cache; the enum lists are
// static and served directly.
type LookupService interface {
	Provinces(ctx context.Context) ([]*model.Province, error)
	Enums(ctx context.Context, name string) ([]string, error)
	Invalidate(ctx context.Context) error
}

type lookupService struct {
	provinces repo.ProvinceRepo
	rdb       *redis.Client
	ttl       time.Duration
	log       *zap.Logger
}

func NewLookupService(provinces repo.ProvinceRepo, rdb *redis.Client, ttl time.Duration, log *zap.Logger) LookupService {
	return &lookupService{provinces: provinces, rdb: rdb, ttl: ttl, log: log}
}

func (s *lookupService) Provinces(ctx context.Context) ([]*model.Province, error) {
	key := lookupKeyPrefix + "provinces"

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var cached []*model.Province
			if err := sonic.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// Corrupt cache entry falls through to the database.
			s.rdb.Del(ctx, key)
		}
	}

	provinces, err := s.provinces.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if s.rdb != nil {
		if raw, err := sonic.Marshal(provinces); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				s.log.Warn("lookup cache write failed", zap.Error(err))
			}
		}
	}
	return provinces, nil
}

// Enums returns a named static value list.
func (s *lookupService) Enums(_ context.Context, name string) ([]string, error) {
	switch name {
	case "project_statuses":
		return enumStrings(model.ProjectStatuses), nil
	case "work_phases":
		return enumStrings(model.WorkPhases), nil
	case "roles":
		return enumStrings(model.Roles), nil
	case "compliance_statuses":
		return enumStrings(model.ComplianceStatuses), nil
	case "qa_qc_statuses":
		return enumStrings(model.QaQcStatuses), nil
	case "certification_levels":
		return enumStrings(model.CertificationLevels), nil
	default:
		return nil, ErrUnknownLookup
	}
}

// Invalidate drops every cached lookup list. Called after reference data
// changes, e.g. a province reseed.
func (s *lookupService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	iter := s.rdb.Scan(ctx, 0, lookupKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
