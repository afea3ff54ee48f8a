package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
)

// pngProvinces is the reference list of PNG provinces seeded at startup.
// Seeding is idempotent: existing rows are left untouched.
var pngProvinces = []model.Province{
	{Name: "Central", Code: "CEN", Region: "Southern"},
	{Name: "Chimbu", Code: "CHM", Region: "Highlands"},
	{Name: "Eastern Highlands", Code: "EHG", Region: "Highlands"},
	{Name: "East New Britain", Code: "ENB", Region: "Islands"},
	{Name: "East Sepik", Code: "ESK", Region: "Momase"},
	{Name: "Enga", Code: "ENG", Region: "Highlands"},
	{Name: "Gulf", Code: "GLF", Region: "Southern"},
	{Name: "Hela", Code: "HLA", Region: "Highlands"},
	{Name: "Jiwaka", Code: "JWK", Region: "Highlands"},
	{Name: "Madang", Code: "MDG", Region: "Momase"},
	{Name: "Manus", Code: "MNS", Region: "Islands"},
	{Name: "Milne Bay", Code: "MBA", Region: "Southern"},
	{Name: "Morobe", Code: "MRB", Region: "Momase"},
	{Name: "National Capital District", Code: "NCD", Region: "Southern"},
	{Name: "New Ireland", Code: "NIR", Region: "Islands"},
	{Name: "Oro", Code: "ORO", Region: "Southern"},
	{Name: "Bougainville", Code: "NSB", Region: "Islands"},
	{Name: "Southern Highlands", Code: "SHM", Region: "Highlands"},
	{Name: "Western", Code: "WST", Region: "Southern"},
	{Name: "Western Highlands", Code: "WHM", Region: "Highlands"},
	{Name: "West New Britain", Code: "WNB", Region: "Islands"},
	{Name: "West Sepik", Code: "WSK", Region: "Momase"},
}

// SeedProvinces inserts the PNG province reference rows when the service
// starts, skipping codes that already exist.
func SeedProvinces(ctx context.Context, provinces repo.ProvinceRepo, log *zap.Logger) error {
	if err := provinces.Seed(ctx, pngProvinces); err != nil {
		return err
	}
	log.Info("province reference data seeded", zap.Int("provinces", len(pngProvinces)))
	return nil
}

// LogSetupState warns on startup while no admin account exists, pointing the
// operator at the create-admin endpoint.
func LogSetupState(ctx context.Context, users repo.UserRepo, log *zap.Logger) {
	n, err := users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		log.Warn("could not check for admin account", zap.Error(err))
		return
	}
	if n == 0 {
		log.Warn("no admin account exists, create one via POST /api/setup/create-admin")
	}
}
