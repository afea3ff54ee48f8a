package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tpdc055/connectpng/internal/config"
	"github.com/tpdc055/connectpng/internal/middleware"
	"github.com/tpdc055/connectpng/internal/modules/handler"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/pkg/rbac"
	"github.com/tpdc055/connectpng/internal/telemetry"
)

type RouterDeps struct {
	Config *config.Config
	Log    *zap.Logger
	Users  repo.UserRepo

	AuthHandler       *handler.AuthHandler
	ProjectHandler    *handler.ProjectHandler
	SectionHandler    *handler.SectionHandler
	ContractorHandler *handler.ContractorHandler
	GpsHandler        *handler.GpsHandler
	QualityHandler    *handler.QualityHandler
	MilestoneHandler  *handler.MilestoneHandler
	ProgressHandler   *handler.ProgressHandler
	FundingHandler    *handler.FundingHandler
	UserHandler       *handler.UserHandler
	LookupHandler     *handler.LookupHandler
	ReportHandler     *handler.ReportHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// unauthenticated: login and first-admin bootstrap
	api := r.Group("/api")
	{
		api.POST("/auth/login", d.AuthHandler.Login)
		api.GET("/setup/status", d.AuthHandler.SetupStatus)
		api.POST("/setup/create-admin", d.AuthHandler.CreateAdmin)
	}

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.Auth(d.Config, d.Users))

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", middleware.RequirePermission(rbac.PermissionProjectManage), d.ProjectHandler.CreateProject)
			projects.GET("/:id", d.ProjectHandler.GetProject)
			projects.PUT("/:id",
				middleware.RequirePermission(rbac.PermissionProjectManage),
				middleware.RequireProjectAccess(d.Users, model.AccessEdit),
				d.ProjectHandler.UpdateProject)
			projects.DELETE("/:id",
				middleware.RequirePermission(rbac.PermissionProjectManage),
				middleware.RequireProjectAccess(d.Users, model.AccessManage),
				d.ProjectHandler.DeleteProject)

			projects.GET("/:id/sections", d.ProjectHandler.ListSections)
			projects.POST("/:id/sections",
				middleware.RequirePermission(rbac.PermissionProjectManage),
				middleware.RequireProjectAccess(d.Users, model.AccessEdit),
				d.ProjectHandler.CreateSection)
		}

		sections := v1.Group("/sections")
		{
			sections.PUT("/:id", middleware.RequirePermission(rbac.PermissionProjectManage), d.SectionHandler.UpdateSection)
			sections.DELETE("/:id", middleware.RequirePermission(rbac.PermissionProjectManage), d.SectionHandler.DeleteSection)
		}

		contractors := v1.Group("/contractors")
		{
			contractors.GET("", d.ContractorHandler.ListContractors)
			contractors.POST("", middleware.RequirePermission(rbac.PermissionContractorManage), d.ContractorHandler.CreateContractor)
			contractors.GET("/:id", d.ContractorHandler.GetContractor)
			contractors.PUT("/:id", middleware.RequirePermission(rbac.PermissionContractorManage), d.ContractorHandler.UpdateContractor)
			contractors.DELETE("/:id", middleware.RequirePermission(rbac.PermissionContractorManage), d.ContractorHandler.DeleteContractor)
			contractors.POST("/:id/assignments", middleware.RequirePermission(rbac.PermissionContractorManage), d.ContractorHandler.AssignContractor)
		}

		assignments := v1.Group("/contractor-projects")
		{
			assignments.GET("", d.ContractorHandler.ListAssignments)
			assignments.PATCH("/:id", middleware.RequirePermission(rbac.PermissionContractorManage), d.ContractorHandler.UpdateAssignment)
		}

		gps := v1.Group("/gps-points")
		{
			gps.GET("", d.GpsHandler.ListPoints)
			gps.POST("", middleware.RequirePermission(rbac.PermissionGpsCreate), d.GpsHandler.RecordPoint)
		}

		quality := v1.Group("/quality-reports")
		{
			quality.GET("", d.QualityHandler.ListReports)
			quality.GET("/:id", d.QualityHandler.GetReport)
			quality.POST("", middleware.RequirePermission(rbac.PermissionQualityCreate), d.QualityHandler.CreateReport)
			quality.PUT("/:id", middleware.RequirePermission(rbac.PermissionQualityUpdate), d.QualityHandler.UpdateReport)
			quality.DELETE("/:id", middleware.RequirePermission(rbac.PermissionQualityDelete), d.QualityHandler.DeleteReport)
		}

		milestones := v1.Group("/milestones")
		{
			milestones.GET("", d.MilestoneHandler.ListMilestones)
			milestones.GET("/:id", d.MilestoneHandler.GetMilestone)
			milestones.POST("", middleware.RequirePermission(rbac.PermissionMilestoneManage), d.MilestoneHandler.CreateMilestone)
			milestones.PUT("/:id", middleware.RequirePermission(rbac.PermissionMilestoneManage), d.MilestoneHandler.UpdateMilestone)
			milestones.DELETE("/:id", middleware.RequirePermission(rbac.PermissionMilestoneManage), d.MilestoneHandler.DeleteMilestone)
			milestones.POST("/:id/updates", middleware.RequirePermission(rbac.PermissionMilestoneManage), d.MilestoneHandler.AddStatusUpdate)
		}

		progress := v1.Group("/progress-reports")
		{
			progress.GET("", d.ProgressHandler.ListReports)
			progress.GET("/:id", d.ProgressHandler.GetReport)
			progress.POST("", middleware.RequirePermission(rbac.PermissionProgressCreate), d.ProgressHandler.CreateReport)
			progress.PUT("/:id", middleware.RequirePermission(rbac.PermissionProgressCreate), d.ProgressHandler.UpdateReport)
			progress.DELETE("/:id", middleware.RequirePermission(rbac.PermissionProgressCreate), d.ProgressHandler.DeleteReport)
		}

		finances := v1.Group("/finances")
		{
			finances.GET("", d.FundingHandler.ListFundings)
			finances.GET("/transactions", d.FundingHandler.ListTransactions)
			finances.GET("/:id", d.FundingHandler.GetFunding)
			finances.POST("", middleware.RequirePermission(rbac.PermissionFinanceManage), d.FundingHandler.CreateFunding)
			finances.PUT("/:id", middleware.RequirePermission(rbac.PermissionFinanceManage), d.FundingHandler.UpdateFunding)
			finances.DELETE("/:id", middleware.RequirePermission(rbac.PermissionFinanceManage), d.FundingHandler.DeleteFunding)
			finances.POST("/:id/transactions", middleware.RequirePermission(rbac.PermissionFinanceManage), d.FundingHandler.RecordTransaction)
		}

		users := v1.Group("/users")
		{
			users.GET("/me", d.UserHandler.Me)
			users.Use(middleware.RequirePermission(rbac.PermissionUserManage))
			users.GET("", d.UserHandler.ListUsers)
			users.POST("", d.UserHandler.CreateUser)
			users.GET("/:id", d.UserHandler.GetUser)
			users.PUT("/:id", d.UserHandler.UpdateUser)
			users.DELETE("/:id", d.UserHandler.DeactivateUser)
			users.POST("/:id/access", d.UserHandler.GrantAccess)
			users.DELETE("/:id/access/:project_id", d.UserHandler.RevokeAccess)
		}

		v1.GET("/provinces", d.LookupHandler.Provinces)

		lookups := v1.Group("/lookups")
		{
			lookups.GET("/:name", d.LookupHandler.Enums)
			lookups.POST("/refresh", middleware.RequirePermission(rbac.PermissionLookupRefresh), d.LookupHandler.Refresh)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("", d.ReportHandler.Generate)
			reports.GET("/export", d.ReportHandler.Export)
		}
	}
	return r
}
