package http

import (
	"github.com/gin-gonic/gin"

	"github.com/roypriyanshu02/graphic-walker-app/internal/appcontext"
	"github.com/roypriyanshu02/graphic-walker-app/internal/http/middleware"
	"github.com/roypriyanshu02/graphic-walker-app/internal/metrics"
	"github.com/roypriyanshu02/graphic-walker-app/internal/store"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context

	users      *store.UserStore
	datasets   *store.DatasetStore
	dashboards *store.DashboardStore
	settings   *store.SettingsStore
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	if ctx.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware(ctx.Config))
	engine.Use(middleware.MetricsMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,

		users:      store.NewUserStore(ctx.DB, ctx.Logger),
		datasets:   store.NewDatasetStore(ctx.DB, ctx.Logger),
		dashboards: store.NewDashboardStore(ctx.DB, ctx.Logger),
		settings:   store.NewSettingsStore(ctx.DB, ctx.Logger),
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	h.engine.GET("/health", Health(h.context))
	h.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	h.setupAuthRoutes()
	h.setupDatasetRoutes()
	h.setupDashboardRoutes()
	h.setupCSVRoutes()
	h.setupSettingsRoutes()
}

func (h *APIService) auth() gin.HandlerFunc {
	return middleware.JWTAuthMiddleware(h.context.Config.JWTSecret)
}

func (h *APIService) setupAuthRoutes() {
	auth := h.engine.Group("/auth")

	auth.POST("/register", Register(h.context, h.users))
	auth.POST("/login", Login(h.context, h.users))
	auth.POST("/logout", Logout(h.context))
	auth.GET("/profile", h.auth(), GetProfile(h.context, h.users))
	auth.GET("/verify", h.auth(), VerifyToken(h.context))
}

func (h *APIService) setupDatasetRoutes() {
	datasets := h.engine.Group("/Dataset")
	datasets.Use(h.auth())

	datasets.GET("", ListDatasets(h.context, h.datasets))
	datasets.POST("", SaveDataset(h.context, h.datasets))
	datasets.POST("/upload", UploadDataset(h.context, h.datasets))
	datasets.GET("/:name", GetDataset(h.context, h.datasets))
	datasets.DELETE("/:name", DeleteDataset(h.context, h.datasets))
	datasets.GET("/:name/data", GetDatasetData(h.context, h.datasets))
	datasets.GET("/:name/info", GetDatasetInfo(h.context, h.datasets))
}

func (h *APIService) setupDashboardRoutes() {
	dashboards := h.engine.Group("/Dashboard")
	dashboards.Use(h.auth())

	dashboards.GET("", ListDashboards(h.context, h.dashboards))
	dashboards.POST("", SaveDashboard(h.context, h.dashboards))
	dashboards.GET("/stats", GetDashboardStats(h.context, h.dashboards))
	dashboards.GET("/:name", GetDashboard(h.context, h.dashboards))
	dashboards.DELETE("/:name", DeleteDashboard(h.context, h.dashboards))
}

func (h *APIService) setupCSVRoutes() {
	csv := h.engine.Group("/api/csv")
	csv.Use(h.auth())

	csv.GET("/read", ReadCSV(h.context))
	csv.GET("/info", CSVInfo(h.context))
	csv.GET("/columns", ReadCSVColumns(h.context))
	csv.GET("/paginated", ReadCSVPage(h.context))
	csv.GET("/stats", CSVStats(h.context))
}

func (h *APIService) setupSettingsRoutes() {
	settings := h.engine.Group("/settings")
	settings.Use(h.auth())

	settings.GET("", GetAllSettings(h.context, h.settings))
	settings.POST("/bulk", SetSettingsBulk(h.context, h.settings))
	settings.GET("/:key", GetSetting(h.context, h.settings))
	settings.PUT("/:key", SetSetting(h.context, h.settings))
	settings.DELETE("/:key", DeleteSetting(h.context, h.settings))

	groups := settings.Group("/groups")
	groups.POST("", CreateGroup(h.context, h.settings))
	groups.POST("/:groupID/members", AddGroupMember(h.context, h.settings))
	groups.GET("/:groupID/settings", GetGroupSettings(h.context, h.settings))
	groups.PUT("/:groupID/settings", SetGroupSetting(h.context, h.settings))
}
