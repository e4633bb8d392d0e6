package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/handler/api"
	"stable-booking/internal/handler/middleware"
	"stable-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slots       *api.SlotHandler
	Bookings    *api.BookingHandler
	Reviews     *api.ReviewHandler
	Leaderboard *api.LeaderboardHandler
	Horses      *api.HorseHandler
	Stables     *api.StableHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	engine.Use(
		middleware.Recovery(logger),
		otelgin.Middleware(cfg.Telemetry.ServiceName),
		middleware.NewCORSMiddleware(cfg.CORS),
		middleware.RequestLogger(logger),
		middleware.MetricsMiddleware(),
		middleware.ErrorResponder(),
	)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() != gin.ReleaseMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	riderOnly := authMiddleware.RequireAnyRole(user.RoleRider)

	apiGroup := engine.Group("/api")
	{
		stables := apiGroup.Group("/stables")
		addRoutes(stables, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Stables.List, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slots.List},
			{
				Method:  http.MethodPost,
				Path:    "/:id/slots",
				Handler: h.Slots.Create,
				Mw:      []gin.HandlerFunc{requireAuth, authMiddleware.RequireAnyRole(user.RoleStableOwner, user.RoleAdmin)},
			},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create, Mw: []gin.HandlerFunc{riderOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Bookings.ListMine, Mw: []gin.HandlerFunc{riderOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
				{Method: http.MethodPost, Path: "/:id/review", Handler: h.Reviews.Create, Mw: []gin.HandlerFunc{riderOnly}},
			})
		}

		leaderboard := apiGroup.Group("/leaderboard")
		addRoutes(leaderboard, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Leaderboard.Top},
			{
				Method:  http.MethodPost,
				Path:    "/score",
				Handler: h.Leaderboard.Score,
				Mw:      []gin.HandlerFunc{requireAuth, authMiddleware.RequireAnyRole(user.RoleStableOwner)},
			},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireAnyRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/horses/:id/tier", Handler: h.Horses.AssignTier},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
