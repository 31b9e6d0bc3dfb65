package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shiftcore/internal/handler/api"
	"shiftcore/internal/handler/middleware"
	"shiftcore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	signupHandler *api.SignupHandler,
	slotHandler *api.SlotHandler,
	creditHandler *api.CreditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, signupHandler, slotHandler, creditHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	signupHandler *api.SignupHandler,
	slotHandler *api.SlotHandler,
	creditHandler *api.CreditHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: slotHandler.GetSlot},
				{Method: http.MethodPost, Path: "/:id/signups", Handler: signupHandler.CreateSignup},
				{Method: http.MethodDelete, Path: "/:id/signups/:person", Handler: signupHandler.DeleteSignup},
				{Method: http.MethodDelete, Path: "/:id/signups", Handler: signupHandler.BulkDeleteSignups,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		people := apiGroup.Group("/people")
		{
			addRoutes(people, []route{
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: slotHandler.ListPersonSlots},
				{Method: http.MethodGet, Path: "/:id/work-summary", Handler: creditHandler.GetWorkSummary},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/credits", Handler: creditHandler.ComputeCredits},
			{Method: http.MethodPost, Path: "/credit-rates/cache/clear", Handler: creditHandler.ClearRateCache,
				Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
		})
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
