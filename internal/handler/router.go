package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gottliebdinh/moggi-admin/internal/handler/api"
	"github.com/gottliebdinh/moggi-admin/internal/handler/middleware"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Schedule    *api.ScheduleHandler
	Guest       *api.GuestHandler
	Room        *api.RoomHandler
	Settings    *api.SettingsHandler
	Order       *api.OrderHandler
	Mail        *api.MailHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		guarded := apiGroup.Group("")
		guarded.Use(authMiddleware.RequireAuth())
		{
			addRoutes(guarded.Group("/reservations"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})

			addRoutes(guarded.Group("/schedule"), []route{
				{Method: http.MethodGet, Path: "/slots", Handler: h.Schedule.Slots},
				{Method: http.MethodGet, Path: "/default-time", Handler: h.Schedule.DefaultTime},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Schedule.Availability},
				{Method: http.MethodGet, Path: "/fit", Handler: h.Schedule.Fit},
			})

			addRoutes(guarded.Group("/guests"), []route{
				{Method: http.MethodGet, Path: "/history", Handler: h.Guest.History},
			})

			addRoutes(guarded.Group("/rooms"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
			})

			addRoutes(guarded.Group("/tables"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListTables},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateTable},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.UpdateTable},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteTable},
			})

			addRoutes(guarded.Group("/settings"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPost, Path: "/rules", Handler: h.Settings.CreateRule},
				{Method: http.MethodPut, Path: "/rules/:id", Handler: h.Settings.UpdateRule},
				{Method: http.MethodDelete, Path: "/rules/:id", Handler: h.Settings.DeleteRule},
				{Method: http.MethodPost, Path: "/exceptions", Handler: h.Settings.CreateClosedDay},
				{Method: http.MethodDelete, Path: "/exceptions/:id", Handler: h.Settings.DeleteClosedDay},
			})

			addRoutes(guarded.Group("/orders"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus},
			})

			addRoutes(guarded.Group("/email"), []route{
				{Method: http.MethodPost, Path: "/send", Handler: h.Mail.Send},
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
