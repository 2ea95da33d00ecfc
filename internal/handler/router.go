package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travelmate/internal/handler/api"
	"travelmate/internal/handler/dto/request"
	"travelmate/internal/handler/httperr"
	"travelmate/internal/handler/middleware"
	"travelmate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	User      *api.UserHandler
	Catalog   *api.CatalogHandler
	Trip      *api.TripHandler
	SavedTrip *api.SavedTripHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, userHandler *api.UserHandler, catalogHandler *api.CatalogHandler, tripHandler *api.TripHandler, savedTripHandler *api.SavedTripHandler) error {
	if err := request.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{
		User:      userHandler,
		Catalog:   catalogHandler,
		Trip:      tripHandler,
		SavedTrip: savedTripHandler,
	})
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.CORS(cfg.CORS))
	engine.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler(slogger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/user"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
			{Method: http.MethodPut, Path: "/:id/preferences", Handler: h.User.UpdatePreferences},
		})
		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.FindByEmail},
			{Method: http.MethodPost, Path: "", Handler: h.User.Create},
		})

		addRoutes(apiGroup.Group("/flights"), []route{
			{Method: http.MethodPost, Path: "/search", Handler: h.Catalog.SearchFlights},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetFlight},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateFlight},
		})
		addRoutes(apiGroup.Group("/hotels"), []route{
			{Method: http.MethodPost, Path: "/search", Handler: h.Catalog.SearchHotels},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetHotel},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateHotel},
		})
		addRoutes(apiGroup.Group("/activities"), []route{
			{Method: http.MethodPost, Path: "/search", Handler: h.Catalog.SearchActivities},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetActivity},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateActivity},
		})
		addRoutes(apiGroup.Group("/deals"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListDeals},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetDeal},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateDeal},
		})

		addRoutes(apiGroup.Group("/trips"), []route{
			{Method: http.MethodGet, Path: "/user/:userId", Handler: h.Trip.ListByUser},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Trip.Get},
			{Method: http.MethodGet, Path: "/:id/itinerary.pdf", Handler: h.Trip.Itinerary, Mw: []gin.HandlerFunc{middleware.NoStore()}},
			{Method: http.MethodPost, Path: "", Handler: h.Trip.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Trip.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Trip.Delete},
		})
		addRoutes(apiGroup.Group("/saved-trips"), []route{
			{Method: http.MethodGet, Path: "/user/:userId", Handler: h.SavedTrip.ListByUser},
			{Method: http.MethodPost, Path: "", Handler: h.SavedTrip.Create},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.SavedTrip.Delete},
		})
		addRoutes(apiGroup.Group("/recommendations"), []route{
			{Method: http.MethodGet, Path: "/user/:userId", Handler: h.Trip.Recommend},
		})
	}

	engine.NoRoute(func(c *gin.Context) {
		slog.Debug("no route", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, httperr.New(http.StatusNotFound, "Not found"))
	})
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
