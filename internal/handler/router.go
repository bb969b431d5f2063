package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roomhub/internal/handler/api"
	"roomhub/internal/handler/middleware"
	"roomhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	presenceHandler *api.PresenceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, authMiddleware)
	setupRoutes(engine, listingHandler, bookingHandler, catalogHandler, presenceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// Actor resolution precedes logging so request logs carry actor_id.
	engine.Use(authMiddleware.ResolveActor())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	listingHandler *api.ListingHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	presenceHandler *api.PresenceHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.CreateListing},
				{Method: http.MethodGet, Path: "", Handler: listingHandler.ListListings},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.GetListing},
				{Method: http.MethodPut, Path: "/:id/approve", Handler: listingHandler.ApproveListing},
				{Method: http.MethodPut, Path: "/:id/reject", Handler: listingHandler.RejectListing},
				{Method: http.MethodPut, Path: "/:id/request-delete", Handler: listingHandler.RequestDelete},
				{Method: http.MethodPut, Path: "/:id/approve-delete", Handler: listingHandler.ApproveDelete},
				{Method: http.MethodPut, Path: "/:id/reject-delete", Handler: listingHandler.RejectDelete},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.HardDelete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodPut, Path: "/:id/confirm", Handler: bookingHandler.ConfirmBooking},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCatalog},
				{Method: http.MethodPost, Path: "/:id/view", Handler: catalogHandler.IncrementView},
			})
		}

		presence := apiGroup.Group("/presence")
		{
			addRoutes(presence, []route{
				{Method: http.MethodPost, Path: "/ping", Handler: presenceHandler.Ping},
				{Method: http.MethodPost, Path: "/disconnect", Handler: presenceHandler.Disconnect},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
