package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/booking"
	bookingHttp "github.com/roomify/roomify-backend/internal/booking/http"
	"github.com/roomify/roomify-backend/internal/catalog"
	catalogHttp "github.com/roomify/roomify-backend/internal/catalog/http"
	"github.com/roomify/roomify-backend/internal/dashboard"
	dashboardHttp "github.com/roomify/roomify-backend/internal/dashboard/http"
	"github.com/roomify/roomify-backend/internal/invoice"
	invoiceHttp "github.com/roomify/roomify-backend/internal/invoice/http"
	"github.com/roomify/roomify-backend/internal/reception"
	receptionHttp "github.com/roomify/roomify-backend/internal/reception/http"
	"github.com/roomify/roomify-backend/internal/room"
	roomHttp "github.com/roomify/roomify-backend/internal/room/http"
	"github.com/roomify/roomify-backend/internal/user"
	userHttp "github.com/roomify/roomify-backend/internal/user/http"
)

// Config holds the services and settings the router depends on.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	UserService      user.Service
	RoomService      room.Service
	CatalogService   catalog.Catalog
	BookingService   booking.Service
	ReceptionService reception.Service
	InvoiceService   invoice.Service
	DashboardService dashboard.Service
	JWTManager       *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates that the request carries a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// Role gates applied on top of authMiddleware.
	staffMiddleware := RequireStaff()
	adminMiddleware := RequireAdmin()
	housekeepingMiddleware := RequireHousekeeping()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	receptionHandler := receptionHttp.NewHandler(cfg.ReceptionService)
	invoiceHandler := invoiceHttp.NewHandler(cfg.InvoiceService)
	dashboardHandler := dashboardHttp.NewHandler(cfg.DashboardService)

	// Register API routes under /api
	apiGroup := r.Group("/api")
	{
		userHttp.RegisterRoutes(apiGroup, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(apiGroup, roomHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterHousekeepingRoutes(apiGroup, roomHandler, authMiddleware, housekeepingMiddleware)
		catalogHttp.RegisterRoutes(apiGroup, catalogHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware, staffMiddleware)
		receptionHttp.RegisterRoutes(apiGroup, receptionHandler, authMiddleware, staffMiddleware)
		invoiceHttp.RegisterRoutes(apiGroup, invoiceHandler, authMiddleware, staffMiddleware)
		dashboardHttp.RegisterRoutes(apiGroup, dashboardHandler, authMiddleware, adminMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
