package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roomify/roomify-backend/internal/api"
	"github.com/roomify/roomify-backend/internal/auth"
	"github.com/roomify/roomify-backend/internal/booking"
	"github.com/roomify/roomify-backend/internal/catalog"
	"github.com/roomify/roomify-backend/internal/dashboard"
	"github.com/roomify/roomify-backend/internal/invoice"
	"github.com/roomify/roomify-backend/internal/reception"
	"github.com/roomify/roomify-backend/internal/room"
	"github.com/roomify/roomify-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Catalog Module (hotel services offered to guests)
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewCatalog(catalogRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, catalogService)

	// Invoice Module
	invoiceRepo := invoice.NewPgxRepository(cfg.DBPool)
	invoiceService := invoice.NewService(invoiceRepo, bookingRepo)

	// Reception Module
	receptionRepo := reception.NewPgxRepository(cfg.DBPool)
	receptionService := reception.NewService(receptionRepo, bookingRepo, invoiceRepo)

	// Dashboard Module
	dashboardRepo := dashboard.NewPgxRepository(cfg.DBPool)
	dashboardService := dashboard.NewService(dashboardRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		UserService:      userService,
		RoomService:      roomService,
		CatalogService:   catalogService,
		BookingService:   bookingService,
		ReceptionService: receptionService,
		InvoiceService:   invoiceService,
		DashboardService: dashboardService,
		JWTManager:       jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
