package main

import (
	"context"
	"log"
	"os"

	"hotelops/config"
	"hotelops/constants"
	"hotelops/controllers"
	"hotelops/jobs"
	"hotelops/repository"
	"hotelops/routes"
	"hotelops/services"
	"hotelops/services/logger"
	"hotelops/services/notification"
)

// @title        hotelops API
// @version      1.0
// @BasePath     /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in           header
// @name         Authorization
func main() {
	ctx := context.Background()

	router, m, c, err := config.InitApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	jwtSecret := config.GetEnv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
	cache := services.NewRedisCache(config.RedisClient)

	events := notification.Fanout{notification.NewMelodyService(m)}
	if url := config.GetEnv("AMQP_URL"); url != "" {
		amqpService, err := notification.NewAMQPService(url, config.GetEnv("AMQP_EVENTS_QUEUE"))
		if err != nil {
			log.Printf("Warning: không kết nối được RabbitMQ, chỉ dùng websocket: %v", err)
		} else {
			defer amqpService.Close()
			events = append(events, amqpService)
		}
	}

	roomRepo := repository.NewRoomRepository(config.DB)
	bookingRepo := repository.NewBookingRepository(config.DB)
	auditRepo := repository.NewAuditRepository(config.DB)
	ledgerRepo, err := repository.NewLedgerRepository(config.DB)
	if err != nil {
		log.Fatalf("Failed to initialize ledger repository: %v", err)
	}

	roomService := services.NewRoomService(services.RoomServiceOptions{
		Rooms:  roomRepo,
		Cache:  cache,
		Logger: appLogger.Named("rooms"),
	})
	frontDeskService := services.NewFrontDeskService(services.FrontDeskServiceOptions{
		Rooms:    roomRepo,
		Statuses: roomRepo,
		Bookings: bookingRepo,
		Cache:    cache,
		Logger:   appLogger.Named("frontdesk"),
	})
	housekeepingService := services.NewHousekeepingService(services.HousekeepingServiceOptions{
		Rooms:    roomRepo,
		Statuses: roomRepo,
		Cache:    cache,
		Events:   events,
		Logger:   appLogger.Named("housekeeping"),
		Clock:    services.RealClock{},
		Location: config.Loc,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings:     bookingRepo,
		Rooms:        roomRepo,
		Housekeeping: housekeepingService,
		Cache:        cache,
		Events:       events,
		Logger:       appLogger.Named("bookings"),
		Location:     config.Loc,
	})
	ledgerService := services.NewLedgerService(services.LedgerServiceOptions{
		Ledger:   ledgerRepo,
		Cache:    cache,
		Events:   events,
		Logger:   appLogger.Named("ledger"),
		Location: config.Loc,
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		Rooms:    roomRepo,
		Bookings: bookingRepo,
		Ledger:   ledgerRepo,
		Audits:   auditRepo,
		Cache:    cache,
		Logger:   appLogger.Named("reports"),
	})
	nightAuditService := services.NewNightAuditService(services.NightAuditServiceOptions{
		Rooms:    roomRepo,
		Bookings: bookingRepo,
		Reports:  reportService,
		Audits:   auditRepo,
		Cache:    cache,
		Events:   events,
		Logger:   appLogger.Named("night-audit"),
		Location: config.Loc,
	})

	if err := jobs.InitCronJobs(c, nightAuditService, config.GetEnvDefault("NIGHT_AUDIT_CRON", constants.DefaultNightAuditCron)); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Controllers{
		FrontDesk:    controllers.NewFrontDeskController(frontDeskService, roomService, config.Loc),
		Housekeeping: controllers.NewHousekeepingController(housekeepingService),
		Bookings:     controllers.NewBookingController(bookingService),
		Ledger:       controllers.NewLedgerController(ledgerService, config.Loc),
		Reports:      controllers.NewReportController(reportService, nightAuditService, config.Loc),
	}, jwtSecret)

	port := config.GetEnvDefault("PORT", constants.DefaultPort)

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
