package routes

import (
	"net/http"

	"hotelops/constants"
	"hotelops/controllers"
	_ "hotelops/docs"
	middlewares "hotelops/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers gom các controller được đăng ký vào router
type Controllers struct {
	FrontDesk    *controllers.FrontDeskController
	Housekeeping *controllers.HousekeepingController
	Bookings     *controllers.BookingController
	Ledger       *controllers.LedgerController
	Reports      *controllers.ReportController
}

func SetupRoutes(router *gin.Engine, ctl Controllers, jwtSecret string) {
	router.Use(middlewares.RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.ErrorHandler())

	// mọi route nghiệp vụ cần token của nhân viên; role cụ thể được kiểm tra từng route
	staff := v1.Group("")
	staff.Use(middlewares.AuthMiddleware(jwtSecret, constants.BackOffice...))

	frontOffice := middlewares.RoleMiddleware(constants.FrontOffice...)
	housekeeping := middlewares.RoleMiddleware(constants.Housekeeping...)
	management := middlewares.RoleMiddleware(constants.Management...)

	staff.GET("/frontdesk/rooms", ctl.FrontDesk.GetRoomGrid)
	staff.GET("/rooms", ctl.FrontDesk.GetRooms)
	staff.POST("/rooms", management, ctl.FrontDesk.CreateRoom)
	staff.GET("/rooms/:name/status", ctl.FrontDesk.GetRoomStatus)

	staff.POST("/housekeeping/:name/clean", housekeeping, ctl.Housekeeping.MarkClean)
	staff.POST("/housekeeping/:name/dirty", ctl.Housekeeping.MarkDirty)
	staff.POST("/housekeeping/:name/inspect", housekeeping, ctl.Housekeeping.MarkInspected)
	staff.POST("/maintenance/:name/start", ctl.Housekeeping.StartMaintenance)
	staff.POST("/maintenance/:name/complete", ctl.Housekeeping.CompleteMaintenance)

	bookings := staff.Group("/bookings", frontOffice)
	bookings.GET("", ctl.Bookings.GetBookings)
	bookings.POST("", ctl.Bookings.CreateBooking)
	bookings.GET("/search", ctl.Bookings.SearchBookings)
	bookings.GET("/:id", ctl.Bookings.GetBookingDetail)
	bookings.PUT("/:id/status", ctl.Bookings.ChangeBookingStatus)

	staff.GET("/ledger", management, ctl.Ledger.GetEntries)
	staff.POST("/ledger", frontOffice, ctl.Ledger.CreateEntry)

	reports := staff.Group("", management)
	reports.GET("/reports/daily", ctl.Reports.GetDailyReport)
	reports.GET("/reports/range", ctl.Reports.GetRangeReport)
	reports.POST("/night-audit", ctl.Reports.RunNightAudit)
}
