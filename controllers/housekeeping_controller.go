package controllers

import (
	"context"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"

	"github.com/gin-gonic/gin"
)

type HousekeepingService interface {
	MarkClean(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error)
	MarkDirty(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error)
	MarkInspected(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error)
	StartMaintenance(ctx context.Context, name string, req dto.MaintenanceRequest) (*models.RoomStatus, error)
	CompleteMaintenance(ctx context.Context, name string) (*models.RoomStatus, error)
}

type HousekeepingController struct {
	svc HousekeepingService
}

func NewHousekeepingController(svc HousekeepingService) *HousekeepingController {
	return &HousekeepingController{svc: svc}
}

type housekeepingAction func(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error)

// body rỗng được chấp nhận
func (hc *HousekeepingController) handle(action housekeepingAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.HousekeepingRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
				return
			}
		}

		status, err := action(c.Request.Context(), c.Param("name"), req)
		if err != nil {
			fail(c, err)
			return
		}
		response.Success(c, status)
	}
}

// MarkClean godoc
// @Summary  Đánh dấu phòng đã dọn
// @Tags     housekeeping
// @Accept   json
// @Produce  json
// @Param    name  path  string                   true   "Tên phòng"
// @Param    body  body  dto.HousekeepingRequest  false  "Nhân viên, ghi chú"
// @Success  200  {object}  response.Response{data=models.RoomStatus}
// @Router   /housekeeping/{name}/clean [post]
func (hc *HousekeepingController) MarkClean(c *gin.Context) {
	hc.handle(hc.svc.MarkClean)(c)
}

// MarkDirty godoc
// @Summary  Đánh dấu phòng cần dọn
// @Tags     housekeeping
// @Param    name  path  string  true  "Tên phòng"
// @Success  200  {object}  response.Response{data=models.RoomStatus}
// @Router   /housekeeping/{name}/dirty [post]
func (hc *HousekeepingController) MarkDirty(c *gin.Context) {
	hc.handle(hc.svc.MarkDirty)(c)
}

// MarkInspected godoc
// @Summary  Đánh dấu phòng đã kiểm tra
// @Tags     housekeeping
// @Param    name  path  string  true  "Tên phòng"
// @Success  200  {object}  response.Response{data=models.RoomStatus}
// @Router   /housekeeping/{name}/inspect [post]
func (hc *HousekeepingController) MarkInspected(c *gin.Context) {
	hc.handle(hc.svc.MarkInspected)(c)
}

// StartMaintenance godoc
// @Summary  Khóa phòng để bảo trì
// @Tags     maintenance
// @Accept   json
// @Produce  json
// @Param    name  path  string                  true  "Tên phòng"
// @Param    body  body  dto.MaintenanceRequest  true  "Cửa sổ bảo trì"
// @Success  200  {object}  response.Response{data=models.RoomStatus}
// @Router   /maintenance/{name}/start [post]
func (hc *HousekeepingController) StartMaintenance(c *gin.Context) {
	var req dto.MaintenanceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Dữ liệu bảo trì không hợp lệ: "+err.Error())
			return
		}
	}

	status, err := hc.svc.StartMaintenance(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, status)
}

// CompleteMaintenance godoc
// @Summary  Hoàn tất bảo trì
// @Tags     maintenance
// @Param    name  path  string  true  "Tên phòng"
// @Success  200  {object}  response.Response{data=models.RoomStatus}
// @Router   /maintenance/{name}/complete [post]
func (hc *HousekeepingController) CompleteMaintenance(c *gin.Context) {
	status, err := hc.svc.CompleteMaintenance(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, status)
}
