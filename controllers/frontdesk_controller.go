package controllers

import (
	"context"
	"time"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"
	"hotelops/services/occupancy"

	"github.com/gin-gonic/gin"
)

type FrontDeskService interface {
	RoomGrid(ctx context.Context, day time.Time, filter occupancy.DisplayStatus) (*dto.RoomGridResponse, error)
	RoomDetail(ctx context.Context, name string, day time.Time) (*dto.RoomStatusDetail, error)
}

type RoomService interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error)
}

type FrontDeskController struct {
	frontDesk FrontDeskService
	rooms     RoomService
	loc       *time.Location
}

func NewFrontDeskController(frontDesk FrontDeskService, rooms RoomService, loc *time.Location) *FrontDeskController {
	return &FrontDeskController{frontDesk: frontDesk, rooms: rooms, loc: loc}
}

// GetRoomGrid godoc
// @Summary  Lưới trạng thái phòng trong ngày
// @Tags     frontdesk
// @Produce  json
// @Param    date    query  string  false  "Ngày (YYYY-MM-DD), mặc định hôm nay"
// @Param    status  query  string  false  "vacant | occupied | reserved | blocked | due_out"
// @Success  200  {object}  response.Response{data=dto.RoomGridResponse}
// @Router   /frontdesk/rooms [get]
func (fc *FrontDeskController) GetRoomGrid(c *gin.Context) {
	day, err := dayParam(c, "date", fc.loc)
	if err != nil {
		fail(c, err)
		return
	}

	grid, err := fc.frontDesk.RoomGrid(c.Request.Context(), day, occupancy.DisplayStatus(c.Query("status")))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, grid)
}

// GetRoomStatus godoc
// @Summary  Hồ sơ vận hành và trạng thái hiển thị của một phòng
// @Tags     rooms
// @Produce  json
// @Param    name  path   string  true   "Tên phòng"
// @Param    date  query  string  false  "Ngày (YYYY-MM-DD)"
// @Success  200  {object}  response.Response{data=dto.RoomStatusDetail}
// @Router   /rooms/{name}/status [get]
func (fc *FrontDeskController) GetRoomStatus(c *gin.Context) {
	day, err := dayParam(c, "date", fc.loc)
	if err != nil {
		fail(c, err)
		return
	}

	detail, err := fc.frontDesk.RoomDetail(c.Request.Context(), c.Param("name"), day)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, detail)
}

// GetRooms godoc
// @Summary  Danh sách phòng
// @Tags     rooms
// @Produce  json
// @Success  200  {object}  response.Response{data=[]models.Room}
// @Router   /rooms [get]
func (fc *FrontDeskController) GetRooms(c *gin.Context) {
	rooms, err := fc.rooms.ListRooms(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, rooms)
}

// CreateRoom godoc
// @Summary  Tạo phòng
// @Tags     rooms
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateRoomRequest  true  "Phòng"
// @Success  201  {object}  response.Response{data=models.Room}
// @Router   /rooms [post]
func (fc *FrontDeskController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu phòng không hợp lệ: "+err.Error())
		return
	}

	room, err := fc.rooms.CreateRoom(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, room)
}
