package controllers

import (
	"context"
	"strings"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/response"

	"github.com/gin-gonic/gin"
)

type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error)
	Get(ctx context.Context, id uint) (*models.Booking, error)
	ChangeStatus(ctx context.Context, id uint, req dto.UpdateBookingStatusRequest) (*models.Booking, error)
	List(ctx context.Context, q dto.BookingListQuery) (dto.PaginatedResponse[[]models.Booking], error)
	Search(ctx context.Context, query string, limit int) ([]dto.BookingSearchResult, error)
}

type BookingController struct {
	svc BookingService
}

func NewBookingController(svc BookingService) *BookingController {
	return &BookingController{svc: svc}
}

// GetBookings godoc
// @Summary  Danh sách booking
// @Tags     bookings
// @Produce  json
// @Param    from    query  string  false  "Từ ngày"
// @Param    to      query  string  false  "Đến ngày"
// @Param    room    query  string  false  "Tên phòng"
// @Param    status  query  string  false  "Trạng thái, phân tách bằng dấu phẩy"
// @Param    page    query  int     false  "Trang"
// @Param    limit   query  int     false  "Số bản ghi"
// @Success  200  {object}  response.Response{data=[]models.Booking}
// @Router   /bookings [get]
func (bc *BookingController) GetBookings(c *gin.Context) {
	var q dto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Tham số không hợp lệ: "+err.Error())
		return
	}

	page, err := bc.svc.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithPagination(c, page.Data, page.Pagination.Page, page.Pagination.Limit, page.Pagination.Total)
}

// GetBookingDetail godoc
// @Summary  Chi tiết booking
// @Tags     bookings
// @Produce  json
// @Param    id  path  int  true  "Booking ID"
// @Success  200  {object}  response.Response{data=models.Booking}
// @Router   /bookings/{id} [get]
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := bc.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, booking)
}

// CreateBooking godoc
// @Summary  Tạo booking hoặc khóa phòng bảo trì
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateBookingRequest  true  "Booking"
// @Success  201  {object}  response.Response{data=models.Booking}
// @Failure  409  {object}  response.Response
// @Router   /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu booking không hợp lệ: "+err.Error())
		return
	}

	booking, err := bc.svc.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, booking)
}

// ChangeBookingStatus godoc
// @Summary  Chuyển trạng thái booking
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id    path  int                             true  "Booking ID"
// @Param    body  body  dto.UpdateBookingStatusRequest  true  "Trạng thái mới"
// @Success  200  {object}  response.Response{data=models.Booking}
// @Failure  409  {object}  response.Response
// @Router   /bookings/{id}/status [put]
func (bc *BookingController) ChangeBookingStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ: "+err.Error())
		return
	}

	booking, err := bc.svc.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, booking)
}

// SearchBookings godoc
// @Summary  Tìm booking theo tên khách, số điện thoại hoặc mã đặt phòng
// @Tags     bookings
// @Produce  json
// @Param    q      query  string  true   "Từ khóa"
// @Param    limit  query  int     false  "Số kết quả"
// @Success  200  {object}  response.Response{data=[]dto.BookingSearchResult}
// @Router   /bookings/search [get]
func (bc *BookingController) SearchBookings(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		fail(c, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Thiếu từ khóa tìm kiếm", nil))
		return
	}

	results, err := bc.svc.Search(c.Request.Context(), query, intQuery(c, "limit", 10))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, results)
}
