package controllers

import (
	"context"
	"time"

	"hotelops/dto"
	"hotelops/models"
	"hotelops/response"

	"github.com/gin-gonic/gin"
)

type LedgerService interface {
	Record(ctx context.Context, req dto.CreateLedgerEntryRequest) (*models.LedgerEntry, error)
	List(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error)
}

type LedgerController struct {
	svc LedgerService
	loc *time.Location
}

func NewLedgerController(svc LedgerService, loc *time.Location) *LedgerController {
	return &LedgerController{svc: svc, loc: loc}
}

// GetEntries godoc
// @Summary  Bút toán thu chi trong khoảng ngày
// @Tags     ledger
// @Produce  json
// @Param    from  query  string  false  "Từ ngày, mặc định hôm nay"
// @Param    to    query  string  false  "Đến ngày, mặc định bằng from"
// @Success  200  {object}  response.Response{data=[]models.LedgerEntry}
// @Router   /ledger [get]
func (lc *LedgerController) GetEntries(c *gin.Context) {
	from, err := dayParam(c, "from", lc.loc)
	if err != nil {
		fail(c, err)
		return
	}
	to := from
	if c.Query("to") != "" {
		if to, err = dayParam(c, "to", lc.loc); err != nil {
			fail(c, err)
			return
		}
	}

	entries, err := lc.svc.List(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, entries)
}

// CreateEntry godoc
// @Summary  Ghi bút toán
// @Tags     ledger
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CreateLedgerEntryRequest  true  "Bút toán"
// @Success  201  {object}  response.Response{data=models.LedgerEntry}
// @Router   /ledger [post]
func (lc *LedgerController) CreateEntry(c *gin.Context) {
	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu bút toán không hợp lệ: "+err.Error())
		return
	}

	entry, err := lc.svc.Record(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, entry)
}
