package controllers

import (
	"context"
	"time"

	"hotelops/dto"
	"hotelops/response"
	"hotelops/services/occupancy"
	"hotelops/validator"

	"github.com/gin-gonic/gin"
)

type ReportService interface {
	Daily(ctx context.Context, day time.Time) (*occupancy.DailyReport, error)
	Range(ctx context.Context, from, to time.Time) (*dto.RangeReportResponse, error)
}

type NightAuditService interface {
	Run(ctx context.Context, day time.Time) (*dto.NightAuditResult, error)
}

type ReportController struct {
	reports ReportService
	audit   NightAuditService
	loc     *time.Location
}

func NewReportController(reports ReportService, audit NightAuditService, loc *time.Location) *ReportController {
	return &ReportController{reports: reports, audit: audit, loc: loc}
}

// GetDailyReport godoc
// @Summary  Báo cáo vận hành trong ngày
// @Tags     reports
// @Produce  json
// @Param    date  query  string  false  "Ngày (YYYY-MM-DD)"
// @Success  200  {object}  response.Response{data=occupancy.DailyReport}
// @Router   /reports/daily [get]
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	day, err := dayParam(c, "date", rc.loc)
	if err != nil {
		fail(c, err)
		return
	}

	report, err := rc.reports.Daily(c.Request.Context(), day)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, report)
}

// GetRangeReport godoc
// @Summary  Tổng hợp các lần night audit trong khoảng ngày
// @Tags     reports
// @Produce  json
// @Param    from  query  string  true  "Từ ngày"
// @Param    to    query  string  true  "Đến ngày"
// @Success  200  {object}  response.Response{data=dto.RangeReportResponse}
// @Router   /reports/range [get]
func (rc *ReportController) GetRangeReport(c *gin.Context) {
	from, err := validator.ParseDate(c.Query("from"), rc.loc)
	if err != nil {
		fail(c, err)
		return
	}
	to, err := validator.ParseDate(c.Query("to"), rc.loc)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := rc.reports.Range(c.Request.Context(), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}

// RunNightAudit godoc
// @Summary  Chạy night audit thủ công
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    body  body  dto.NightAuditRequest  false  "Ngày cần chốt, mặc định hôm qua"
// @Success  200  {object}  response.Response{data=dto.NightAuditResult}
// @Router   /night-audit [post]
func (rc *ReportController) RunNightAudit(c *gin.Context) {
	var req dto.NightAuditRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
			return
		}
	}

	var day time.Time
	if req.Date == "" {
		now := time.Now().In(rc.loc)
		day = time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, rc.loc)
	} else {
		parsed, err := validator.ParseDate(req.Date, rc.loc)
		if err != nil {
			fail(c, err)
			return
		}
		day = parsed
	}

	result, err := rc.audit.Run(c.Request.Context(), day)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}
