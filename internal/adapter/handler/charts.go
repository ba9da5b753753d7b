package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avamus/visionboard/errors"
	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/adapter/presenter"
	"github.com/avamus/visionboard/internal/domain/entities"
	calllogUsecase "github.com/avamus/visionboard/internal/usecase/calllog"
	"github.com/avamus/visionboard/internal/usecase/dashboard"
)

const dateLayout = "2006-01-02"

// Charts serves the derived dashboard projections: score trends,
// paginated record windows and segmented transcripts.
type Charts struct {
	service        calllogUsecase.Service
	recordsPerPage int
	logger         *zap.Logger
}

// NewChartsHandler creates a new charts handler
func NewChartsHandler(service calllogUsecase.Service, recordsPerPage int, logger *zap.Logger) *Charts {
	if recordsPerPage <= 0 {
		recordsPerPage = dashboard.DefaultRecordsPerPage
	}
	return &Charts{
		service:        service,
		recordsPerPage: recordsPerPage,
		logger:         logger,
	}
}

// parseDateRange reads the optional from/to query parameters. Both
// absent means all time.
func parseDateRange(c echo.Context) (*dashboard.DateRange, error) {
	fromRaw := c.QueryParam("from")
	toRaw := c.QueryParam("to")
	if fromRaw == "" && toRaw == "" {
		return nil, nil
	}

	// A half-open selection falls back to "since the beginning" or
	// "through today".
	r := &dashboard.DateRange{To: time.Now()}
	if fromRaw != "" {
		from, err := time.Parse(dateLayout, fromRaw)
		if err != nil {
			return nil, errors.ErrInvalidPayload("from must be formatted YYYY-MM-DD")
		}
		r.From = from
	}
	if toRaw != "" {
		to, err := time.Parse(dateLayout, toRaw)
		if err != nil {
			return nil, errors.ErrInvalidPayload("to must be formatted YYYY-MM-DD")
		}
		r.To = to
	}
	return r, nil
}

// buildSeries derives one filtered series with its average and color.
func buildSeries(key, label string, points []dashboard.SeriesPoint, r *dashboard.DateRange) dto.SeriesResponse {
	filtered := dashboard.FilterByRange(points, r)
	avg, hasData := dashboard.Average(filtered)
	return dto.SeriesResponse{
		Key:     key,
		Label:   label,
		Points:  filtered,
		Average: avg,
		HasData: hasData,
		Color:   dashboard.ColorForScore(avg),
	}
}

// GetCharts handles GET /api/dashboard/charts
// @Summary      Score trend charts
// @Description  Returns the overall trend and the six category trends, filtered by optional date range
// @Tags         Dashboard
// @Produce      json
// @Param        memberId  query  string  true   "Member ID"
// @Param        from      query  string  false  "Range start (YYYY-MM-DD, inclusive)"
// @Param        to        query  string  false  "Range end (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  calllog.ChartsResponse  "Derived chart series"
// @Failure      400  {object}  map[string]interface{}  "Member ID required or malformed date"
// @Failure      500  {object}  map[string]interface{}  "Failed to get call logs"
// @Router       /api/dashboard/charts [get]
func (h *Charts) GetCharts(c echo.Context) error {
	memberID := c.QueryParam("memberId")
	if memberID == "" {
		return handleError(h.logger, c, errors.ErrMemberIDRequired())
	}

	dateRange, err := parseDateRange(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	logs, err := h.service.ListCalls(c.Request().Context(), memberID)
	if err != nil {
		return handleError(h.logger, c, errors.ErrCallLogQueryFailed(err))
	}

	resp := dto.ChartsResponse{
		Overall: buildSeries("overall", presenter.OverallSeriesLabel, dashboard.OverallSeries(logs), dateRange),
	}
	for _, cat := range entities.ScoreCategories {
		resp.Categories = append(resp.Categories, buildSeries(
			string(cat),
			presenter.CategoryLabels[cat],
			dashboard.CategorySeries(logs, cat),
			dateRange,
		))
	}

	return c.JSON(http.StatusOK, resp)
}

// GetPage handles GET /api/dashboard/page
// @Summary      Paginated call records
// @Description  Returns one reverse-chronological window of call records with countdown labels
// @Tags         Dashboard
// @Produce      json
// @Param        memberId  query  string  true   "Member ID"
// @Param        page      query  int     false  "Page number, clamped to the valid range (default 1)"
// @Success      200  {object}  calllog.PageResponse  "Record window"
// @Failure      400  {object}  map[string]interface{}  "Member ID required"
// @Failure      500  {object}  map[string]interface{}  "Failed to get call logs"
// @Router       /api/dashboard/page [get]
func (h *Charts) GetPage(c echo.Context) error {
	memberID := c.QueryParam("memberId")
	if memberID == "" {
		return handleError(h.logger, c, errors.ErrMemberIDRequired())
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(h.logger, c, errors.ErrInvalidPayload("page must be an integer"))
		}
		page = parsed
	}

	logs, err := h.service.ListCalls(c.Request().Context(), memberID)
	if err != nil {
		return handleError(h.logger, c, errors.ErrCallLogQueryFailed(err))
	}

	total := len(logs)
	totalPages := dashboard.TotalPages(total, h.recordsPerPage)
	page = dashboard.ClampPage(page, totalPages)
	window := dashboard.PageWindow(logs, page, h.recordsPerPage)

	resp := dto.PageResponse{
		Page:           page,
		TotalPages:     totalPages,
		TotalRecords:   total,
		RecordsPerPage: h.recordsPerPage,
		Records:        make([]dto.PagedRecord, 0, len(window)),
	}
	for i, log := range window {
		resp.Records = append(resp.Records, dto.PagedRecord{
			Label:  dashboard.CallLabel(total, page, h.recordsPerPage, i),
			Record: presenter.ToCallLogResponse(log),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetTranscript handles GET /api/dashboard/transcript
// @Summary      Segmented call transcript
// @Description  Splits one call's flat transcript into attributed speaker turns
// @Tags         Dashboard
// @Produce      json
// @Param        id  query  int  true  "Call log ID"
// @Success      200  {object}  calllog.TranscriptResponse  "Attributed turns"
// @Failure      400  {object}  map[string]interface{}  "Call ID required"
// @Failure      404  {object}  map[string]interface{}  "Call log not found"
// @Failure      500  {object}  map[string]interface{}  "Failed to get call logs"
// @Router       /api/dashboard/transcript [get]
func (h *Charts) GetTranscript(c echo.Context) error {
	id, err := callIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	log, err := h.service.GetCall(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return handleError(h.logger, c, errors.ErrCallLogNotFound(c.QueryParam("id")))
		}
		return handleError(h.logger, c, errors.ErrCallLogQueryFailed(err))
	}

	turns := dashboard.ParseTranscript(log.CallTranscript)
	return c.JSON(http.StatusOK, presenter.ToTranscriptResponse(log, turns))
}
