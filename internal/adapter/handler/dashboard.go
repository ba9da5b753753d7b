package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avamus/visionboard/errors"
	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/adapter/presenter"
	calllogUsecase "github.com/avamus/visionboard/internal/usecase/calllog"
)

// Dashboard handles the call log CRUD endpoints
type Dashboard struct {
	service calllogUsecase.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service calllogUsecase.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		service: service,
		logger:  logger,
	}
}

// callIDParam reads and parses the id query parameter.
func callIDParam(c echo.Context) (int64, error) {
	raw := c.QueryParam("id")
	if raw == "" {
		return 0, errors.ErrCallIDRequired()
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidPayload("Call ID must be an integer")
	}
	return id, nil
}

// ListCalls handles GET /api/dashboard
// @Summary      List a member's call logs
// @Description  Returns every call log of a member ordered by call date ascending
// @Tags         Dashboard
// @Produce      json
// @Param        memberId  query     string  true  "Member ID"
// @Success      200  {array}   calllog.CallLogResponse  "Call logs"
// @Failure      400  {object}  map[string]interface{}  "Member ID required"
// @Failure      500  {object}  map[string]interface{}  "Failed to get call logs"
// @Router       /api/dashboard [get]
func (h *Dashboard) ListCalls(c echo.Context) error {
	memberID := c.QueryParam("memberId")
	if memberID == "" {
		return handleError(h.logger, c, errors.ErrMemberIDRequired())
	}

	logs, err := h.service.ListCalls(c.Request().Context(), memberID)
	if err != nil {
		return handleError(h.logger, c, errors.ErrCallLogQueryFailed(err))
	}

	return c.JSON(http.StatusOK, presenter.ToCallLogResponses(logs))
}

// AddCall handles POST /api/dashboard
// @Summary      Add a call log
// @Description  Stores a new call evaluation; the store assigns the member's next call number
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      calllog.AddCallRequest  true  "Member ID and call data"
// @Success      200  {object}  calllog.CallLogResponse  "Inserted call log"
// @Failure      400  {object}  map[string]interface{}  "Missing member ID or call data"
// @Failure      500  {object}  map[string]interface{}  "Failed to add call log"
// @Router       /api/dashboard [post]
func (h *Dashboard) AddCall(c echo.Context) error {
	var req dto.AddCallRequest
	if err := c.Bind(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		if req.MemberID == "" {
			return handleError(h.logger, c, errors.ErrMemberIDRequired())
		}
		return handleError(h.logger, c, errors.ErrInvalidPayload("Member ID and call data required"))
	}

	input := presenter.ToNewCallInput(req.CallData)
	inserted, err := h.service.AddCall(c.Request().Context(), req.MemberID, input)
	if err != nil {
		return handleError(h.logger, c, errors.ErrCallLogInsertFailed(err))
	}

	return c.JSON(http.StatusOK, presenter.ToCallLogResponse(inserted))
}

// UpdateCall handles PUT /api/dashboard
// @Summary      Update a call log
// @Description  Merges a partial patch into one call log; absent fields keep stored values
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        id       query     int                        true  "Call log ID"
// @Param        request  body      calllog.UpdateCallRequest  true  "Partial patch"
// @Success      200  {object}  calllog.CallLogResponse  "Updated call log"
// @Failure      400  {object}  map[string]interface{}  "Call ID required"
// @Failure      404  {object}  map[string]interface{}  "Call log not found"
// @Failure      500  {object}  map[string]interface{}  "Failed to update call log"
// @Router       /api/dashboard [put]
func (h *Dashboard) UpdateCall(c echo.Context) error {
	id, err := callIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req dto.UpdateCallRequest
	if err := c.Bind(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload(err.Error()))
	}

	patch := presenter.ToCallLogPatch(&req)
	updated, err := h.service.UpdateCall(c.Request().Context(), id, patch)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return handleError(h.logger, c, errors.ErrCallLogNotFound(c.QueryParam("id")))
		}
		return handleError(h.logger, c, errors.ErrCallLogUpdateFailed(err))
	}

	return c.JSON(http.StatusOK, presenter.ToCallLogResponse(updated))
}

// DeleteCall handles DELETE /api/dashboard
// @Summary      Delete a call log
// @Description  Removes one call log; remaining calls keep their call numbers
// @Tags         Dashboard
// @Produce      json
// @Param        id  query  int  true  "Call log ID"
// @Success      200  {object}  calllog.DeleteResponse  "Deleted"
// @Failure      400  {object}  map[string]interface{}  "Call ID required"
// @Failure      404  {object}  map[string]interface{}  "Call log not found"
// @Failure      500  {object}  map[string]interface{}  "Failed to delete call log"
// @Router       /api/dashboard [delete]
func (h *Dashboard) DeleteCall(c echo.Context) error {
	id, err := callIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := h.service.DeleteCall(c.Request().Context(), id); err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return handleError(h.logger, c, errors.ErrCallLogNotFound(c.QueryParam("id")))
		}
		return handleError(h.logger, c, errors.ErrCallLogDeleteFailed(err))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
