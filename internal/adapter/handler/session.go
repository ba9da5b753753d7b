package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avamus/visionboard/errors"
	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/adapter/presenter"
	calllogUsecase "github.com/avamus/visionboard/internal/usecase/calllog"
	"github.com/avamus/visionboard/internal/usecase/dashboard"
	"github.com/avamus/visionboard/internal/usecase/viewstate"
)

// Session handles the dashboard view-state endpoints: expanded cards,
// note drafts and the transient saved indicator.
type Session struct {
	manager        *viewstate.Manager
	service        calllogUsecase.Service
	recordsPerPage int
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *viewstate.Manager, service calllogUsecase.Service, recordsPerPage int, logger *zap.Logger) *Session {
	if recordsPerPage <= 0 {
		recordsPerPage = dashboard.DefaultRecordsPerPage
	}
	return &Session{
		manager:        manager,
		service:        service,
		recordsPerPage: recordsPerPage,
		logger:         logger,
	}
}

// session resolves the :id path parameter to a live session.
func (h *Session) session(c echo.Context) (*viewstate.Session, error) {
	id := c.Param("id")
	sess, ok := h.manager.Get(id)
	if !ok {
		return nil, errors.ErrSessionNotFound(id)
	}
	return sess, nil
}

// recordIDParam reads and parses the :recordId path parameter.
func recordIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("recordId"), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidPayload("Record ID must be an integer")
	}
	return id, nil
}

// CreateSession handles POST /api/dashboard/sessions
// @Summary      Open a dashboard session
// @Description  Snapshots a member's call list and opens view state over it
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        request  body      calllog.CreateSessionRequest  true  "Member ID"
// @Success      201  {object}  calllog.SessionResponse  "Session opened"
// @Failure      400  {object}  map[string]interface{}  "Member ID required"
// @Failure      500  {object}  map[string]interface{}  "Failed to get call logs"
// @Router       /api/dashboard/sessions [post]
func (h *Session) CreateSession(c echo.Context) error {
	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(h.logger, c, errors.ErrMemberIDRequired())
	}

	logs, err := h.service.ListCalls(c.Request().Context(), req.MemberID)
	if err != nil {
		return handleError(h.logger, c, errors.ErrCallLogQueryFailed(err))
	}

	sess := h.manager.Create(req.MemberID, logs)
	h.logger.Info("dashboard session opened",
		zap.String("session_id", sess.ID),
		zap.String("member_id", req.MemberID),
		zap.Int("records", len(logs)),
	)

	return c.JSON(http.StatusCreated, dto.SessionResponse{
		SessionID:    sess.ID,
		MemberID:     sess.MemberID,
		TotalRecords: len(logs),
		TotalPages:   dashboard.TotalPages(len(logs), h.recordsPerPage),
	})
}

// GetState handles GET /api/dashboard/sessions/:id
// @Summary      Session page state
// @Description  Returns one reverse-chronological page with per-record view state
// @Tags         Sessions
// @Produce      json
// @Param        id    path   string  true   "Session ID"
// @Param        page  query  int     false  "Page number, clamped to the valid range (default 1)"
// @Success      200  {object}  calllog.SessionStateResponse  "Page state"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /api/dashboard/sessions/{id} [get]
func (h *Session) GetState(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(h.logger, c, errors.ErrInvalidPayload("page must be an integer"))
		}
		page = parsed
	}

	logs := sess.Records()
	total := len(logs)
	totalPages := dashboard.TotalPages(total, h.recordsPerPage)
	page = dashboard.ClampPage(page, totalPages)
	window := dashboard.PageWindow(logs, page, h.recordsPerPage)

	resp := dto.SessionStateResponse{
		SessionID:      sess.ID,
		Page:           page,
		TotalPages:     totalPages,
		TotalRecords:   total,
		RecordsPerPage: h.recordsPerPage,
		Records:        make([]dto.SessionRecordState, 0, len(window)),
	}
	for i, log := range window {
		resp.Records = append(resp.Records, dto.SessionRecordState{
			Label:    dashboard.CallLabel(total, page, h.recordsPerPage, i),
			Record:   presenter.ToCallLogResponse(log),
			Expanded: sess.IsExpanded(log.ID),
			Notes:    sess.NotesValue(log.ID),
			Saved:    sess.Saved(log.ID),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// ToggleExpanded handles POST /api/dashboard/sessions/:id/records/:recordId/toggle
// @Summary      Toggle a record card
// @Description  Flips the expanded state of one record, independent of all others
// @Tags         Sessions
// @Produce      json
// @Param        id        path  string  true  "Session ID"
// @Param        recordId  path  int     true  "Record ID"
// @Success      200  {object}  calllog.RecordState  "Record state"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /api/dashboard/sessions/{id}/records/{recordId}/toggle [post]
func (h *Session) ToggleExpanded(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	recordID, err := recordIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	expanded := sess.ToggleExpanded(recordID)
	return c.JSON(http.StatusOK, dto.RecordState{
		ID:       recordID,
		Expanded: expanded,
		Notes:    sess.NotesValue(recordID),
		Saved:    sess.Saved(recordID),
	})
}

// SetDraft handles PUT /api/dashboard/sessions/:id/records/:recordId/notes
// @Summary      Stage a note draft
// @Description  Overlays in-progress note text on one record without persisting it
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id        path  string                   true  "Session ID"
// @Param        recordId  path  int                      true  "Record ID"
// @Param        request   body  calllog.SetDraftRequest  true  "Draft text"
// @Success      200  {object}  calllog.RecordState  "Record state"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /api/dashboard/sessions/{id}/records/{recordId}/notes [put]
func (h *Session) SetDraft(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	recordID, err := recordIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req dto.SetDraftRequest
	if err := c.Bind(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload(err.Error()))
	}

	sess.SetDraft(recordID, req.Text)
	return c.JSON(http.StatusOK, dto.RecordState{
		ID:       recordID,
		Expanded: sess.IsExpanded(recordID),
		Notes:    sess.NotesValue(recordID),
		Saved:    sess.Saved(recordID),
	})
}

// SaveNotes handles POST /api/dashboard/sessions/:id/records/:recordId/notes/save
// @Summary      Persist a note draft
// @Description  Writes the staged draft to the store; on success the saved indicator lights for a few seconds
// @Tags         Sessions
// @Produce      json
// @Param        id        path  string  true  "Session ID"
// @Param        recordId  path  int     true  "Record ID"
// @Success      200  {object}  calllog.RecordState  "Record state after save"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Failure      500  {object}  map[string]interface{}  "Failed to update call log"
// @Router       /api/dashboard/sessions/{id}/records/{recordId}/notes/save [post]
func (h *Session) SaveNotes(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}
	recordID, err := recordIDParam(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	if err := sess.SaveNotes(c.Request().Context(), h.service, recordID); err != nil {
		return handleError(h.logger, c, errors.ErrCallLogUpdateFailed(err))
	}

	return c.JSON(http.StatusOK, dto.RecordState{
		ID:       recordID,
		Expanded: sess.IsExpanded(recordID),
		Notes:    sess.NotesValue(recordID),
		Saved:    sess.Saved(recordID),
	})
}

// OpenCall handles POST /api/dashboard/sessions/:id/open
// @Summary      Deep-link a chart point
// @Description  Resolves a call number to its page, expanding the record card
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id       path  string                   true  "Session ID"
// @Param        request  body  calllog.OpenCallRequest  true  "Call number (1-based)"
// @Success      200  {object}  calllog.OpenCallResponse  "Target page and record"
// @Failure      400  {object}  map[string]interface{}  "Call number out of range"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /api/dashboard/sessions/{id}/open [post]
func (h *Session) OpenCall(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return handleError(h.logger, c, err)
	}

	var req dto.OpenCallRequest
	if err := c.Bind(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload("call_number must be at least 1"))
	}

	records := sess.Records()
	if req.CallNumber > len(records) {
		return handleError(h.logger, c, errors.ErrInvalidPayload("call_number exceeds record count"))
	}

	page := sess.OpenCall(req.CallNumber, h.recordsPerPage)
	return c.JSON(http.StatusOK, dto.OpenCallResponse{
		Page:   page,
		CallID: records[req.CallNumber-1].ID,
	})
}

// CloseSession handles DELETE /api/dashboard/sessions/:id
// @Summary      Close a dashboard session
// @Description  Discards the session's view state; unsaved drafts are lost
// @Tags         Sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  calllog.DeleteResponse  "Session closed"
// @Router       /api/dashboard/sessions/{id} [delete]
func (h *Session) CloseSession(c echo.Context) error {
	h.manager.Delete(c.Param("id"))
	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
