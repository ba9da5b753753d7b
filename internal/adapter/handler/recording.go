package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avamus/visionboard/errors"
	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/infrastructure/storage"
)

// Recording handles call recording uploads.
type Recording struct {
	store  *storage.RecordingStore
	logger *zap.Logger
}

// NewRecordingHandler creates a new recording handler
func NewRecordingHandler(store *storage.RecordingStore, logger *zap.Logger) *Recording {
	return &Recording{
		store:  store,
		logger: logger,
	}
}

// Upload handles POST /api/dashboard/recordings
// @Summary      Upload a call recording
// @Description  Stores a recording file and returns the URL to persist in call_recording_url
// @Tags         Recordings
// @Accept       multipart/form-data
// @Produce      json
// @Param        memberId  formData  string  true  "Member ID"
// @Param        file      formData  file    true  "Recording file"
// @Success      200  {object}  calllog.UploadRecordingResponse  "Stored recording URL"
// @Failure      400  {object}  map[string]interface{}  "Member ID or file missing"
// @Failure      500  {object}  map[string]interface{}  "Failed to upload call recording"
// @Router       /api/dashboard/recordings [post]
func (h *Recording) Upload(c echo.Context) error {
	memberID := c.FormValue("memberId")
	if memberID == "" {
		return handleError(h.logger, c, errors.ErrMemberIDRequired())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handleError(h.logger, c, errors.ErrInvalidPayload("Recording file required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return handleError(h.logger, c, errors.ErrRecordingUploadFailed(err))
	}
	defer file.Close()

	objectName := storage.ObjectNameFor(memberID, fileHeader.Filename)
	url, err := h.store.UploadRecording(
		c.Request().Context(),
		objectName,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return handleError(h.logger, c, errors.ErrRecordingUploadFailed(err))
	}

	h.logger.Info("recording uploaded",
		zap.String("member_id", memberID),
		zap.String("object_name", objectName),
		zap.Int64("size", fileHeader.Size),
	)

	return c.JSON(http.StatusOK, dto.UploadRecordingResponse{
		ObjectName:   objectName,
		RecordingURL: url,
	})
}
