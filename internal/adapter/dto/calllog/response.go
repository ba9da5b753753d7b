package calllog

import (
	"time"

	"github.com/avamus/visionboard/internal/usecase/dashboard"
)

// CallLogResponse is one call record as served to the dashboard.
type CallLogResponse struct {
	ID         int64  `json:"id"`
	MemberID   string `json:"member_id"`
	CallNumber int    `json:"call_number"`

	AgentName       string    `json:"agent_name"`
	AgentPictureURL string    `json:"agent_picture_url"`
	UserName        string    `json:"user_name"`
	UserPictureURL  string    `json:"user_picture_url"`
	CallDate        time.Time `json:"call_date"`

	CallRecordingURL string `json:"call_recording_url"`
	CallDetails      string `json:"call_details"`
	CallDuration     int    `json:"call_duration"`
	CallTranscript   string `json:"call_transcript"`
	CallNotes        string `json:"call_notes"`

	PowerMoment         string `json:"power_moment"`
	LevelUp1            string `json:"level_up_1"`
	LevelUp2            string `json:"level_up_2"`
	LevelUp3            string `json:"level_up_3"`
	StrongPoints        string `json:"strong_points"`
	AreasForImprovement string `json:"areas_for_improvement"`

	Scores       Scores            `json:"scores"`
	Feedback     Feedback          `json:"feedback"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
}

// DeleteResponse is the body of a successful DELETE.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// SeriesResponse is one derived chart series with its filtered view.
type SeriesResponse struct {
	Key     string                  `json:"key"`
	Label   string                  `json:"label"`
	Points  []dashboard.SeriesPoint `json:"points"`
	Average float64                 `json:"average"`
	HasData bool                    `json:"has_data"`
	Color   string                  `json:"color"`
}

// ChartsResponse bundles the overall trend and the six category trends.
type ChartsResponse struct {
	Overall    SeriesResponse   `json:"overall"`
	Categories []SeriesResponse `json:"categories"`
}

// PagedRecord is a record in a display window with its countdown label.
type PagedRecord struct {
	Label  int              `json:"label"`
	Record *CallLogResponse `json:"record"`
}

// PageResponse is one reverse-chronological window of call records.
type PageResponse struct {
	Page           int           `json:"page"`
	TotalPages     int           `json:"total_pages"`
	TotalRecords   int           `json:"total_records"`
	RecordsPerPage int           `json:"records_per_page"`
	Records        []PagedRecord `json:"records"`
}

// TranscriptTurnResponse is one attributed transcript turn.
type TranscriptTurnResponse struct {
	Role              string `json:"role"`
	SpeakerName       string `json:"speaker_name"`
	SpeakerPictureURL string `json:"speaker_picture_url"`
	Message           string `json:"message"`
}

// TranscriptResponse is the segmented transcript of one call.
type TranscriptResponse struct {
	CallID int64                    `json:"call_id"`
	Turns  []TranscriptTurnResponse `json:"turns"`
}

// SessionResponse identifies a dashboard session.
type SessionResponse struct {
	SessionID    string `json:"session_id"`
	MemberID     string `json:"member_id"`
	TotalRecords int    `json:"total_records"`
	TotalPages   int    `json:"total_pages"`
}

// SessionRecordState is one record in a session page window together
// with its view state. Notes is the draft when one exists, otherwise
// the last saved value.
type SessionRecordState struct {
	Label    int              `json:"label"`
	Record   *CallLogResponse `json:"record"`
	Expanded bool             `json:"expanded"`
	Notes    string           `json:"notes"`
	Saved    bool             `json:"saved"`
}

// SessionStateResponse is one page of a session with per-record state.
type SessionStateResponse struct {
	SessionID      string               `json:"session_id"`
	Page           int                  `json:"page"`
	TotalPages     int                  `json:"total_pages"`
	TotalRecords   int                  `json:"total_records"`
	RecordsPerPage int                  `json:"records_per_page"`
	Records        []SessionRecordState `json:"records"`
}

// RecordState is the session view state of one record.
type RecordState struct {
	ID       int64  `json:"id"`
	Expanded bool   `json:"expanded"`
	Notes    string `json:"notes"`
	Saved    bool   `json:"saved"`
}

// OpenCallResponse is the deep-link target of a chart point click.
type OpenCallResponse struct {
	Page   int   `json:"page"`
	CallID int64 `json:"call_id"`
}

// UploadRecordingResponse carries the stored recording URL.
type UploadRecordingResponse struct {
	ObjectName   string `json:"object_name"`
	RecordingURL string `json:"recording_url"`
}
