package calllog

import (
	"encoding/json"
	"time"
)

// Scores is the nested score payload of a call record. Nil fields are
// absent: on update they keep the stored value.
type Scores struct {
	Engagement           *float64 `json:"engagement,omitempty"`
	ObjectionHandling    *float64 `json:"objection_handling,omitempty"`
	InformationGathering *float64 `json:"information_gathering,omitempty"`
	ProgramExplanation   *float64 `json:"program_explanation,omitempty"`
	ClosingSkills        *float64 `json:"closing_skills,omitempty"`
	OverallEffectiveness *float64 `json:"overall_effectiveness,omitempty"`
	OverallPerformance   *float64 `json:"overall_performance,omitempty"`
	AverageSuccess       *float64 `json:"average_success,omitempty"`
}

// Feedback is the nested per-category feedback payload.
type Feedback struct {
	Engagement           *string `json:"engagement,omitempty"`
	ObjectionHandling    *string `json:"objection_handling,omitempty"`
	InformationGathering *string `json:"information_gathering,omitempty"`
	ProgramExplanation   *string `json:"program_explanation,omitempty"`
	ClosingSkills        *string `json:"closing_skills,omitempty"`
	OverallEffectiveness *string `json:"overall_effectiveness,omitempty"`
}

// CallData is the call payload of an insert request.
type CallData struct {
	AgentName       string     `json:"agent_name"`
	AgentPictureURL string     `json:"agent_picture_url"`
	UserName        string     `json:"user_name"`
	UserPictureURL  string     `json:"user_picture_url"`
	CallDate        *time.Time `json:"call_date,omitempty"`

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

	Scores   Scores   `json:"scores"`
	Feedback Feedback `json:"feedback"`

	AnalysisPayload json.RawMessage `json:"analysis_payload,omitempty"`
}

// AddCallRequest is the body of POST /api/dashboard.
type AddCallRequest struct {
	MemberID string    `json:"memberId" validate:"required"`
	CallData *CallData `json:"callData" validate:"required"`
}

// UpdateCallRequest is the partial body of PUT /api/dashboard. Absent
// fields keep the stored values.
type UpdateCallRequest struct {
	Scores    Scores   `json:"scores"`
	Feedback  Feedback `json:"feedback"`
	CallNotes *string  `json:"call_notes,omitempty"`
}

// SetDraftRequest carries in-progress note text for a session record.
type SetDraftRequest struct {
	Text string `json:"text"`
}

// OpenCallRequest deep-links a chart point to its record card.
type OpenCallRequest struct {
	CallNumber int `json:"call_number" validate:"required,min=1"`
}

// CreateSessionRequest opens a dashboard session for a member.
type CreateSessionRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}
