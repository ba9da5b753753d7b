package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ScoreCategory identifies one of the six evaluated skill categories.
type ScoreCategory string

const (
	ScoreEngagement           ScoreCategory = "engagement"
	ScoreObjectionHandling    ScoreCategory = "objection_handling"
	ScoreInformationGathering ScoreCategory = "information_gathering"
	ScoreProgramExplanation   ScoreCategory = "program_explanation"
	ScoreClosingSkills        ScoreCategory = "closing_skills"
	ScoreOverallEffectiveness ScoreCategory = "overall_effectiveness"
)

// ScoreCategories lists the six categories in display order.
var ScoreCategories = []ScoreCategory{
	ScoreEngagement,
	ScoreObjectionHandling,
	ScoreInformationGathering,
	ScoreProgramExplanation,
	ScoreClosingSkills,
	ScoreOverallEffectiveness,
}

// CallLog is one persisted call evaluation for a member.
// Score and feedback columns are nullable: an absent score renders as
// absent downstream, never as a zero that looks like a real evaluation.
type CallLog struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID   string `json:"member_id" gorm:"type:varchar(255);not null;index:idx_call_logs_member_date,priority:1"`
	CallNumber int    `json:"call_number" gorm:"not null"`

	AgentName       string    `json:"agent_name" gorm:"type:varchar(255)"`
	AgentPictureURL string    `json:"agent_picture_url" gorm:"type:text"`
	UserName        string    `json:"user_name" gorm:"type:varchar(255)"`
	UserPictureURL  string    `json:"user_picture_url" gorm:"type:text"`
	CallDate        time.Time `json:"call_date" gorm:"not null;index:idx_call_logs_member_date,priority:2"`

	CallRecordingURL string `json:"call_recording_url" gorm:"type:text"`
	CallDetails      string `json:"call_details" gorm:"type:text"`
	CallDuration     int    `json:"call_duration"`
	CallTranscript   string `json:"call_transcript" gorm:"type:text"`
	CallNotes        string `json:"call_notes" gorm:"type:text"`

	PowerMoment         string `json:"power_moment" gorm:"type:text"`
	LevelUp1            string `json:"level_up_1" gorm:"type:text"`
	LevelUp2            string `json:"level_up_2" gorm:"type:text"`
	LevelUp3            string `json:"level_up_3" gorm:"type:text"`
	StrongPoints        string `json:"strong_points" gorm:"type:text"`
	AreasForImprovement string `json:"areas_for_improvement" gorm:"type:text"`

	EngagementScore           *float64 `json:"engagement_score,omitempty"`
	ObjectionHandlingScore    *float64 `json:"objection_handling_score,omitempty"`
	InformationGatheringScore *float64 `json:"information_gathering_score,omitempty"`
	ProgramExplanationScore   *float64 `json:"program_explanation_score,omitempty"`
	ClosingSkillsScore        *float64 `json:"closing_skills_score,omitempty"`
	OverallEffectivenessScore *float64 `json:"overall_effectiveness_score,omitempty"`
	AverageSuccessScore       *float64 `json:"average_success_score,omitempty"`
	OverallPerformanceScore   *float64 `json:"overall_performance_score,omitempty"`

	EngagementFeedback           *string `json:"engagement_feedback,omitempty" gorm:"type:text"`
	ObjectionHandlingFeedback    *string `json:"objection_handling_feedback,omitempty" gorm:"type:text"`
	InformationGatheringFeedback *string `json:"information_gathering_feedback,omitempty" gorm:"type:text"`
	ProgramExplanationFeedback   *string `json:"program_explanation_feedback,omitempty" gorm:"type:text"`
	ClosingSkillsFeedback        *string `json:"closing_skills_feedback,omitempty" gorm:"type:text"`
	OverallEffectivenessFeedback *string `json:"overall_effectiveness_feedback,omitempty" gorm:"type:text"`

	EngagementDescription           *string `json:"engagement_description,omitempty" gorm:"type:text"`
	ObjectionHandlingDescription    *string `json:"objection_handling_description,omitempty" gorm:"type:text"`
	InformationGatheringDescription *string `json:"information_gathering_description,omitempty" gorm:"type:text"`
	ProgramExplanationDescription   *string `json:"program_explanation_description,omitempty" gorm:"type:text"`
	ClosingSkillsDescription        *string `json:"closing_skills_description,omitempty" gorm:"type:text"`
	OverallEffectivenessDescription *string `json:"overall_effectiveness_description,omitempty" gorm:"type:text"`

	// Raw output of the scoring engine that produced the flat columns.
	AnalysisPayload datatypes.JSON `json:"analysis_payload,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CallLog) TableName() string {
	return "call_logs"
}

// Score returns the score for a category and whether it is present.
func (c *CallLog) Score(cat ScoreCategory) (float64, bool) {
	var v *float64
	switch cat {
	case ScoreEngagement:
		v = c.EngagementScore
	case ScoreObjectionHandling:
		v = c.ObjectionHandlingScore
	case ScoreInformationGathering:
		v = c.InformationGatheringScore
	case ScoreProgramExplanation:
		v = c.ProgramExplanationScore
	case ScoreClosingSkills:
		v = c.ClosingSkillsScore
	case ScoreOverallEffectiveness:
		v = c.OverallEffectivenessScore
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// FeedbackFor returns the category feedback, or empty when absent.
func (c *CallLog) FeedbackFor(cat ScoreCategory) string {
	var v *string
	switch cat {
	case ScoreEngagement:
		v = c.EngagementFeedback
	case ScoreObjectionHandling:
		v = c.ObjectionHandlingFeedback
	case ScoreInformationGathering:
		v = c.InformationGatheringFeedback
	case ScoreProgramExplanation:
		v = c.ProgramExplanationFeedback
	case ScoreClosingSkills:
		v = c.ClosingSkillsFeedback
	case ScoreOverallEffectiveness:
		v = c.OverallEffectivenessFeedback
	}
	if v == nil {
		return ""
	}
	return *v
}

// DescriptionFor returns the category description, used as the fallback
// display when feedback is absent.
func (c *CallLog) DescriptionFor(cat ScoreCategory) string {
	var v *string
	switch cat {
	case ScoreEngagement:
		v = c.EngagementDescription
	case ScoreObjectionHandling:
		v = c.ObjectionHandlingDescription
	case ScoreInformationGathering:
		v = c.InformationGatheringDescription
	case ScoreProgramExplanation:
		v = c.ProgramExplanationDescription
	case ScoreClosingSkills:
		v = c.ClosingSkillsDescription
	case ScoreOverallEffectiveness:
		v = c.OverallEffectivenessDescription
	}
	if v == nil {
		return ""
	}
	return *v
}
