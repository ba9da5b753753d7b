package repositories

import (
	"context"

	"github.com/avamus/visionboard/internal/domain/entities"
)

// ScorePatch carries the updatable score columns. Nil fields keep the
// stored value (null-coalescing merge).
type ScorePatch struct {
	Engagement           *float64 `json:"engagement,omitempty"`
	ObjectionHandling    *float64 `json:"objection_handling,omitempty"`
	InformationGathering *float64 `json:"information_gathering,omitempty"`
	ProgramExplanation   *float64 `json:"program_explanation,omitempty"`
	ClosingSkills        *float64 `json:"closing_skills,omitempty"`
	OverallEffectiveness *float64 `json:"overall_effectiveness,omitempty"`
	AverageSuccess       *float64 `json:"average_success,omitempty"`
}

// FeedbackPatch carries the updatable feedback columns.
type FeedbackPatch struct {
	Engagement           *string `json:"engagement,omitempty"`
	ObjectionHandling    *string `json:"objection_handling,omitempty"`
	InformationGathering *string `json:"information_gathering,omitempty"`
	ProgramExplanation   *string `json:"program_explanation,omitempty"`
	ClosingSkills        *string `json:"closing_skills,omitempty"`
	OverallEffectiveness *string `json:"overall_effectiveness,omitempty"`
}

// CallLogPatch is a partial update of a call log. Every field is
// independently optional; each nil field leaves the stored column
// unchanged, so applying the same patch twice is idempotent per field.
type CallLogPatch struct {
	Scores    ScorePatch    `json:"scores"`
	Feedback  FeedbackPatch `json:"feedback"`
	CallNotes *string       `json:"call_notes,omitempty"`
}

// CallLogRepository defines the interface for call log data access
type CallLogRepository interface {
	// ListByMember retrieves all call logs for a member ordered by
	// call_date ascending.
	ListByMember(ctx context.Context, memberID string) ([]*entities.CallLog, error)

	// FindByID retrieves one call log by id. Returns
	// gorm.ErrRecordNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*entities.CallLog, error)

	// Insert stores a new call log, assigning the next sequential
	// call_number for the member (max existing + 1, starting at 1).
	Insert(ctx context.Context, log *entities.CallLog) error

	// UpdatePartial merges the patch into the stored row via per-field
	// null-coalescing and returns the updated row. Returns
	// gorm.ErrRecordNotFound when no row matches id.
	UpdatePartial(ctx context.Context, id int64, patch CallLogPatch) (*entities.CallLog, error)

	// Delete removes a call log by id and returns the removed row.
	// Returns gorm.ErrRecordNotFound when no row matches.
	Delete(ctx context.Context, id int64) (*entities.CallLog, error)
}
