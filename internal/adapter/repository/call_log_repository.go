package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/domain/repositories"
)

// callLogRepository implements the CallLogRepository interface
type callLogRepository struct {
	db *gorm.DB
}

// NewCallLogRepository creates a new call log repository
func NewCallLogRepository(db *gorm.DB) repositories.CallLogRepository {
	return &callLogRepository{db: db}
}

// ListByMember retrieves all call logs for a member ordered by call date ascending
func (r *callLogRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.CallLog, error) {
	var logs []*entities.CallLog
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("call_date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByID retrieves one call log by id
func (r *callLogRepository) FindByID(ctx context.Context, id int64) (*entities.CallLog, error) {
	var log entities.CallLog
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Insert stores a new call log, assigning the next call_number for the
// member inside a transaction so concurrent inserts for the same member
// never reuse a number.
func (r *callLogRepository) Insert(ctx context.Context, log *entities.CallLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		err := tx.Model(&entities.CallLog{}).
			Where("member_id = ?", log.MemberID).
			Select("COALESCE(MAX(call_number), 0)").
			Row().Scan(&maxNumber)
		if err != nil {
			return err
		}

		log.CallNumber = maxNumber + 1
		return tx.Create(log).Error
	})
}

// UpdatePartial merges the patch into the stored row. Each COALESCE falls
// back to the current column value when the patch field is nil, so absent
// fields never overwrite stored data.
func (r *callLogRepository) UpdatePartial(ctx context.Context, id int64, patch repositories.CallLogPatch) (*entities.CallLog, error) {
	var updated entities.CallLog
	res := r.db.WithContext(ctx).Raw(`
		UPDATE call_logs
		SET
			engagement_score            = COALESCE(?, engagement_score),
			objection_handling_score    = COALESCE(?, objection_handling_score),
			information_gathering_score = COALESCE(?, information_gathering_score),
			program_explanation_score   = COALESCE(?, program_explanation_score),
			closing_skills_score        = COALESCE(?, closing_skills_score),
			overall_effectiveness_score = COALESCE(?, overall_effectiveness_score),
			average_success_score       = COALESCE(?, average_success_score),
			engagement_feedback            = COALESCE(?, engagement_feedback),
			objection_handling_feedback    = COALESCE(?, objection_handling_feedback),
			information_gathering_feedback = COALESCE(?, information_gathering_feedback),
			program_explanation_feedback   = COALESCE(?, program_explanation_feedback),
			closing_skills_feedback        = COALESCE(?, closing_skills_feedback),
			overall_effectiveness_feedback = COALESCE(?, overall_effectiveness_feedback),
			call_notes = COALESCE(?, call_notes),
			updated_at = NOW()
		WHERE id = ?
		RETURNING *`,
		patch.Scores.Engagement,
		patch.Scores.ObjectionHandling,
		patch.Scores.InformationGathering,
		patch.Scores.ProgramExplanation,
		patch.Scores.ClosingSkills,
		patch.Scores.OverallEffectiveness,
		patch.Scores.AverageSuccess,
		patch.Feedback.Engagement,
		patch.Feedback.ObjectionHandling,
		patch.Feedback.InformationGathering,
		patch.Feedback.ProgramExplanation,
		patch.Feedback.ClosingSkills,
		patch.Feedback.OverallEffectiveness,
		patch.CallNotes,
		id,
	).Scan(&updated)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &updated, nil
}

// Delete removes a call log by id and returns the removed row
func (r *callLogRepository) Delete(ctx context.Context, id int64) (*entities.CallLog, error) {
	var removed entities.CallLog
	res := r.db.WithContext(ctx).
		Raw(`DELETE FROM call_logs WHERE id = ? RETURNING *`, id).
		Scan(&removed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &removed, nil
}
