package calllog

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/domain/repositories"
)

// CallListCache caches a member's full call list between reads. A miss
// is never an error: the store is always the source of truth.
type CallListCache interface {
	GetCalls(ctx context.Context, memberID string) ([]*entities.CallLog, bool)
	SetCalls(ctx context.Context, memberID string, logs []*entities.CallLog)
	Invalidate(ctx context.Context, memberID string)
}

// NewCallInput carries everything the scoring pipeline knows about one
// evaluated call. The store assigns id and call_number.
type NewCallInput struct {
	AgentName       string
	AgentPictureURL string
	UserName        string
	UserPictureURL  string
	CallDate        time.Time

	CallRecordingURL string
	CallDetails      string
	CallDuration     int
	CallTranscript   string
	CallNotes        string

	PowerMoment         string
	LevelUp1            string
	LevelUp2            string
	LevelUp3            string
	StrongPoints        string
	AreasForImprovement string

	Scores   repositories.ScorePatch
	Feedback repositories.FeedbackPatch

	AnalysisPayload datatypes.JSON
}

// Service defines the interface for the call log use case
type Service interface {
	// ListCalls retrieves a member's calls ordered by call_date ascending.
	ListCalls(ctx context.Context, memberID string) ([]*entities.CallLog, error)

	// GetCall retrieves one call log by id.
	GetCall(ctx context.Context, id int64) (*entities.CallLog, error)

	// AddCall stores a new call evaluation; the store assigns id and the
	// next sequential call_number for the member.
	AddCall(ctx context.Context, memberID string, input NewCallInput) (*entities.CallLog, error)

	// UpdateCall merges a partial patch into one call log.
	UpdateCall(ctx context.Context, id int64, patch repositories.CallLogPatch) (*entities.CallLog, error)

	// SaveNotes updates exactly the call_notes field of one call log.
	SaveNotes(ctx context.Context, id int64, notes string) (*entities.CallLog, error)

	// DeleteCall removes a call log.
	DeleteCall(ctx context.Context, id int64) error
}

// Ensure CallLogService implements Service interface
var _ Service = (*CallLogService)(nil)

// CallLogService orchestrates the call log repository and cache.
type CallLogService struct {
	repo   repositories.CallLogRepository
	cache  CallListCache
	logger *zap.Logger
}

// NewCallLogService creates a new call log service. cache may be nil.
func NewCallLogService(repo repositories.CallLogRepository, cache CallListCache, logger *zap.Logger) *CallLogService {
	return &CallLogService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListCalls retrieves a member's calls, serving from cache when the
// list has not changed since the last read.
func (s *CallLogService) ListCalls(ctx context.Context, memberID string) ([]*entities.CallLog, error) {
	if s.cache != nil {
		if logs, ok := s.cache.GetCalls(ctx, memberID); ok {
			return logs, nil
		}
	}

	logs, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetCalls(ctx, memberID, logs)
	}
	return logs, nil
}

// GetCall retrieves one call log by id.
func (s *CallLogService) GetCall(ctx context.Context, id int64) (*entities.CallLog, error) {
	return s.repo.FindByID(ctx, id)
}

// AddCall stores a new call evaluation for a member.
func (s *CallLogService) AddCall(ctx context.Context, memberID string, input NewCallInput) (*entities.CallLog, error) {
	log := &entities.CallLog{
		MemberID:        memberID,
		AgentName:       input.AgentName,
		AgentPictureURL: input.AgentPictureURL,
		UserName:        input.UserName,
		UserPictureURL:  input.UserPictureURL,
		CallDate:        input.CallDate,

		CallRecordingURL: input.CallRecordingURL,
		CallDetails:      input.CallDetails,
		CallDuration:     input.CallDuration,
		CallTranscript:   input.CallTranscript,
		CallNotes:        input.CallNotes,

		PowerMoment:         input.PowerMoment,
		LevelUp1:            input.LevelUp1,
		LevelUp2:            input.LevelUp2,
		LevelUp3:            input.LevelUp3,
		StrongPoints:        input.StrongPoints,
		AreasForImprovement: input.AreasForImprovement,

		EngagementScore:           input.Scores.Engagement,
		ObjectionHandlingScore:    input.Scores.ObjectionHandling,
		InformationGatheringScore: input.Scores.InformationGathering,
		ProgramExplanationScore:   input.Scores.ProgramExplanation,
		ClosingSkillsScore:        input.Scores.ClosingSkills,
		OverallEffectivenessScore: input.Scores.OverallEffectiveness,
		AverageSuccessScore:       input.Scores.AverageSuccess,

		EngagementFeedback:           input.Feedback.Engagement,
		ObjectionHandlingFeedback:    input.Feedback.ObjectionHandling,
		InformationGatheringFeedback: input.Feedback.InformationGathering,
		ProgramExplanationFeedback:   input.Feedback.ProgramExplanation,
		ClosingSkillsFeedback:        input.Feedback.ClosingSkills,
		OverallEffectivenessFeedback: input.Feedback.OverallEffectiveness,

		AnalysisPayload: input.AnalysisPayload,
	}

	if log.CallDate.IsZero() {
		log.CallDate = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("call log added",
		zap.String("member_id", memberID),
		zap.Int64("call_id", log.ID),
		zap.Int("call_number", log.CallNumber),
	)

	if s.cache != nil {
		s.cache.Invalidate(ctx, memberID)
	}
	return log, nil
}

// UpdateCall merges a partial patch into one call log.
func (s *CallLogService) UpdateCall(ctx context.Context, id int64, patch repositories.CallLogPatch) (*entities.CallLog, error) {
	updated, err := s.repo.UpdatePartial(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, updated.MemberID)
	}
	return updated, nil
}

// SaveNotes updates exactly the call_notes field. All other columns keep
// their stored values through the null-coalescing merge.
func (s *CallLogService) SaveNotes(ctx context.Context, id int64, notes string) (*entities.CallLog, error) {
	return s.UpdateCall(ctx, id, repositories.CallLogPatch{CallNotes: &notes})
}

// DeleteCall removes a call log. Remaining calls keep their call_number:
// the sequence is never renumbered after a delete.
func (s *CallLogService) DeleteCall(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("call log deleted",
		zap.String("member_id", removed.MemberID),
		zap.Int64("call_id", id),
	)

	if s.cache != nil {
		s.cache.Invalidate(ctx, removed.MemberID)
	}
	return nil
}
