package presenter

import (
	"gorm.io/datatypes"

	dto "github.com/avamus/visionboard/internal/adapter/dto/calllog"
	"github.com/avamus/visionboard/internal/domain/entities"
	"github.com/avamus/visionboard/internal/domain/repositories"
	"github.com/avamus/visionboard/internal/usecase/calllog"
	"github.com/avamus/visionboard/internal/usecase/dashboard"
)

// CategoryLabels maps each score category to its display label.
var CategoryLabels = map[entities.ScoreCategory]string{
	entities.ScoreEngagement:           "Engagement",
	entities.ScoreObjectionHandling:    "Objection Handling",
	entities.ScoreInformationGathering: "Information Gathering",
	entities.ScoreProgramExplanation:   "Program Explanation",
	entities.ScoreClosingSkills:        "Closing Skills",
	entities.ScoreOverallEffectiveness: "Overall Effectiveness",
}

// OverallSeriesLabel is the display label of the overall trend chart.
const OverallSeriesLabel = "Average Success"

// ToCallLogResponse converts a CallLog entity to its API shape.
func ToCallLogResponse(l *entities.CallLog) *dto.CallLogResponse {
	if l == nil {
		return nil
	}

	resp := &dto.CallLogResponse{
		ID:         l.ID,
		MemberID:   l.MemberID,
		CallNumber: l.CallNumber,

		AgentName:       l.AgentName,
		AgentPictureURL: l.AgentPictureURL,
		UserName:        l.UserName,
		UserPictureURL:  l.UserPictureURL,
		CallDate:        l.CallDate,

		CallRecordingURL: l.CallRecordingURL,
		CallDetails:      l.CallDetails,
		CallDuration:     l.CallDuration,
		CallTranscript:   l.CallTranscript,
		CallNotes:        l.CallNotes,

		PowerMoment:         l.PowerMoment,
		LevelUp1:            l.LevelUp1,
		LevelUp2:            l.LevelUp2,
		LevelUp3:            l.LevelUp3,
		StrongPoints:        l.StrongPoints,
		AreasForImprovement: l.AreasForImprovement,

		Scores: dto.Scores{
			Engagement:           l.EngagementScore,
			ObjectionHandling:    l.ObjectionHandlingScore,
			InformationGathering: l.InformationGatheringScore,
			ProgramExplanation:   l.ProgramExplanationScore,
			ClosingSkills:        l.ClosingSkillsScore,
			OverallEffectiveness: l.OverallEffectivenessScore,
			OverallPerformance:   l.OverallPerformanceScore,
			AverageSuccess:       l.AverageSuccessScore,
		},
		Feedback: dto.Feedback{
			Engagement:           l.EngagementFeedback,
			ObjectionHandling:    l.ObjectionHandlingFeedback,
			InformationGathering: l.InformationGatheringFeedback,
			ProgramExplanation:   l.ProgramExplanationFeedback,
			ClosingSkills:        l.ClosingSkillsFeedback,
			OverallEffectiveness: l.OverallEffectivenessFeedback,
		},
	}

	// Descriptions are the fallback display when feedback is absent.
	descriptions := make(map[string]string)
	for _, cat := range entities.ScoreCategories {
		if d := l.DescriptionFor(cat); d != "" {
			descriptions[string(cat)] = d
		}
	}
	if len(descriptions) > 0 {
		resp.Descriptions = descriptions
	}

	return resp
}

// ToCallLogResponses converts a call list, preserving order.
func ToCallLogResponses(logs []*entities.CallLog) []*dto.CallLogResponse {
	out := make([]*dto.CallLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToCallLogResponse(l))
	}
	return out
}

// ToNewCallInput converts an insert payload to the usecase input.
func ToNewCallInput(d *dto.CallData) calllog.NewCallInput {
	input := calllog.NewCallInput{
		AgentName:       d.AgentName,
		AgentPictureURL: d.AgentPictureURL,
		UserName:        d.UserName,
		UserPictureURL:  d.UserPictureURL,

		CallRecordingURL: d.CallRecordingURL,
		CallDetails:      d.CallDetails,
		CallDuration:     d.CallDuration,
		CallTranscript:   d.CallTranscript,
		CallNotes:        d.CallNotes,

		PowerMoment:         d.PowerMoment,
		LevelUp1:            d.LevelUp1,
		LevelUp2:            d.LevelUp2,
		LevelUp3:            d.LevelUp3,
		StrongPoints:        d.StrongPoints,
		AreasForImprovement: d.AreasForImprovement,

		Scores:   toScorePatch(d.Scores),
		Feedback: toFeedbackPatch(d.Feedback),
	}
	if d.CallDate != nil {
		input.CallDate = *d.CallDate
	}
	if len(d.AnalysisPayload) > 0 {
		input.AnalysisPayload = datatypes.JSON(d.AnalysisPayload)
	}
	return input
}

// ToCallLogPatch converts an update payload to the repository patch.
func ToCallLogPatch(req *dto.UpdateCallRequest) repositories.CallLogPatch {
	return repositories.CallLogPatch{
		Scores:    toScorePatch(req.Scores),
		Feedback:  toFeedbackPatch(req.Feedback),
		CallNotes: req.CallNotes,
	}
}

func toScorePatch(s dto.Scores) repositories.ScorePatch {
	return repositories.ScorePatch{
		Engagement:           s.Engagement,
		ObjectionHandling:    s.ObjectionHandling,
		InformationGathering: s.InformationGathering,
		ProgramExplanation:   s.ProgramExplanation,
		ClosingSkills:        s.ClosingSkills,
		OverallEffectiveness: s.OverallEffectiveness,
		AverageSuccess:       s.AverageSuccess,
	}
}

func toFeedbackPatch(f dto.Feedback) repositories.FeedbackPatch {
	return repositories.FeedbackPatch{
		Engagement:           f.Engagement,
		ObjectionHandling:    f.ObjectionHandling,
		InformationGathering: f.InformationGathering,
		ProgramExplanation:   f.ProgramExplanation,
		ClosingSkills:        f.ClosingSkills,
		OverallEffectiveness: f.OverallEffectiveness,
	}
}

// ToTranscriptResponse attributes parsed turns to the call's agent and
// end-user identities.
func ToTranscriptResponse(l *entities.CallLog, turns []dashboard.Turn) *dto.TranscriptResponse {
	resp := &dto.TranscriptResponse{
		CallID: l.ID,
		Turns:  make([]dto.TranscriptTurnResponse, 0, len(turns)),
	}
	for _, turn := range turns {
		t := dto.TranscriptTurnResponse{
			Role:    turn.Role,
			Message: turn.Message,
		}
		if turn.IsAgent {
			t.SpeakerName = l.AgentName
			t.SpeakerPictureURL = l.AgentPictureURL
		} else {
			t.SpeakerName = l.UserName
			t.SpeakerPictureURL = l.UserPictureURL
		}
		resp.Turns = append(resp.Turns, t)
	}
	return resp
}
