package dashboard

import "strings"

// Transcript marker tokens. The flat transcript string encodes repeated
// turns as "role:<label> message:<text>".
const (
	roleToken    = "role:"
	messageToken = "message:"
	agentRole    = "bot"
)

// Turn is one attributed transcript turn in source order.
type Turn struct {
	Role    string `json:"role"`
	IsAgent bool   `json:"is_agent"`
	Message string `json:"message"`
}

// ParseTranscript segments a flat transcript string into turns. The
// string is split on the literal "role:" token; empty segments are
// discarded. Each remaining segment splits once on "message:". The part
// before is the trimmed role label, the part after (rejoined if the
// token occurs again inside the text) is the trimmed message. A segment
// with no "message:" token produces no turn. A role label of "bot"
// attributes the turn to the agent; any other label attributes it to the
// end user.
func ParseTranscript(transcript string) []Turn {
	segments := strings.Split(transcript, roleToken)

	turns := make([]Turn, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		parts := strings.Split(segment, messageToken)
		if len(parts) < 2 {
			continue
		}

		role := strings.TrimSpace(parts[0])
		message := strings.TrimSpace(strings.Join(parts[1:], messageToken))

		turns = append(turns, Turn{
			Role:    role,
			IsAgent: role == agentRole,
			Message: message,
		})
	}
	return turns
}
