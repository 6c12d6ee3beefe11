// Package stats holds the pure scoring functions for profile and room pages.
// Everything here is a total, deterministic function of its inputs: no I/O,
// no clock, safe on zero.
package stats

// Position labels, ordered by engagement.
const (
	PositionNewcomer   = "Newcomer"
	PositionExplorer   = "Explorer"
	PositionConnector  = "Connector"
	PositionInfluencer = "Influencer"
)

// Summary is the derived profile-page scoring block.
type Summary struct {
	SeekerScore      int64  `json:"seeker_score"`
	InteractiveScore int64  `json:"interactive_score"`
	Position         string `json:"position"`
}

// Generate computes profile scores from follower and authored-message counts.
// Negative inputs are clamped to zero so a bad count can never produce a
// nonsensical negative score.
//
// SeekerScore weighs reach (followers) over chatter; InteractiveScore the
// reverse. Position buckets the combined score.
func Generate(followers, messages int64) Summary {
	followers = max(followers, 0)
	messages = max(messages, 0)

	seeker := followers*10 + messages*2
	interactive := messages*5 + followers

	return Summary{
		SeekerScore:      seeker,
		InteractiveScore: interactive,
		Position:         position(seeker + interactive),
	}
}

func position(combined int64) string {
	switch {
	case combined < 50:
		return PositionNewcomer
	case combined < 250:
		return PositionExplorer
	case combined < 1000:
		return PositionConnector
	default:
		return PositionInfluencer
	}
}

// ActivityScore is messages-per-participant for a room. Zero participants
// count as one, so an empty room scores 0 instead of dividing by zero.
func ActivityScore(messages, participants int64) float64 {
	messages = max(messages, 0)
	if participants < 1 {
		participants = 1
	}
	return float64(messages) / float64(participants)
}
