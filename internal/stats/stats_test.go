package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tcases := []struct {
		name      string
		followers int64
		messages  int64
		expected  Summary
	}{
		{
			name:      "zero values produce a newcomer",
			followers: 0,
			messages:  0,
			expected:  Summary{SeekerScore: 0, InteractiveScore: 0, Position: PositionNewcomer},
		},
		{
			name:      "small counts stay newcomer",
			followers: 2,
			messages:  3,
			expected:  Summary{SeekerScore: 26, InteractiveScore: 17, Position: PositionNewcomer},
		},
		{
			name:      "moderate engagement is an explorer",
			followers: 10,
			messages:  10,
			expected:  Summary{SeekerScore: 120, InteractiveScore: 60, Position: PositionExplorer},
		},
		{
			name:      "heavy engagement is a connector",
			followers: 50,
			messages:  20,
			expected:  Summary{SeekerScore: 540, InteractiveScore: 150, Position: PositionConnector},
		},
		{
			name:      "large following is an influencer",
			followers: 100,
			messages:  50,
			expected:  Summary{SeekerScore: 1100, InteractiveScore: 350, Position: PositionInfluencer},
		},
		{
			name:      "negative inputs are clamped to zero",
			followers: -5,
			messages:  -1,
			expected:  Summary{SeekerScore: 0, InteractiveScore: 0, Position: PositionNewcomer},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Generate(tc.followers, tc.messages))
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(42, 17)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Generate(42, 17))
	}
}

func TestActivityScore(t *testing.T) {
	tcases := []struct {
		name         string
		messages     int64
		participants int64
		expected     float64
	}{
		{name: "ten messages five participants", messages: 10, participants: 5, expected: 2.0},
		{name: "empty room scores zero", messages: 0, participants: 0, expected: 0},
		{name: "zero participants treated as one", messages: 7, participants: 0, expected: 7},
		{name: "fractional score", messages: 3, participants: 4, expected: 0.75},
		{name: "negative message count clamped", messages: -3, participants: 2, expected: 0},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ActivityScore(tc.messages, tc.participants))
		})
	}
}
