package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) }

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "neutral", text: "Vi träffades i tisdags", want: 0.5},
		{name: "positive", text: "Fantastisk och perfekt", want: 0.7},
		{name: "negative", text: "Dålig service och fel besked", want: 0.3},
		{name: "balanced", text: "Bra men dålig", want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Sentiment(tt.text), 1e-9)
		})
	}
}

func TestModerator_ModerateText(t *testing.T) {
	m := NewModerator(fixedNow)

	t.Run("empathic text is approved", func(t *testing.T) {
		text := "Tack för ert stöd och er respekt, det var till stor hjälp."
		res := m.ModerateText(text, domain.RoleFamily)

		assert.True(t, res.Approved)
		assert.True(t, res.Safety.Safe)
		assert.Equal(t, 4, res.Empathy.Hits)
		assert.InDelta(t, 0.6, res.Empathy.Sentiment, 1e-9)
		assert.InDelta(t, 1.0, res.TotalScore, 1e-9)
		assert.Empty(t, res.Recommendations)
		assert.Equal(t, text, res.ImprovedText)
		assert.Equal(t, fixedNow(), res.ModeratedAt)
	})

	t.Run("insult is rejected and softened", func(t *testing.T) {
		res := m.ModerateText("Du är en idiot", domain.RoleUser)

		assert.False(t, res.Approved)
		assert.False(t, res.Safety.Safe)
		assert.Contains(t, res.Safety.Reasons, "offensive:idiot")
		assert.InDelta(t, 0.26, res.TotalScore, 1e-9)
		assert.Len(t, res.Recommendations, 6)
		assert.Equal(t, "Du är en person", res.ImprovedText)
	})

	t.Run("personal data is unsafe", func(t *testing.T) {
		res := m.ModerateText("Ring mig på 0701234567 eller skriv till anna@example.se", domain.RoleUser)

		assert.False(t, res.Safety.Safe)
		assert.Contains(t, res.Safety.Reasons, "personal_data:0701234567")
		assert.Contains(t, res.Safety.Reasons, "personal_data:anna@example.se")
	})

	t.Run("threat is unsafe", func(t *testing.T) {
		res := m.ModerateText("Jag ska döda dig", domain.RoleUser)

		assert.False(t, res.Approved)
		require.NotEmpty(t, res.Safety.Reasons)
		assert.Contains(t, res.Safety.Reasons[0], "threat:")
	})

	t.Run("short text gets advice", func(t *testing.T) {
		res := m.ModerateText("Ok", domain.RoleUser)

		assert.Contains(t, res.Recommendations, "Utveckla ditt meddelande för att ge mer värde till andra")
	})
}

func TestScoreRole(t *testing.T) {
	assert.InDelta(t, 1.0, scoreRole("Vi pratade om vardagen", domain.RoleFamily), 1e-9)
	assert.InDelta(t, 0.7, scoreRole("Ny diagnos i våras", domain.RoleFamily), 1e-9)
	assert.InDelta(t, 1.0, scoreRole("brukare, omsorg och stöd", domain.RoleAssistant), 1e-9)
	assert.InDelta(t, 0.5, scoreRole("inget särskilt", domain.RoleAssistant), 1e-9)
	assert.InDelta(t, 0.6+1.0/3, scoreRole("Vår verksamhet växer", domain.RoleMunicipality), 1e-9)
	assert.InDelta(t, 0.8, scoreRole("vad som helst", domain.RoleUser), 1e-9)
}

func TestModerator_ModerateReview(t *testing.T) {
	m := NewModerator(fixedNow)
	five := 5

	res := m.ModerateReview(domain.Review{
		Heading: "Inte bra alls",
		Content: "Fruktansvärd personal, undvik",
		Rating:  &five,
	}, domain.RoleFamily)

	assert.False(t, res.Checks["rating_matches_content"])
	assert.True(t, res.Checks["has_rating"])
	assert.True(t, res.Checks["has_content"])
	assert.True(t, res.Checks["has_heading"])
	assert.True(t, res.Checks["rating_in_range"])
	assert.InDelta(t, 0.8, res.Score, 1e-9)
	assert.True(t, res.Approved)
	assert.False(t, res.Moderation.Approved)

	res = m.ModerateReview(domain.Review{Heading: "hej", Content: "kort"}, domain.RoleUser)

	assert.False(t, res.Checks["has_rating"])
	assert.InDelta(t, 0.4, res.Score, 1e-9)
	assert.False(t, res.Approved)
}

func TestImproveText(t *testing.T) {
	assert.Equal(t, "Det var kan förbättras och ett utmaning", ImproveText("Det var inte bra och ett problem"))
	assert.Equal(t, "Helt okej", ImproveText("Helt okej"))
}
