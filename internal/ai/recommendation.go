package ai

import (
	"sort"
	"strings"

	"github.com/neuroljus/neurohus/internal/domain"
)

const (
	DefaultRecommendations = 5
	otherMunicipalityScore = 0.3
	noReviewsScore         = 0.5
)

var careWords = []string{
	"empati", "förståelse", "trygg", "respekt", "varm", "omsorg",
	"professionell", "kompetent", "stödjande", "inkluderande",
	"individuell", "personcentrerad", "värdig", "värdighet",
}

// Match scores how well provider fits user, from 0 to 1.
func Match(user domain.UserProfile, provider domain.ProviderProfile) float64 {
	total := profileFit(user, provider)*0.4 +
		reviewCare(provider.Reviews)*0.4 +
		municipalityFit(user.Municipality, provider.Municipality)*0.2

	return clamp(total, 0, 1)
}

// Recommend ranks providers for user and keeps the best limit of them. A
// limit below 1 means DefaultRecommendations.
func Recommend(user domain.UserProfile, providers []domain.ProviderProfile, limit int) []domain.Recommendation {
	if limit < 1 {
		limit = DefaultRecommendations
	}

	list := make([]domain.Recommendation, 0, len(providers))
	for _, p := range providers {
		list = append(list, domain.Recommendation{ProviderID: p.ProviderID, Score: Match(user, p)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	if len(list) > limit {
		list = list[:limit]
	}

	return list
}

// profileFit averages the criteria both sides have data for: shared
// diagnoses, age group and needs covered by services.
func profileFit(user domain.UserProfile, provider domain.ProviderProfile) float64 {
	score, criteria := 0.0, 0

	if len(user.Diagnoses) > 0 && len(provider.Diagnoses) > 0 {
		score += overlap(user.Diagnoses, provider.Diagnoses)
		criteria++
	}
	if user.AgeGroup == provider.AgeGroup {
		score++
		criteria++
	}
	if len(user.Needs) > 0 && len(provider.Services) > 0 {
		score += overlap(user.Needs, provider.Services)
		criteria++
	}

	if criteria == 0 {
		return 0
	}

	return score / float64(criteria)
}

// overlap is the share of distinct wanted values found in offered.
func overlap(wanted, offered []string) float64 {
	have := make(map[string]bool, len(offered))
	for _, o := range offered {
		have[o] = true
	}

	distinct := make(map[string]bool, len(wanted))
	found := 0
	for _, w := range wanted {
		if distinct[w] {
			continue
		}
		distinct[w] = true
		if have[w] {
			found++
		}
	}

	return float64(found) / float64(len(distinct))
}

func reviewCare(reviews []domain.ProviderReview) float64 {
	if len(reviews) == 0 {
		return noReviewsScore
	}

	sum := 0.0
	for _, r := range reviews {
		hits := countContained(strings.ToLower(r.Content), careWords)
		sum += float64(hits)/float64(len(careWords))*0.6 + Sentiment(r.Content)*0.4
	}

	return sum / float64(len(reviews))
}

func municipalityFit(user, provider string) float64 {
	if user == provider {
		return 1
	}

	return otherMunicipalityScore
}
