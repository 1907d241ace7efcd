package ai

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/neuroljus/neurohus/internal/domain"
)

var ErrNoData = errors.New("no data to analyse")

const (
	TrendImproving = "förbättring"
	TrendWorsening = "försämring"
	TrendStable    = "stabil"
	TrendNeutral   = "neutral"

	slopeThreshold = 0.01
	themeCount     = 10
	keywordCount   = 5
	minThemeLength = 3
)

var stopWords = toSet(
	"och", "att", "det", "som", "en", "ett", "är", "på", "för", "med", "av",
	"till", "den", "har", "de", "inte", "om", "jag", "vi", "du", "man", "men",
	"så", "var", "kan", "från", "eller", "vid", "sig", "han", "hon", "hur",
	"när", "mycket", "också", "alla", "detta", "här", "bara", "vara", "blir",
	"efter", "under", "över", "mer", "vår", "våra", "sin", "sina", "min",
	"mitt", "mina", "din", "ditt", "dem", "oss", "era", "ska", "skulle",
	"the", "and",
)

func toSet(list ...string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, s := range list {
		set[s] = true
	}

	return set
}

type TrendAnalyzer struct {
	now func() time.Time
}

func NewTrendAnalyzer(now func() time.Time) *TrendAnalyzer {
	if now == nil {
		now = time.Now
	}

	return &TrendAnalyzer{now: now}
}

// Analyze looks at the items of one municipality and category, either of
// which may be empty to mean all. It returns ErrNoData when nothing is left
// after filtering.
func (a *TrendAnalyzer) Analyze(items []domain.TrendItem, municipality, category string) (domain.TrendReport, error) {
	filtered := make([]domain.TrendItem, 0, len(items))
	for _, it := range items {
		if municipality != "" && it.Municipality != municipality {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		filtered = append(filtered, it)
	}
	if len(filtered) == 0 {
		return domain.TrendReport{}, ErrNoData
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	activity := monthlyActivity(filtered)
	sentiment := sentimentTrend(filtered)
	themes := themeAnalysis(filtered)

	return domain.TrendReport{
		Municipality: municipality,
		Category:     category,
		Activity:     activity,
		Sentiment:    sentiment,
		Themes:       themes,
		Insights:     trendInsights(activity, sentiment, themes),
		AnalyzedAt:   a.now(),
	}, nil
}

// monthlyActivity buckets items per calendar month, oldest first. Each month
// carries its change against the previous bucket.
func monthlyActivity(items []domain.TrendItem) []domain.MonthlyActivity {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.CreatedAt.Format("2006-01")]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	activity := make([]domain.MonthlyActivity, 0, len(months))
	for i, m := range months {
		a := domain.MonthlyActivity{Month: m, Count: counts[m]}
		if i > 0 {
			prev := counts[months[i-1]]
			a.Change = a.Count - prev
			a.ChangePercent = float64(a.Change) / float64(prev) * 100
		}
		activity = append(activity, a)
	}

	return activity
}

// sentimentTrend fits a least squares line through the sentiment of the
// items in time order and classifies its slope.
func sentimentTrend(items []domain.TrendItem) domain.SentimentTrend {
	scores := make([]float64, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Content) == "" {
			continue
		}
		scores = append(scores, Sentiment(it.Content))
	}
	if len(scores) == 0 {
		return domain.SentimentTrend{Average: 0.5, Trend: TrendNeutral}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	trend := domain.SentimentTrend{
		Average:  sum / float64(len(scores)),
		Trend:    TrendNeutral,
		Analyzed: len(scores),
	}
	if len(scores) < 2 {
		return trend
	}

	switch k := slope(scores); {
	case k > slopeThreshold:
		trend.Trend = TrendImproving
	case k < -slopeThreshold:
		trend.Trend = TrendWorsening
	default:
		trend.Trend = TrendStable
	}

	return trend
}

func slope(ys []float64) float64 {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	return (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
}

// themeAnalysis ranks the words of the items by frequency, skipping stop
// words and words shorter than three letters. Ties go alphabetically.
func themeAnalysis(items []domain.TrendItem) domain.ThemeAnalysis {
	freq := make(map[string]int)
	for _, it := range items {
		for _, w := range words(it.Content) {
			if stopWords[w] || utf8.RuneCountInString(w) < minThemeLength {
				continue
			}
			freq[w]++
		}
	}

	terms := make([]string, 0, len(freq))
	for w := range freq {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > themeCount {
		terms = terms[:themeCount]
	}

	keywords := terms
	if len(keywords) > keywordCount {
		keywords = keywords[:keywordCount]
	}

	return domain.ThemeAnalysis{Themes: terms, Keywords: keywords}
}

func trendInsights(activity []domain.MonthlyActivity, sentiment domain.SentimentTrend, themes domain.ThemeAnalysis) []string {
	insights := make([]string, 0)

	if n := len(activity); n > 0 && activity[n-1].Change > 0 {
		insights = append(insights, fmt.Sprintf("Aktivitet har ökat med %d poster den senaste månaden", activity[n-1].Change))
	}

	switch sentiment.Trend {
	case TrendImproving:
		insights = append(insights, "Positiv utveckling i sentiment och ton")
	case TrendWorsening:
		insights = append(insights, "Negativ trend i sentiment - överväg stödåtgärder")
	}

	if len(themes.Keywords) > 0 {
		top := themes.Keywords
		if len(top) > 3 {
			top = top[:3]
		}
		insights = append(insights, "Vanligaste diskussionsämnen: "+strings.Join(top, ", "))
	}

	return insights
}
