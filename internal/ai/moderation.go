package ai

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
)

const (
	approvalThreshold       = 0.7
	reviewApprovalThreshold = 0.7
	matchTimeout            = 100 * time.Millisecond
)

var (
	offensiveWords = []string{
		"hat", "diskriminering", "kränkande", "nedvärderande",
		"förnedrande", "hot", "mobbning", "trakasseri", "dum",
		"korkad", "idiot", "avskum", "värdelös",
	}
	empathicWords = []string{
		"respekt", "förståelse", "empati", "stöd", "hjälp",
		"tack", "uppskattning", "värdefull", "viktig", "bra",
		"fantastisk", "professionell", "kompetent", "varm",
	}
	medicalTerms      = []string{"diagnos", "behandling", "terapi", "medicin"}
	professionalTerms = []string{"brukare", "omsorg", "stöd", "assistans", "professionell"}
	formalTerms       = []string{"verksamhet", "tjänst", "insats", "samhällsansvar"}

	// Dates and personal identity numbers, phone numbers, e-mail addresses.
	personalDataPatterns = mustCompileAll(
		`\b\d{4}-\d{2}-\d{2}\b`,
		`\b\d{10,12}\b`,
		`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
		`\b\d{3}-\d{2}-\d{2}\b`,
	)
	threatPatterns = mustCompileAll(
		`jag ska.*döda`,
		`jag kommer.*skada`,
		`jag vill.*döda`,
		`hotar.*att`,
		`kommer.*att.*skada`,
	)

	// Applied in order; "inte bra" must be replaced before "bra" based rules.
	softerPhrasing = [][2]string{
		{"inte bra", "kan förbättras"},
		{"dålig", "utvecklingspotential"},
		{"problem", "utmaning"},
		{"fel", "förbättringsområde"},
		{"hatar", "tycker inte om"},
		{"idiot", "person"},
		{"dum", "ovan"},
		{"korkad", "ovan"},
	}

	reviewPraise    = []string{"fantastisk", "perfekt", "rekommenderar", "utmärkt"}
	reviewComplaint = []string{"dålig", "fruktansvärd", "hatar", "undvik"}
)

func mustCompileAll(exprs ...string) []*regexp2.Regexp {
	list := make([]*regexp2.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re := regexp2.MustCompile(e, regexp2.IgnoreCase)
		re.MatchTimeout = matchTimeout
		list = append(list, re)
	}

	return list
}

// Moderator scores user text for safety, empathy and the tone expected of the
// writer's role.
type Moderator struct {
	now func() time.Time
}

func NewModerator(now func() time.Time) *Moderator {
	if now == nil {
		now = time.Now
	}

	return &Moderator{now: now}
}

// ModerateText approves text when it is safe and its weighted score reaches
// 0.7. Rejected text comes back with a softened rewrite.
func (m *Moderator) ModerateText(text, role string) domain.ModerationResult {
	safety := checkSafety(text)
	empathy := checkEmpathy(text)
	roleScore := scoreRole(text, role)

	total := safety.Score*0.4 + empathy.Score*0.4 + roleScore*0.2
	approved := total >= approvalThreshold && safety.Safe

	result := domain.ModerationResult{
		Approved:        approved,
		TotalScore:      total,
		Safety:          safety,
		Empathy:         empathy,
		RoleScore:       roleScore,
		Recommendations: advise(text, total),
		ImprovedText:    text,
		ModeratedAt:     m.now(),
	}
	if !approved {
		result.ImprovedText = ImproveText(text)
	}

	metrics.ModerationDecisions.WithLabelValues(strconv.FormatBool(approved)).Inc()
	zap.L().Debug("text moderated",
		zap.String("role", role),
		zap.Bool("approved", approved),
		zap.Float64("score", total),
	)

	return result
}

// ModerateReview moderates the review text and checks that the review is
// complete and that its rating agrees with the wording.
func (m *Moderator) ModerateReview(review domain.Review, role string) domain.ReviewModeration {
	checks := reviewChecks(review)
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	score := float64(passed) / float64(len(checks))

	return domain.ReviewModeration{
		Moderation: m.ModerateText(review.Content, role),
		Approved:   score >= reviewApprovalThreshold,
		Score:      score,
		Checks:     checks,
	}
}

func reviewChecks(review domain.Review) map[string]bool {
	rating := 0
	if review.Rating != nil {
		rating = *review.Rating
	}
	lower := strings.ToLower(review.Content)

	matches := true
	switch {
	case rating >= 4 && countContained(lower, reviewComplaint) > 0:
		matches = false
	case rating <= 2 && countContained(lower, reviewPraise) > 0:
		matches = false
	}

	return map[string]bool{
		"has_rating":             review.Rating != nil,
		"has_content":            utf8.RuneCountInString(review.Content) > 10,
		"has_heading":            utf8.RuneCountInString(review.Heading) > 5,
		"rating_in_range":        review.Rating == nil || (rating >= 1 && rating <= 5),
		"rating_matches_content": matches,
	}
}

// ImproveText swaps blunt words for gentler ones.
func ImproveText(text string) string {
	for _, r := range softerPhrasing {
		text = strings.ReplaceAll(text, r[0], r[1])
	}

	return text
}

func checkSafety(text string) domain.SafetyCheck {
	lower := strings.ToLower(text)
	reasons := make([]string, 0)

	for _, w := range contained(lower, offensiveWords) {
		reasons = append(reasons, "offensive:"+w)
	}
	for _, hit := range findAll(personalDataPatterns, text) {
		reasons = append(reasons, "personal_data:"+hit)
	}
	for _, re := range threatPatterns {
		if ok, err := re.MatchString(lower); err != nil {
			zap.L().Warn("threat pattern failed", zap.String("pattern", re.String()), zap.Error(err))
		} else if ok {
			reasons = append(reasons, "threat:"+re.String())
		}
	}

	safe := len(reasons) == 0
	score := 0.0
	if safe {
		score = 1
	}

	return domain.SafetyCheck{Safe: safe, Score: score, Reasons: reasons}
}

func findAll(patterns []*regexp2.Regexp, text string) []string {
	hits := make([]string, 0)
	for _, re := range patterns {
		m, err := re.FindStringMatch(text)
		for m != nil && err == nil {
			hits = append(hits, m.String())
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			zap.L().Warn("personal data pattern failed", zap.String("pattern", re.String()), zap.Error(err))
		}
	}

	return hits
}

func checkEmpathy(text string) domain.EmpathyCheck {
	lower := strings.ToLower(text)
	hits := countContained(lower, empathicWords)
	sentiment := Sentiment(text)

	return domain.EmpathyCheck{
		Score:     clamp(float64(hits)/5+sentiment*0.5, 0, 1),
		Hits:      hits,
		Sentiment: sentiment,
	}
}

func scoreRole(text, role string) float64 {
	lower := strings.ToLower(text)

	switch role {
	case domain.RoleFamily:
		if countContained(lower, medicalTerms) > 0 {
			return 0.7
		}
		return 1
	case domain.RoleAssistant:
		return clamp(float64(countContained(lower, professionalTerms))/3+0.5, 0, 1)
	case domain.RoleMunicipality:
		return clamp(float64(countContained(lower, formalTerms))/3+0.6, 0, 1)
	default:
		return 0.8
	}
}

func advise(text string, score float64) []string {
	advice := make([]string, 0)

	if score < 0.5 {
		advice = append(advice,
			"Överväg att omformulera texten med mer empatiskt språk",
			"Undvik negativa eller kränkande uttryck",
			"Fokusera på konstruktiva förslag istället för kritik",
		)
	}
	if score < approvalThreshold {
		advice = append(advice,
			"Fokusera på respekt och förståelse i ditt meddelande",
			"Använd konstruktivt språk som bygger broar",
			"Tänk på hur ditt meddelande kan påverka andra",
		)
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "problem") && !strings.Contains(lower, "lösning") {
		advice = append(advice, "Överväg att föreslå konkreta lösningar på problem du identifierar")
	}
	if utf8.RuneCountInString(text) < 10 {
		advice = append(advice, "Utveckla ditt meddelande för att ge mer värde till andra")
	}

	return advice
}
