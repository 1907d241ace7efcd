package domain

import "time"

// Roles a writer can have on the platform.
const (
	RoleFamily       = "familj"
	RoleAssistant    = "assistent"
	RoleMunicipality = "kommun"
	RoleUser         = "användare"
)

type SafetyCheck struct {
	Safe    bool     `json:"safe"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

type EmpathyCheck struct {
	Score     float64 `json:"score"`
	Hits      int     `json:"hits"`
	Sentiment float64 `json:"sentiment"`
}

type ModerationResult struct {
	Approved        bool         `json:"approved"`
	TotalScore      float64      `json:"total_score"`
	Safety          SafetyCheck  `json:"safety"`
	Empathy         EmpathyCheck `json:"empathy"`
	RoleScore       float64      `json:"role_score"`
	Recommendations []string     `json:"recommendations"`
	ImprovedText    string       `json:"improved_text"`
	ModeratedAt     time.Time    `json:"moderated_at"`
}

type Review struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
	Rating  *int   `json:"rating"`
}

type ReviewModeration struct {
	Moderation ModerationResult `json:"moderation"`
	Approved   bool             `json:"approved"`
	Score      float64          `json:"score"`
	Checks     map[string]bool  `json:"checks"`
}

type UserProfile struct {
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	Municipality string   `json:"municipality"`
	Diagnoses    []string `json:"diagnoses"`
	AgeGroup     string   `json:"age_group"`
	Needs        []string `json:"needs"`
}

type ProviderReview struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type ProviderProfile struct {
	ProviderID        string             `json:"provider_id"`
	Type              string             `json:"type"`
	Municipality      string             `json:"municipality"`
	Diagnoses         []string           `json:"diagnoses"`
	Services          []string           `json:"services"`
	AgeGroup          string             `json:"age_group"`
	Capacity          int                `json:"capacity"`
	Reviews           []ProviderReview   `json:"reviews"`
	QualityIndicators map[string]float64 `json:"quality_indicators"`
}

type Recommendation struct {
	ProviderID string  `json:"provider_id"`
	Score      float64 `json:"score"`
}

// TrendItem is one piece of user content (review, post) fed to the trend
// analysis.
type TrendItem struct {
	Municipality string    `json:"municipality"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type MonthlyActivity struct {
	Month         string  `json:"month"`
	Count         int     `json:"count"`
	Change        int     `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

type SentimentTrend struct {
	Average  float64 `json:"average"`
	Trend    string  `json:"trend"`
	Analyzed int     `json:"analyzed"`
}

type ThemeAnalysis struct {
	Themes   []string `json:"themes"`
	Keywords []string `json:"keywords"`
}

type TrendReport struct {
	Municipality string            `json:"municipality,omitempty"`
	Category     string            `json:"category,omitempty"`
	Activity     []MonthlyActivity `json:"activity"`
	Sentiment    SentimentTrend    `json:"sentiment"`
	Themes       ThemeAnalysis     `json:"themes"`
	Insights     []string          `json:"insights"`
	AnalyzedAt   time.Time         `json:"analyzed_at"`
}

// PlatformMetrics is the aggregated input of the dashboard insights.
type PlatformMetrics struct {
	Users                int      `json:"users"`
	ActiveUsersLastMonth int      `json:"active_users_last_month"`
	Providers            int      `json:"providers"`
	Reviews              int      `json:"reviews"`
	ReviewsLastMonth     int      `json:"reviews_last_month"`
	AverageRating        float64  `json:"average_rating"`
	Municipalities       []string `json:"municipalities"`
	Courses              int      `json:"courses"`
	CourseCompletions    int      `json:"course_completions"`
	ResearchPosts        int      `json:"research_posts"`
	LowSafetyProviders   int      `json:"low_safety_providers"`
	Trend                string   `json:"trend"`
	AverageSafety        float64  `json:"average_safety"`
	AverageCommunication float64  `json:"average_communication"`
	AverageParticipation float64  `json:"average_participation"`
	HighRatedProviders   int      `json:"high_rated_providers"`
	LowRatedProviders    int      `json:"low_rated_providers"`
}

type QualityIndicators struct {
	AverageRating        float64 `json:"average_rating"`
	AverageSafety        float64 `json:"average_safety"`
	AverageCommunication float64 `json:"average_communication"`
	AverageParticipation float64 `json:"average_participation"`
	HighRatedProviders   int     `json:"high_rated_providers"`
	LowRatedProviders    int     `json:"low_rated_providers"`
	QualityIndex         float64 `json:"quality_index"`
}

type DashboardInsights struct {
	Summary         string            `json:"summary"`
	Recommendations []string          `json:"recommendations"`
	Warnings        []string          `json:"warnings"`
	Opportunities   []string          `json:"opportunities"`
	Quality         QualityIndicators `json:"quality"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

type MonthlyMetrics struct {
	Month             string  `json:"month"`
	NewUsers          int     `json:"new_users"`
	NewReviews        int     `json:"new_reviews"`
	NewProviders      int     `json:"new_providers"`
	CourseCompletions int     `json:"course_completions"`
	AverageRating     float64 `json:"average_rating"`
	UserActivity      float64 `json:"user_activity"`
}

type MonthlyReport struct {
	Month           string         `json:"month"`
	Summary         string         `json:"summary"`
	KeyFigures      MonthlyMetrics `json:"key_figures"`
	Recommendations []string       `json:"recommendations"`
	FutureFocus     []string       `json:"future_focus"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
