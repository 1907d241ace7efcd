package ai

import (
	"fmt"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

// Platform trends fed to the dashboard summary.
const (
	PlatformGrowing   = "tillväxt"
	PlatformShrinking = "minskning"
)

type InsightGenerator struct {
	now func() time.Time
}

func NewInsightGenerator(now func() time.Time) *InsightGenerator {
	if now == nil {
		now = time.Now
	}

	return &InsightGenerator{now: now}
}

// Dashboard turns platform figures into summary sentences, advice, warnings
// and opportunities for the admin dashboard.
func (g *InsightGenerator) Dashboard(m domain.PlatformMetrics) domain.DashboardInsights {
	return domain.DashboardInsights{
		Summary:         dashboardSummary(m),
		Recommendations: dashboardAdvice(m),
		Warnings:        dashboardWarnings(m),
		Opportunities:   dashboardOpportunities(m),
		Quality:         quality(m),
		GeneratedAt:     g.now(),
	}
}

func dashboardSummary(m domain.PlatformMetrics) string {
	s := fmt.Sprintf("Neuroljus Neurohus har %d registrerade användare, %d verksamheter och %d recensioner. ",
		m.Users, m.Providers, m.Reviews)
	if m.Reviews > 0 {
		s += fmt.Sprintf("Genomsnittligt betyg är %.1f/5.0. ", m.AverageRating)
	}

	switch m.Trend {
	case PlatformGrowing:
		s += "Plattformen visar positiv tillväxt med ökande aktivitet."
	case PlatformShrinking:
		s += "Aktiviteten har minskat - överväg åtgärder för att öka engagemanget."
	default:
		s += "Aktiviteten är stabil med konsekvent engagemang."
	}

	return s
}

func dashboardAdvice(m domain.PlatformMetrics) []string {
	advice := make([]string, 0)

	if m.Reviews < m.Providers*2 {
		advice = append(advice, "Överväg att uppmuntra fler recensioner för att förbättra transparens")
	}
	if m.AverageRating < 3.5 {
		advice = append(advice, "Fokusera på kvalitetsförbättringar i verksamheter med låga betyg")
	} else if m.AverageRating > 4.5 {
		advice = append(advice, "Höga betyg visar på god kvalitet - dela framgångsrika metoder")
	}
	if len(m.Municipalities) < 10 {
		advice = append(advice, "Utöka verksamhetsnätverket till fler kommuner")
	}
	if m.Users > 0 && float64(m.ActiveUsersLastMonth)/float64(m.Users) < 0.3 {
		advice = append(advice, "Låg användaraktivitet - överväg engagemangsstrategier")
	}
	if m.Courses > 0 && float64(m.CourseCompletions)/float64(m.Courses) < 0.5 {
		advice = append(advice, "Förbättra kursavslutningsgraden genom bättre stöd och motivation")
	}

	return advice
}

func dashboardWarnings(m domain.PlatformMetrics) []string {
	warnings := make([]string, 0)

	if m.AverageRating < 2.5 {
		warnings = append(warnings, "Låga genomsnittliga betyg kräver omedelbar uppmärksamhet")
	}
	if m.ReviewsLastMonth < 5 {
		warnings = append(warnings, "Låg aktivitet i recensioner den senaste månaden")
	}
	if m.Users > 50 && m.ActiveUsersLastMonth < 10 {
		warnings = append(warnings, "Mycket låg användaraktivitet - risk för användarförlust")
	}
	if m.LowSafetyProviders > 0 {
		warnings = append(warnings, fmt.Sprintf("%d verksamheter har låga trygghetsbetyg", m.LowSafetyProviders))
	}

	return warnings
}

func dashboardOpportunities(m domain.PlatformMetrics) []string {
	ops := make([]string, 0)

	if m.AverageRating > 4.0 {
		ops = append(ops, "Höga betyg visar på god kvalitet - dela framgångsrika metoder")
	}
	if m.Users > 100 {
		ops = append(ops, "Stor användarbas - överväg att expandera tjänster")
	}
	if len(m.Municipalities) > 20 {
		ops = append(ops, "Bred geografisk spridning - utveckla regionala samarbeten")
	}
	if m.CourseCompletions > 50 {
		ops = append(ops, "Hög kursaktivitet - utveckla fler utbildningsprogram")
	}
	if m.ResearchPosts > 10 {
		ops = append(ops, "Rik forskningsbas - utveckla akademiska samarbeten")
	}

	return ops
}

func quality(m domain.PlatformMetrics) domain.QualityIndicators {
	return domain.QualityIndicators{
		AverageRating:        m.AverageRating,
		AverageSafety:        m.AverageSafety,
		AverageCommunication: m.AverageCommunication,
		AverageParticipation: m.AverageParticipation,
		HighRatedProviders:   m.HighRatedProviders,
		LowRatedProviders:    m.LowRatedProviders,
		QualityIndex: m.AverageRating*0.4 +
			m.AverageSafety*0.2 +
			m.AverageCommunication*0.2 +
			m.AverageParticipation*0.2,
	}
}

// MonthlyReport summarises one month of platform activity. An empty month
// defaults to the current one.
func (g *InsightGenerator) MonthlyReport(m domain.MonthlyMetrics) domain.MonthlyReport {
	now := g.now()
	if m.Month == "" {
		m.Month = now.Format("2006-01")
	}

	summary := fmt.Sprintf("Under månaden har %d nya användare registrerats, %d nya recensioner skrivits och %d nya verksamheter lagts till. %d kurser har avslutats framgångsrikt.",
		m.NewUsers, m.NewReviews, m.NewProviders, m.CourseCompletions)

	advice := make([]string, 0)
	if m.NewUsers > 20 {
		advice = append(advice, "Hög användartillväxt - överväg att utöka supportresurser")
	}
	if m.CourseCompletions < 5 {
		advice = append(advice, "Låg kursaktivitet - utveckla engagemangsstrategier")
	}

	focus := make([]string, 0)
	if m.NewUsers > 10 {
		focus = append(focus, "Användarupplevelse och onboarding")
	}
	if m.CourseCompletions > 20 {
		focus = append(focus, "Utveckling av nya utbildningsprogram")
	}
	if m.NewProviders > 5 {
		focus = append(focus, "Kvalitetssäkring och verksamhetsutveckling")
	}

	return domain.MonthlyReport{
		Month:           m.Month,
		Summary:         summary,
		KeyFigures:      m,
		Recommendations: advice,
		FutureFocus:     focus,
		GeneratedAt:     now,
	}
}
