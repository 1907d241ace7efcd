package domain

import (
	"strings"
	"time"
)

type GuideStep struct {
	Step        int      `json:"step"`
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
	Documents   []string `json:"documents,omitempty"`
	Tips        []string `json:"tips,omitempty"`
}

type Guide struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Language    string      `json:"language"`
	Steps       []GuideStep `json:"steps"`
	StepCount   int         `json:"step_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Active      bool        `json:"active"`
	Audience    []string    `json:"audience"`
}

// Matches reports whether term (already lower-cased) occurs in the title, the
// description or any step heading or description.
func (g Guide) Matches(term string) bool {
	if strings.Contains(strings.ToLower(g.Title), term) || strings.Contains(strings.ToLower(g.Description), term) {
		return true
	}
	for _, s := range g.Steps {
		if strings.Contains(strings.ToLower(s.Heading), term) || strings.Contains(strings.ToLower(s.Description), term) {
			return true
		}
	}

	return false
}

// GuideUpdate carries the fields of a partial update. Nil means unchanged.
type GuideUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Steps       []GuideStep
	Audience    []string
}

type GuideStatistics struct {
	TotalGuides  int            `json:"total_guides"`
	ActiveGuides int            `json:"active_guides"`
	Categories   map[string]int `json:"categories"`
	Languages    map[string]int `json:"languages"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

type DocsOverview struct {
	Categories    []string        `json:"categories"`
	Statistics    GuideStatistics `json:"statistics"`
	PopularGuides []Guide         `json:"popular_guides"`
}
