package domain

import (
	"strings"
	"time"
)

type ResearchPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Authors     []string  `json:"authors"`
	University  string    `json:"university"`
	Year        int       `json:"year"`
	DOI         string    `json:"doi"`
	Abstract    string    `json:"abstract"`
	Keywords    []string  `json:"keywords"`
	Category    string    `json:"category"`
	Link        string    `json:"link"`
	PDFURL      string    `json:"pdf_url"`
	CreatedAt   time.Time `json:"created_at"`
	Published   bool      `json:"published"`
	Citations   int       `json:"citations"`
	ImpactScore float64   `json:"impact_score"`
}

// Matches reports whether term (already lower-cased) occurs in the title, the
// abstract or a keyword.
func (p ResearchPost) Matches(term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Abstract), term) {
		return true
	}
	for _, k := range p.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}

	return false
}

type Dataset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Format      string    `json:"format"`
	Source      string    `json:"source"`
	License     string    `json:"license"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Downloads   int       `json:"downloads"`
	Active      bool      `json:"active"`
}

type DatasetDownload struct {
	Dataset     Dataset `json:"dataset"`
	DownloadURL string  `json:"download_url"`
}

type ResearchSearch struct {
	Term       string                    `json:"term"`
	Hits       int                       `json:"hits"`
	Categories map[string][]ResearchPost `json:"categories"`
	Posts      []ResearchPost            `json:"posts"`
}

type LabStatistics struct {
	TotalPosts         int       `json:"total_posts"`
	PublishedPosts     int       `json:"published_posts"`
	ResearchCategories []string  `json:"research_categories"`
	AverageImpact      float64   `json:"average_impact_score"`
	TotalDatasets      int       `json:"total_datasets"`
	ActiveDatasets     int       `json:"active_datasets"`
	TotalDownloads     int       `json:"total_downloads"`
	DatasetCategories  []string  `json:"dataset_categories"`
	GeneratedAt        time.Time `json:"generated_at"`
}

type LabOverview struct {
	Statistics      LabStatistics  `json:"statistics"`
	LatestResearch  []ResearchPost `json:"latest_research"`
	PopularDatasets []Dataset      `json:"popular_datasets"`
}
