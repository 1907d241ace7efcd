package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

type CreateResearchRequest struct {
	Title       string   `json:"title" binding:"required"`
	Authors     []string `json:"authors"`
	University  string   `json:"university"`
	Year        int      `json:"year"`
	DOI         string   `json:"doi"`
	Abstract    string   `json:"abstract"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category" binding:"required"`
	Link        string   `json:"link"`
	PDFURL      string   `json:"pdf_url"`
	ImpactScore float64  `json:"impact_score"`
}

func (req *CreateResearchRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 300)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Year, validation.Min(1900), validation.Max(2100)),
		validation.Field(&req.ImpactScore, validation.Min(0.0), validation.Max(10.0)),
	)
}

func (req *CreateResearchRequest) Post() domain.ResearchPost {
	return domain.ResearchPost{
		Title:       req.Title,
		Authors:     req.Authors,
		University:  req.University,
		Year:        req.Year,
		DOI:         req.DOI,
		Abstract:    req.Abstract,
		Keywords:    req.Keywords,
		Category:    req.Category,
		Link:        req.Link,
		PDFURL:      req.PDFURL,
		ImpactScore: req.ImpactScore,
	}
}

type CreateDatasetRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Size        string `json:"size"`
	Format      string `json:"format"`
	Source      string `json:"source"`
	License     string `json:"license"`
}

func (req *CreateDatasetRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
	)
}

func (req *CreateDatasetRequest) Dataset() domain.Dataset {
	return domain.Dataset{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Size:        req.Size,
		Format:      req.Format,
		Source:      req.Source,
		License:     req.License,
	}
}
