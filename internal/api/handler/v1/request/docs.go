package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

type GuideStep struct {
	Step        int      `json:"step"`
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
	Documents   []string `json:"documents"`
	Tips        []string `json:"tips"`
}

func (s GuideStep) Validate() error {
	return validation.ValidateStruct(
		&s,
		validation.Field(&s.Step, validation.Required, validation.Min(1)),
		validation.Field(&s.Heading, validation.Required, validation.Length(2, 200)),
	)
}

func guideSteps(steps []GuideStep) []domain.GuideStep {
	if steps == nil {
		return nil
	}
	out := make([]domain.GuideStep, 0, len(steps))
	for _, s := range steps {
		out = append(out, domain.GuideStep(s))
	}

	return out
}

type CreateGuideRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	Category    string      `json:"category" binding:"required"`
	Language    string      `json:"language"`
	Steps       []GuideStep `json:"steps"`
	Audience    []string    `json:"audience"`
}

func (req *CreateGuideRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Language, validation.Length(2, 5)),
		validation.Field(&req.Steps, validation.Required),
	)
}

func (req *CreateGuideRequest) Guide() domain.Guide {
	return domain.Guide{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Steps:       guideSteps(req.Steps),
		Audience:    req.Audience,
	}
}

// UpdateGuideRequest is a partial update; omitted fields keep their value.
type UpdateGuideRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Category    *string     `json:"category"`
	Steps       []GuideStep `json:"steps"`
	Audience    []string    `json:"audience"`
}

func (req *UpdateGuideRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&req.Category, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&req.Steps),
	)
}

func (req *UpdateGuideRequest) Update() domain.GuideUpdate {
	return domain.GuideUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Steps:       guideSteps(req.Steps),
		Audience:    req.Audience,
	}
}
