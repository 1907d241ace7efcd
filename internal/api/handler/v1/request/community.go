package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

type CreateThreadRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	AuthorID   string `json:"author_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (req *CreateThreadRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.AuthorID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, 10000)),
	)
}

type CreateReplyRequest struct {
	AuthorID string `json:"author_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

func (req *CreateReplyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AuthorID, validation.Required),
		validation.Field(&req.Content, validation.Required, validation.Length(1, 10000)),
	)
}

type CreateCircleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CreatorID   string   `json:"creator_id" binding:"required"`
	Members     []string `json:"members"`
}

func (req *CreateCircleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.CreatorID, validation.Required),
	)
}

type ModerateRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required"`
	Approved    bool   `json:"approved"`
	Close       bool   `json:"close"`
	Pin         bool   `json:"pin"`
}

func (req *ModerateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContentType, validation.Required),
		validation.Field(&req.ContentID, validation.Required),
	)
}

func (req *ModerateRequest) Action() domain.ModerationAction {
	return domain.ModerationAction{
		Approved: req.Approved,
		Close:    req.Close,
		Pin:      req.Pin,
	}
}
