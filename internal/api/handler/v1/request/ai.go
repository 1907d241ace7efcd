package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

var roles = []interface{}{
	domain.RoleFamily,
	domain.RoleAssistant,
	domain.RoleMunicipality,
	domain.RoleUser,
}

type ModerateTextRequest struct {
	Text string `json:"text" binding:"required"`
	Role string `json:"role"`
}

func (req *ModerateTextRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 10000)),
		validation.Field(&req.Role, validation.In(roles...)),
	)
}

type ModerateReviewRequest struct {
	Review domain.Review `json:"review" binding:"required"`
	Role   string        `json:"role"`
}

func (req *ModerateReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.In(roles...)),
	)
}

type RecommendRequest struct {
	User      domain.UserProfile       `json:"user"`
	Providers []domain.ProviderProfile `json:"providers"`
	Limit     int                      `json:"limit"`
}

func (req *RecommendRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Providers, validation.Required),
		validation.Field(&req.Limit, validation.Min(0), validation.Max(50)),
	)
}

type TrendRequest struct {
	Items        []domain.TrendItem `json:"items"`
	Municipality string             `json:"municipality"`
	Category     string             `json:"category"`
}

func (req *TrendRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Items, validation.Length(0, 10000)),
		validation.Field(&req.Municipality, validation.Length(0, 100)),
		validation.Field(&req.Category, validation.Length(0, 100)),
	)
}

type ImproveTextRequest struct {
	Text string `json:"text" binding:"required"`
}

func (req *ImproveTextRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Text, validation.Required, validation.Length(1, 10000)),
	)
}
