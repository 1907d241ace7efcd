package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/neuroljus/neurohus/internal/domain"
)

type CreateAwardRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" binding:"required"`
	Year        int       `json:"year" binding:"required"`
	VotingStart time.Time `json:"voting_start" binding:"required"`
	VotingEnd   time.Time `json:"voting_end" binding:"required"`
}

func (req *CreateAwardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Category, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Year, validation.Required, validation.Min(2000), validation.Max(2100)),
		validation.Field(&req.VotingStart, validation.Required),
		validation.Field(&req.VotingEnd, validation.Required, validation.Min(req.VotingStart).Exclusive()),
	)
}

func (req *CreateAwardRequest) Award() domain.Award {
	return domain.Award{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Year:        req.Year,
		VotingStart: req.VotingStart,
		VotingEnd:   req.VotingEnd,
	}
}

type CreateNominationRequest struct {
	AwardID               string `json:"award_id" binding:"required"`
	Type                  string `json:"type" binding:"required"`
	NomineeOrganizationID string `json:"nominee_organization_id"`
	NomineeProviderID     string `json:"nominee_provider_id"`
	NomineePersonID       string `json:"nominee_person_id"`
	Justification         string `json:"justification" binding:"required"`
	NominatedBy           string `json:"nominated_by" binding:"required"`
}

func (req *CreateNominationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AwardID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.NomineeOrganization),
			string(domain.NomineeProvider),
			string(domain.NomineePerson),
		)),
		validation.Field(&req.Justification, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.NominatedBy, validation.Required),
	)
}

func (req *CreateNominationRequest) Nomination() domain.Nomination {
	return domain.Nomination{
		AwardID:               req.AwardID,
		Type:                  domain.NomineeType(req.Type),
		NomineeOrganizationID: req.NomineeOrganizationID,
		NomineeProviderID:     req.NomineeProviderID,
		NomineePersonID:       req.NomineePersonID,
		Justification:         req.Justification,
		NominatedBy:           req.NominatedBy,
	}
}

type VoteRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Reason string `json:"reason"`
}

func (req *VoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Reason, validation.Length(0, 1000)),
	)
}
