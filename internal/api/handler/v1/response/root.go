package response

import "github.com/neuroljus/neurohus/internal/domain"

type Root struct {
	Message     string `json:"message"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Status      string `json:"status"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type VoteCast struct {
	VoteID     string            `json:"vote_id"`
	Nomination domain.Nomination `json:"nomination"`
	Message    string            `json:"message"`
}

type Members struct {
	Circle  domain.Circle `json:"circle"`
	Message string        `json:"message"`
}

type Providers struct {
	Providers []domain.Provider `json:"verksamheter"`
}

type ImprovedText struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
}
