package domain

import "time"

type NomineeType string

const (
	NomineeOrganization NomineeType = "organization"
	NomineeProvider     NomineeType = "provider"
	NomineePerson       NomineeType = "person"
)

type NominationStatus string

const (
	NominationActive NominationStatus = "active"
	NominationWinner NominationStatus = "winner"
)

type Award struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Year        int       `json:"year"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	VotingStart time.Time `json:"voting_start"`
	VotingEnd   time.Time `json:"voting_end"`
}

// VotingOpen reports whether now lies inside the closed interval
// [VotingStart, VotingEnd].
func (a Award) VotingOpen(now time.Time) bool {
	return !now.Before(a.VotingStart) && !now.After(a.VotingEnd)
}

type Nomination struct {
	ID                    string           `json:"id"`
	AwardID               string           `json:"award_id"`
	NomineeOrganizationID string           `json:"nominee_organization_id,omitempty"`
	NomineeProviderID     string           `json:"nominee_provider_id,omitempty"`
	NomineePersonID       string           `json:"nominee_person_id,omitempty"`
	Type                  NomineeType      `json:"type"`
	Justification         string           `json:"justification"`
	NominatedBy           string           `json:"nominated_by"`
	CreatedAt             time.Time        `json:"created_at"`
	Status                NominationStatus `json:"status"`
	VoteCount             int              `json:"vote_count"`
}

// NomineeID returns the reference that matches the nomination type.
func (n Nomination) NomineeID() string {
	switch n.Type {
	case NomineeOrganization:
		return n.NomineeOrganizationID
	case NomineeProvider:
		return n.NomineeProviderID
	case NomineePerson:
		return n.NomineePersonID
	}

	return ""
}

// HasSingleNominee is true when exactly one nominee reference is set and it
// is the one named by Type.
func (n Nomination) HasSingleNominee() bool {
	set := 0
	for _, id := range []string{n.NomineeOrganizationID, n.NomineeProviderID, n.NomineePersonID} {
		if id != "" {
			set++
		}
	}

	return set == 1 && n.NomineeID() != ""
}

type Vote struct {
	ID           string    `json:"id"`
	NominationID string    `json:"nomination_id"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	Reason       string    `json:"reason"`
}

type AwardSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Year        int    `json:"year,omitempty"`
}

type AwardListing struct {
	Award
	NominationCount int  `json:"nomination_count"`
	VotingOpen      bool `json:"voting_open"`
}

type NominationResult struct {
	Nomination Nomination `json:"nomination"`
	Votes      int        `json:"votes"`
	Percent    float64    `json:"percent"`
}

type AwardResults struct {
	Award           AwardSummary       `json:"award"`
	Results         []NominationResult `json:"results"`
	TotalVotes      int                `json:"total_votes"`
	NominationCount int                `json:"nomination_count"`
	VotingOpen      bool               `json:"voting_open"`
}

type UserVote struct {
	Vote       Vote          `json:"vote"`
	Nomination Nomination    `json:"nomination"`
	Award      *AwardSummary `json:"award"`
}

type AwardStatistics struct {
	TotalAwards       int            `json:"total_awards"`
	ActiveAwards      int            `json:"active_awards"`
	TotalNominations  int            `json:"total_nominations"`
	ActiveNominations int            `json:"active_nominations"`
	TotalVotes        int            `json:"total_votes"`
	VotesPerAward     map[string]int `json:"votes_per_award"`
	GeneratedAt       time.Time      `json:"generated_at"`
}

type AwardsOverview struct {
	Awards      []AwardListing  `json:"awards"`
	Statistics  AwardStatistics `json:"statistics"`
	OpenVotings int             `json:"open_votings"`
}
