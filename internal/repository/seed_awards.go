package repository

import (
	"context"
	"time"

	"github.com/neuroljus/neurohus/internal/domain"
)

const seedYear = 2023

// SeedAwards loads the standard awards, all open for voting from 30 days
// before now to 30 days after, and the example nominations.
func SeedAwards(ctx context.Context, r *AwardRepository, now time.Time) error {
	start := now.AddDate(0, 0, -30)
	end := now.AddDate(0, 0, 30)

	awards := []domain.Award{
		{
			ID:          "årets-boende",
			Name:        "Årets Boende",
			Description: "Utmärkelse för det bästa LSS-boendet baserat på brukarrecensioner och kvalitetsindikatorer. Fokuserar på empati, trygghet och personcentrerad omsorg.",
			Category:    "Boende",
		},
		{
			ID:          "årets-assistent",
			Name:        "Årets Assistent",
			Description: "Utmärkelse för assistenter som visat exceptionell empati och professionalism. Erkänner personer som gjort skillnad i brukarnas vardag.",
			Category:    "Person",
		},
		{
			ID:          "brukarens-röst",
			Name:        "Brukarens Röst",
			Description: "Utmärkelse som röstas fram direkt av brukare och deras familjer. Den mest autentiska bedömningen av kvalitet och empati.",
			Category:    "Brukarval",
		},
	}
	for _, a := range awards {
		a.Year = seedYear
		a.Active = true
		a.CreatedAt = now
		a.VotingStart = start
		a.VotingEnd = end
		if _, err := r.CreateAward(ctx, a); err != nil {
			return err
		}
	}

	nominations := []domain.Nomination{
		{
			ID:                    "nominering-1",
			AwardID:               "årets-boende",
			NomineeOrganizationID: "verksamhet-solgården",
			Type:                  domain.NomineeOrganization,
			Justification:         "Solgården visar exceptionell förståelse för sina brukares behov och skapar en verkligt trygg och utvecklande miljö. Personalen är professionell, empatisk och skapar genuina relationer med brukarna.",
			NominatedBy:           "anna-larsson",
		},
		{
			ID:                    "nominering-2",
			AwardID:               "årets-boende",
			NomineeOrganizationID: "verksamhet-framtidens-boende",
			Type:                  domain.NomineeOrganization,
			Justification:         "Framtidens Boende visar hur framtiden kan se ut för LSS-omsorg. Modernt tänkande, fokus på självständighet och respekt för individen gör detta boende till en förebild.",
			NominatedBy:           "erik-johansson",
		},
		{
			ID:              "nominering-3",
			AwardID:         "årets-assistent",
			NomineePersonID: "maria-svensson",
			Type:            domain.NomineePerson,
			Justification:   "Maria visar dagligen exceptionell empati och förståelse för sina brukares behov. Hon går alltid det extra steget för att skapa trygga och meningsfulla relationer.",
			NominatedBy:     "anna-larsson",
		},
	}
	for _, n := range nominations {
		n.CreatedAt = now
		n.Status = domain.NominationActive
		if _, err := r.InsertNomination(ctx, n, nil); err != nil {
			return err
		}
	}

	return nil
}
