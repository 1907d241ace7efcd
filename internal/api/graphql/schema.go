// Package graphql exposes the awards service as a GraphQL schema. Field
// names follow the JSON names of the REST API.
package graphql

import (
	"context"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/neuroljus/neurohus/internal/domain"
)

type AwardService interface {
	ListAwards(ctx context.Context) ([]domain.AwardListing, error)
	ListNominations(ctx context.Context, awardID string) ([]domain.Nomination, error)
	CastVote(ctx context.Context, nominationID, voterID, reason string) (domain.Vote, domain.Nomination, error)
	Results(ctx context.Context, awardID string) (domain.AwardResults, error)
	Statistics(ctx context.Context) (domain.AwardStatistics, error)
}

var awardType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Award",
		Fields: graphql.Fields{
			"id":               &graphql.Field{Type: graphql.String},
			"name":             &graphql.Field{Type: graphql.String},
			"description":      &graphql.Field{Type: graphql.String},
			"category":         &graphql.Field{Type: graphql.String},
			"year":             &graphql.Field{Type: graphql.Int},
			"active":           &graphql.Field{Type: graphql.Boolean},
			"voting_start":     &graphql.Field{Type: graphql.DateTime},
			"voting_end":       &graphql.Field{Type: graphql.DateTime},
			"nomination_count": &graphql.Field{Type: graphql.Int},
			"voting_open":      &graphql.Field{Type: graphql.Boolean},
		},
	},
)

var nominationType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Nomination",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.String},
			"award_id": &graphql.Field{Type: graphql.String},
			"type":     &graphql.Field{Type: graphql.String},
			"nominee_id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					n, _ := p.Source.(domain.Nomination)
					return n.NomineeID(), nil
				},
			},
			"justification": &graphql.Field{Type: graphql.String},
			"nominated_by":  &graphql.Field{Type: graphql.String},
			"created_at":    &graphql.Field{Type: graphql.DateTime},
			"status":        &graphql.Field{Type: graphql.String},
			"vote_count":    &graphql.Field{Type: graphql.Int},
		},
	},
)

var resultType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "NominationResult",
		Fields: graphql.Fields{
			"nomination": &graphql.Field{Type: nominationType},
			"votes":      &graphql.Field{Type: graphql.Int},
			"percent":    &graphql.Field{Type: graphql.Float},
		},
	},
)

var resultsType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "AwardResults",
		Fields: graphql.Fields{
			"award_id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := p.Source.(domain.AwardResults)
					return r.Award.ID, nil
				},
			},
			"award_name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					r, _ := p.Source.(domain.AwardResults)
					return r.Award.Name, nil
				},
			},
			"results":          &graphql.Field{Type: graphql.NewList(resultType)},
			"total_votes":      &graphql.Field{Type: graphql.Int},
			"nomination_count": &graphql.Field{Type: graphql.Int},
			"voting_open":      &graphql.Field{Type: graphql.Boolean},
		},
	},
)

var statisticsType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "AwardStatistics",
		Fields: graphql.Fields{
			"total_awards":       &graphql.Field{Type: graphql.Int},
			"active_awards":      &graphql.Field{Type: graphql.Int},
			"total_nominations":  &graphql.Field{Type: graphql.Int},
			"active_nominations": &graphql.Field{Type: graphql.Int},
			"total_votes":        &graphql.Field{Type: graphql.Int},
			"generated_at":       &graphql.Field{Type: graphql.DateTime},
		},
	},
)

var voteType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "VoteCast",
		Fields: graphql.Fields{
			"vote_id":    &graphql.Field{Type: graphql.String},
			"nomination": &graphql.Field{Type: nominationType},
		},
	},
)

// NewSchema builds the query and mutation types on top of svc.
func NewSchema(svc AwardService) (graphql.Schema, error) {
	query := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"awards": &graphql.Field{
					Type: graphql.NewList(awardType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						awards, err := svc.ListAwards(p.Context)
						if err != nil {
							return nil, err
						}

						return flattenListings(awards), nil
					},
				},
				"nominations": &graphql.Field{
					Type: graphql.NewList(nominationType),
					Args: graphql.FieldConfigArgument{
						"award_id": &graphql.ArgumentConfig{Type: graphql.String},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						awardID, _ := p.Args["award_id"].(string)
						return svc.ListNominations(p.Context, awardID)
					},
				},
				"results": &graphql.Field{
					Type: resultsType,
					Args: graphql.FieldConfigArgument{
						"award_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						awardID, _ := p.Args["award_id"].(string)
						return svc.Results(p.Context, awardID)
					},
				},
				"statistics": &graphql.Field{
					Type: statisticsType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return svc.Statistics(p.Context)
					},
				},
			},
		},
	)

	mutation := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"vote": &graphql.Field{
					Type: voteType,
					Args: graphql.FieldConfigArgument{
						"nomination_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
						"user_id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
						"reason":        &graphql.ArgumentConfig{Type: graphql.String},
					},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						nominationID, _ := p.Args["nomination_id"].(string)
						userID, _ := p.Args["user_id"].(string)
						reason, _ := p.Args["reason"].(string)

						vote, nomination, err := svc.CastVote(p.Context, nominationID, userID, reason)
						if err != nil {
							return nil, err
						}

						return map[string]interface{}{
							"vote_id":    vote.ID,
							"nomination": nomination,
						}, nil
					},
				},
			},
		},
	)

	return graphql.NewSchema(
		graphql.SchemaConfig{
			Query:    query,
			Mutation: mutation,
		},
	)
}

// The default resolver does not descend into embedded structs, so listings
// are handed over as flat maps.
func flattenListings(awards []domain.AwardListing) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(awards))
	for _, a := range awards {
		out = append(out, map[string]interface{}{
			"id":               a.ID,
			"name":             a.Name,
			"description":      a.Description,
			"category":         a.Category,
			"year":             a.Year,
			"active":           a.Active,
			"voting_start":     a.VotingStart,
			"voting_end":       a.VotingEnd,
			"nomination_count": a.NominationCount,
			"voting_open":      a.VotingOpen,
		})
	}

	return out
}

// NewHandler serves the schema over GET and POST.
func NewHandler(svc AwardService) (http.Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema: &schema,
		Pretty: true,
	}), nil
}
