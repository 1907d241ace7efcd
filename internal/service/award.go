package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/metrics"
	"github.com/neuroljus/neurohus/internal/repository"
)

var (
	ErrAwardNotFound      = repository.ErrAwardNotFound
	ErrAwardExists        = repository.ErrAwardExists
	ErrNominationNotFound = repository.ErrNominationNotFound
	ErrDuplicateVote      = repository.ErrDuplicateVote

	ErrAwardInactive     = errors.New("award is not active")
	ErrWindowClosed      = errors.New("voting window is not open")
	ErrVotingOpen        = errors.New("voting window has not closed yet")
	ErrInvalidNomination = errors.New("nominee reference does not match nomination type")
	ErrInvalidWindow     = errors.New("voting window must start before it ends")
)

type AwardRepository interface {
	CreateAward(ctx context.Context, award domain.Award) (domain.Award, error)
	FindAward(ctx context.Context, id string) (domain.Award, error)
	ListAwards(ctx context.Context) ([]domain.Award, error)
	InsertNomination(ctx context.Context, n domain.Nomination, check func(domain.Award) error) (domain.Nomination, error)
	FindNomination(ctx context.Context, id string) (domain.Nomination, error)
	ListNominations(ctx context.Context, awardID string) ([]domain.Nomination, error)
	InsertVote(ctx context.Context, vote domain.Vote, check func(domain.Award, domain.Nomination) error) (domain.Vote, domain.Nomination, error)
	ListVotesByUser(ctx context.Context, userID string) ([]domain.Vote, error)
	UpdateNominationStatuses(ctx context.Context, awardID string, winners map[string]bool) ([]domain.Nomination, error)
}

type AwardService struct {
	repo AwardRepository
	now  func() time.Time
}

func NewAwardService(repo AwardRepository, now func() time.Time) *AwardService {
	if now == nil {
		now = time.Now
	}

	return &AwardService{
		repo: repo,
		now:  now,
	}
}

// ListAwards returns the active awards with their nomination count and
// whether voting is open right now.
func (s *AwardService) ListAwards(ctx context.Context) ([]domain.AwardListing, error) {
	awards, err := s.repo.ListAwards(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListAwards -> %w", err)
	}
	nominations, err := s.repo.ListNominations(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListNominations -> %w", err)
	}

	counts := make(map[string]int, len(awards))
	for _, n := range nominations {
		counts[n.AwardID]++
	}

	now := s.now()
	listings := make([]domain.AwardListing, 0, len(awards))
	for _, a := range awards {
		if !a.Active {
			continue
		}
		listings = append(listings, domain.AwardListing{
			Award:           a,
			NominationCount: counts[a.ID],
			VotingOpen:      a.VotingOpen(now),
		})
	}

	return listings, nil
}

func (s *AwardService) CreateAward(ctx context.Context, award domain.Award) (domain.Award, error) {
	if !award.VotingStart.Before(award.VotingEnd) {
		return domain.Award{}, ErrInvalidWindow
	}

	award.Active = true
	award.CreatedAt = s.now()

	created, err := s.repo.CreateAward(ctx, award)
	if err != nil {
		return domain.Award{}, fmt.Errorf("s.repo.CreateAward -> %w", err)
	}

	zap.L().Info("award created", zap.String("award_id", created.ID), zap.String("name", created.Name))

	return created, nil
}

// ListNominations returns nominations sorted by vote count, highest first.
// Ties keep creation order.
func (s *AwardService) ListNominations(ctx context.Context, awardID string) ([]domain.Nomination, error) {
	if awardID != "" {
		if _, err := s.repo.FindAward(ctx, awardID); err != nil {
			return nil, fmt.Errorf("s.repo.FindAward -> %w", err)
		}
	}

	nominations, err := s.repo.ListNominations(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListNominations -> %w", err)
	}
	sortByVotes(nominations)

	return nominations, nil
}

func (s *AwardService) CreateNomination(ctx context.Context, n domain.Nomination) (domain.Nomination, error) {
	if !n.HasSingleNominee() {
		return domain.Nomination{}, ErrInvalidNomination
	}

	now := s.now()
	n.ID = ""
	n.CreatedAt = now
	n.Status = domain.NominationActive
	n.VoteCount = 0

	created, err := s.repo.InsertNomination(ctx, n, func(award domain.Award) error {
		if !award.Active {
			return ErrAwardInactive
		}
		if !award.VotingOpen(now) {
			return ErrWindowClosed
		}

		return nil
	})
	if err != nil {
		return domain.Nomination{}, fmt.Errorf("s.repo.InsertNomination -> %w", err)
	}

	metrics.NominationsCreated.WithLabelValues(created.AwardID).Inc()
	zap.L().Info("nomination created",
		zap.String("nomination_id", created.ID),
		zap.String("award_id", created.AwardID),
		zap.String("nominated_by", created.NominatedBy),
	)

	return created, nil
}

// CastVote records one vote from voterID. The window check, the duplicate
// check and the counter increment happen atomically in the store.
func (s *AwardService) CastVote(ctx context.Context, nominationID, voterID, reason string) (domain.Vote, domain.Nomination, error) {
	now := s.now()
	vote := domain.Vote{
		NominationID: nominationID,
		UserID:       voterID,
		CreatedAt:    now,
		Reason:       reason,
	}

	stored, n, err := s.repo.InsertVote(ctx, vote, func(award domain.Award, _ domain.Nomination) error {
		if !award.VotingOpen(now) {
			return ErrWindowClosed
		}

		return nil
	})
	if err != nil {
		metrics.VotesRejected.WithLabelValues(rejectReason(err)).Inc()
		return domain.Vote{}, domain.Nomination{}, fmt.Errorf("s.repo.InsertVote -> %w", err)
	}

	metrics.VotesCast.WithLabelValues(n.AwardID).Inc()
	zap.L().Info("vote cast",
		zap.String("vote_id", stored.ID),
		zap.String("nomination_id", n.ID),
		zap.Int("vote_count", n.VoteCount),
	)

	return stored, n, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrNominationNotFound), errors.Is(err, ErrAwardNotFound):
		return "not_found"
	case errors.Is(err, ErrWindowClosed):
		return "window_closed"
	case errors.Is(err, ErrDuplicateVote):
		return "duplicate"
	default:
		return "other"
	}
}

// Results ranks the award's nominations and gives each its share of the
// award's votes, rounded to one decimal.
func (s *AwardService) Results(ctx context.Context, awardID string) (domain.AwardResults, error) {
	award, err := s.repo.FindAward(ctx, awardID)
	if err != nil {
		return domain.AwardResults{}, fmt.Errorf("s.repo.FindAward -> %w", err)
	}

	nominations, err := s.repo.ListNominations(ctx, awardID)
	if err != nil {
		return domain.AwardResults{}, fmt.Errorf("s.repo.ListNominations -> %w", err)
	}
	sortByVotes(nominations)

	total := 0
	for _, n := range nominations {
		total += n.VoteCount
	}

	results := make([]domain.NominationResult, 0, len(nominations))
	for _, n := range nominations {
		results = append(results, domain.NominationResult{
			Nomination: n,
			Votes:      n.VoteCount,
			Percent:    percentOf(n.VoteCount, total),
		})
	}

	return domain.AwardResults{
		Award: domain.AwardSummary{
			ID:          award.ID,
			Name:        award.Name,
			Description: award.Description,
			Year:        award.Year,
		},
		Results:         results,
		TotalVotes:      total,
		NominationCount: len(nominations),
		VotingOpen:      award.VotingOpen(s.now()),
	}, nil
}

// percentOf returns part of total as a percentage with one decimal. Halves
// round to even, so 6.25 becomes 6.2.
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.RoundToEven(float64(part)*1000/float64(total)) / 10
}

func sortByVotes(nominations []domain.Nomination) {
	sort.SliceStable(nominations, func(i, j int) bool {
		return nominations[i].VoteCount > nominations[j].VoteCount
	})
}

// UserVotes lists the votes cast by userID together with the nomination and
// award each vote went to.
func (s *AwardService) UserVotes(ctx context.Context, userID string) ([]domain.UserVote, error) {
	votes, err := s.repo.ListVotesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListVotesByUser -> %w", err)
	}

	list := make([]domain.UserVote, 0, len(votes))
	for _, v := range votes {
		n, err := s.repo.FindNomination(ctx, v.NominationID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindNomination -> %w", err)
		}

		uv := domain.UserVote{Vote: v, Nomination: n}
		if award, err := s.repo.FindAward(ctx, n.AwardID); err == nil {
			uv.Award = &domain.AwardSummary{ID: award.ID, Name: award.Name}
		}
		list = append(list, uv)
	}

	return list, nil
}

func (s *AwardService) Statistics(ctx context.Context) (domain.AwardStatistics, error) {
	awards, err := s.repo.ListAwards(ctx)
	if err != nil {
		return domain.AwardStatistics{}, fmt.Errorf("s.repo.ListAwards -> %w", err)
	}
	nominations, err := s.repo.ListNominations(ctx, "")
	if err != nil {
		return domain.AwardStatistics{}, fmt.Errorf("s.repo.ListNominations -> %w", err)
	}

	stats := domain.AwardStatistics{
		TotalAwards:      len(awards),
		TotalNominations: len(nominations),
		VotesPerAward:    make(map[string]int, len(awards)),
		GeneratedAt:      s.now(),
	}

	names := make(map[string]string, len(awards))
	for _, a := range awards {
		names[a.ID] = a.Name
		stats.VotesPerAward[a.Name] = 0
		if a.Active {
			stats.ActiveAwards++
		}
	}
	for _, n := range nominations {
		if n.Status == domain.NominationActive {
			stats.ActiveNominations++
		}
		stats.TotalVotes += n.VoteCount
		if name, ok := names[n.AwardID]; ok {
			stats.VotesPerAward[name] += n.VoteCount
		}
	}

	return stats, nil
}

func (s *AwardService) Overview(ctx context.Context) (domain.AwardsOverview, error) {
	awards, err := s.ListAwards(ctx)
	if err != nil {
		return domain.AwardsOverview{}, err
	}
	stats, err := s.Statistics(ctx)
	if err != nil {
		return domain.AwardsOverview{}, err
	}

	open := 0
	for _, a := range awards {
		if a.VotingOpen {
			open++
		}
	}

	return domain.AwardsOverview{
		Awards:      awards,
		Statistics:  stats,
		OpenVotings: open,
	}, nil
}

// DeclareWinners marks the nominations with the highest vote count as
// winners once voting has ended. Nothing wins when no votes were cast.
func (s *AwardService) DeclareWinners(ctx context.Context, awardID string) ([]domain.Nomination, error) {
	award, err := s.repo.FindAward(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAward -> %w", err)
	}
	if !s.now().After(award.VotingEnd) {
		return nil, ErrVotingOpen
	}

	nominations, err := s.repo.ListNominations(ctx, awardID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListNominations -> %w", err)
	}

	highest := 0
	for _, n := range nominations {
		if n.VoteCount > highest {
			highest = n.VoteCount
		}
	}

	winners := make(map[string]bool)
	if highest > 0 {
		for _, n := range nominations {
			if n.VoteCount == highest {
				winners[n.ID] = true
			}
		}
	}

	updated, err := s.repo.UpdateNominationStatuses(ctx, awardID, winners)
	if err != nil {
		return nil, fmt.Errorf("s.repo.UpdateNominationStatuses -> %w", err)
	}
	sortByVotes(updated)

	zap.L().Info("award winners declared", zap.String("award_id", awardID), zap.Int("winners", len(winners)))

	return updated, nil
}
