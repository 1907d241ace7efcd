package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/neuroljus/neurohus/internal/domain"
)

var (
	ErrAwardNotFound      = errors.New("award not found")
	ErrAwardExists        = errors.New("award already exists")
	ErrNominationNotFound = errors.New("nomination not found")
	ErrDuplicateVote      = errors.New("user has already voted for this nomination")
)

type voteKey struct {
	userID       string
	nominationID string
}

// AwardRepository keeps awards, nominations and votes in memory. All three
// tables share one lock so a vote and its counter change together.
type AwardRepository struct {
	mu sync.RWMutex

	awards     map[string]domain.Award
	awardOrder []string

	nominations     map[string]domain.Nomination
	nominationOrder []string

	votes     map[string]domain.Vote
	voteOrder []string
	voteIndex map[voteKey]struct{}
}

func NewAwardRepository() *AwardRepository {
	return &AwardRepository{
		awards:      make(map[string]domain.Award),
		nominations: make(map[string]domain.Nomination),
		votes:       make(map[string]domain.Vote),
		voteIndex:   make(map[voteKey]struct{}),
	}
}

func (r *AwardRepository) CreateAward(_ context.Context, award domain.Award) (domain.Award, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if award.ID == "" {
		award.ID = uuid.NewString()
	}
	if _, ok := r.awards[award.ID]; ok {
		return domain.Award{}, ErrAwardExists
	}

	r.awards[award.ID] = award
	r.awardOrder = append(r.awardOrder, award.ID)

	return award, nil
}

func (r *AwardRepository) FindAward(_ context.Context, id string) (domain.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	award, ok := r.awards[id]
	if !ok {
		return domain.Award{}, ErrAwardNotFound
	}

	return award, nil
}

// ListAwards returns every award in creation order.
func (r *AwardRepository) ListAwards(_ context.Context) ([]domain.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	awards := make([]domain.Award, 0, len(r.awardOrder))
	for _, id := range r.awardOrder {
		awards = append(awards, r.awards[id])
	}

	return awards, nil
}

// InsertNomination stores n after check has accepted its award. check runs
// under the write lock.
func (r *AwardRepository) InsertNomination(_ context.Context, n domain.Nomination, check func(domain.Award) error) (domain.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	award, ok := r.awards[n.AwardID]
	if !ok {
		return domain.Nomination{}, ErrAwardNotFound
	}
	if check != nil {
		if err := check(award); err != nil {
			return domain.Nomination{}, err
		}
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.nominations[n.ID] = n
	r.nominationOrder = append(r.nominationOrder, n.ID)

	return n, nil
}

func (r *AwardRepository) FindNomination(_ context.Context, id string) (domain.Nomination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.nominations[id]
	if !ok {
		return domain.Nomination{}, ErrNominationNotFound
	}

	return n, nil
}

// ListNominations returns nominations in creation order, limited to one award
// when awardID is not empty.
func (r *AwardRepository) ListNominations(_ context.Context, awardID string) ([]domain.Nomination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nominations := make([]domain.Nomination, 0)
	for _, id := range r.nominationOrder {
		n := r.nominations[id]
		if awardID != "" && n.AwardID != awardID {
			continue
		}
		nominations = append(nominations, n)
	}

	return nominations, nil
}

// InsertVote records vote and bumps the nomination counter in one critical
// section. check sees the parent award and the nomination before the
// duplicate test.
func (r *AwardRepository) InsertVote(_ context.Context, vote domain.Vote, check func(domain.Award, domain.Nomination) error) (domain.Vote, domain.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nominations[vote.NominationID]
	if !ok {
		return domain.Vote{}, domain.Nomination{}, ErrNominationNotFound
	}
	award, ok := r.awards[n.AwardID]
	if !ok {
		return domain.Vote{}, domain.Nomination{}, ErrAwardNotFound
	}
	if check != nil {
		if err := check(award, n); err != nil {
			return domain.Vote{}, domain.Nomination{}, err
		}
	}

	key := voteKey{userID: vote.UserID, nominationID: vote.NominationID}
	if _, voted := r.voteIndex[key]; voted {
		return domain.Vote{}, domain.Nomination{}, ErrDuplicateVote
	}

	if vote.ID == "" {
		vote.ID = uuid.NewString()
	}
	r.votes[vote.ID] = vote
	r.voteOrder = append(r.voteOrder, vote.ID)
	r.voteIndex[key] = struct{}{}

	n.VoteCount++
	r.nominations[n.ID] = n

	return vote, n, nil
}

// ListVotesByUser returns the user's votes in the order they were cast.
func (r *AwardRepository) ListVotesByUser(_ context.Context, userID string) ([]domain.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	votes := make([]domain.Vote, 0)
	for _, id := range r.voteOrder {
		if v := r.votes[id]; v.UserID == userID {
			votes = append(votes, v)
		}
	}

	return votes, nil
}

func (r *AwardRepository) CountVotes(_ context.Context, nominationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.nominations[nominationID]; !ok {
		return 0, ErrNominationNotFound
	}

	count := 0
	for _, v := range r.votes {
		if v.NominationID == nominationID {
			count++
		}
	}

	return count, nil
}

func (r *AwardRepository) TotalVotes(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.votes), nil
}

// UpdateNominationStatuses sets the status of every nomination of awardID:
// the ids in winners become winners, the rest stay or return to active.
func (r *AwardRepository) UpdateNominationStatuses(_ context.Context, awardID string, winners map[string]bool) ([]domain.Nomination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.awards[awardID]; !ok {
		return nil, ErrAwardNotFound
	}

	updated := make([]domain.Nomination, 0)
	for _, id := range r.nominationOrder {
		n := r.nominations[id]
		if n.AwardID != awardID {
			continue
		}
		n.Status = domain.NominationActive
		if winners[id] {
			n.Status = domain.NominationWinner
		}
		r.nominations[id] = n
		updated = append(updated, n)
	}

	return updated, nil
}
