package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/domain"
	"github.com/neuroljus/neurohus/internal/repository"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

var testStart = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type awardFixture struct {
	svc   *AwardService
	repo  *repository.AwardRepository
	clock *testClock
	award domain.Award
	first domain.Nomination
	other domain.Nomination
}

func newAwardFixture(t *testing.T) awardFixture {
	t.Helper()

	clock := &testClock{t: testStart}
	repo := repository.NewAwardRepository()
	svc := NewAwardService(repo, clock.now)
	ctx := context.Background()

	award, err := svc.CreateAward(ctx, domain.Award{
		ID:          "årets-test",
		Name:        "Årets Test",
		Year:        2024,
		VotingStart: testStart.Add(-time.Hour),
		VotingEnd:   testStart.Add(time.Hour),
	})
	require.NoError(t, err)

	first, err := svc.CreateNomination(ctx, domain.Nomination{
		AwardID:               award.ID,
		Type:                  domain.NomineeOrganization,
		NomineeOrganizationID: "verksamhet-1",
		NominatedBy:           "anna",
	})
	require.NoError(t, err)

	other, err := svc.CreateNomination(ctx, domain.Nomination{
		AwardID:         award.ID,
		Type:            domain.NomineePerson,
		NomineePersonID: "person-1",
		NominatedBy:     "erik",
	})
	require.NoError(t, err)

	return awardFixture{svc: svc, repo: repo, clock: clock, award: award, first: first, other: other}
}

func TestAwardService_CreateAward(t *testing.T) {
	svc := NewAwardService(repository.NewAwardRepository(), func() time.Time { return testStart })

	_, err := svc.CreateAward(context.Background(), domain.Award{
		Name:        "Baklänges",
		VotingStart: testStart,
		VotingEnd:   testStart.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	a, err := svc.CreateAward(context.Background(), domain.Award{
		Name:        "Framlänges",
		VotingStart: testStart,
		VotingEnd:   testStart.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.True(t, a.Active)
	assert.Equal(t, testStart, a.CreatedAt)
}

func TestAwardService_CreateNomination(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	assert.Equal(t, domain.NominationActive, f.first.Status)
	assert.Zero(t, f.first.VoteCount)

	_, err := f.svc.CreateNomination(ctx, domain.Nomination{
		AwardID:               f.award.ID,
		Type:                  domain.NomineeOrganization,
		NomineeOrganizationID: "verksamhet-2",
		NomineePersonID:       "person-2",
	})
	assert.ErrorIs(t, err, ErrInvalidNomination)

	_, err = f.svc.CreateNomination(ctx, domain.Nomination{
		AwardID:           "finns-inte",
		Type:              domain.NomineeProvider,
		NomineeProviderID: "assistent-1",
	})
	assert.ErrorIs(t, err, ErrAwardNotFound)

	_, err = f.repo.CreateAward(ctx, domain.Award{
		ID:          "vilande",
		Name:        "Vilande",
		VotingStart: testStart.Add(-time.Hour),
		VotingEnd:   testStart.Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = f.svc.CreateNomination(ctx, domain.Nomination{
		AwardID:           "vilande",
		Type:              domain.NomineeProvider,
		NomineeProviderID: "assistent-1",
	})
	assert.ErrorIs(t, err, ErrAwardInactive)

	f.clock.advance(2 * time.Hour)
	_, err = f.svc.CreateNomination(ctx, domain.Nomination{
		AwardID:           f.award.ID,
		Type:              domain.NomineeProvider,
		NomineeProviderID: "assistent-1",
	})
	assert.ErrorIs(t, err, ErrWindowClosed)
}

func TestAwardService_CastVote(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	vote, n, err := f.svc.CastVote(ctx, f.first.ID, "voter-1", "Varm personal")
	require.NoError(t, err)
	assert.NotEmpty(t, vote.ID)
	assert.Equal(t, "Varm personal", vote.Reason)
	assert.Equal(t, 1, n.VoteCount)

	_, _, err = f.svc.CastVote(ctx, f.first.ID, "voter-1", "igen")
	assert.ErrorIs(t, err, ErrDuplicateVote)

	got, err := f.repo.FindNomination(ctx, f.first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VoteCount)

	_, n, err = f.svc.CastVote(ctx, f.first.ID, "voter-2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n.VoteCount)

	_, _, err = f.svc.CastVote(ctx, f.other.ID, "voter-1", "")
	require.NoError(t, err, "one vote per nomination, not per award")

	_, _, err = f.svc.CastVote(ctx, "finns-inte", "voter-1", "")
	assert.ErrorIs(t, err, ErrNominationNotFound)
}

func TestAwardService_CastVoteOutsideWindow(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	f.clock.t = f.award.VotingStart.Add(-time.Second)
	_, _, err := f.svc.CastVote(ctx, f.first.ID, "voter-1", "")
	assert.ErrorIs(t, err, ErrWindowClosed)

	f.clock.t = f.award.VotingEnd
	_, _, err = f.svc.CastVote(ctx, f.first.ID, "voter-1", "")
	require.NoError(t, err, "the window end is inclusive")

	f.clock.t = f.award.VotingEnd.Add(time.Second)
	_, _, err = f.svc.CastVote(ctx, f.first.ID, "voter-2", "")
	assert.ErrorIs(t, err, ErrWindowClosed)

	got, err := f.repo.FindNomination(ctx, f.first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.VoteCount)
}

func TestAwardService_Results(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	res, err := f.svc.Results(ctx, f.award.ID)
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Zero(t, res.TotalVotes)
	assert.Equal(t, f.first.ID, res.Results[0].Nomination.ID, "no votes keeps creation order")
	assert.Equal(t, f.other.ID, res.Results[1].Nomination.ID)
	for _, r := range res.Results {
		assert.Zero(t, r.Percent)
	}

	_, _, err = f.svc.CastVote(ctx, f.first.ID, "voter-1", "")
	require.NoError(t, err)
	for _, voter := range []string{"voter-1", "voter-2", "voter-3"} {
		_, _, err = f.svc.CastVote(ctx, f.other.ID, voter, "")
		require.NoError(t, err)
	}

	res, err = f.svc.Results(ctx, f.award.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalVotes)
	assert.Equal(t, 2, res.NominationCount)
	assert.True(t, res.VotingOpen)
	assert.Equal(t, "Årets Test", res.Award.Name)
	require.Len(t, res.Results, 2)
	assert.Equal(t, f.other.ID, res.Results[0].Nomination.ID)
	assert.Equal(t, 3, res.Results[0].Votes)
	assert.Equal(t, 75.0, res.Results[0].Percent)
	assert.Equal(t, 1, res.Results[1].Votes)
	assert.Equal(t, 25.0, res.Results[1].Percent)

	_, err = f.svc.Results(ctx, "finns-inte")
	assert.ErrorIs(t, err, ErrAwardNotFound)
}

func TestAwardService_TiesKeepCreationOrder(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	third, err := f.svc.CreateNomination(ctx, domain.Nomination{
		AwardID:           f.award.ID,
		Type:              domain.NomineeProvider,
		NomineeProviderID: "utförare-1",
		NominatedBy:       "lisa",
	})
	require.NoError(t, err)

	votes := map[string][]string{
		f.first.ID: {"voter-1", "voter-2"},
		f.other.ID: {"voter-1"},
		third.ID:   {"voter-3", "voter-4"},
	}
	for nominationID, voters := range votes {
		for _, voter := range voters {
			_, _, err = f.svc.CastVote(ctx, nominationID, voter, "")
			require.NoError(t, err)
		}
	}
	want := []string{f.first.ID, third.ID, f.other.ID}

	res, err := f.svc.Results(ctx, f.award.ID)
	require.NoError(t, err)
	got := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		got = append(got, r.Nomination.ID)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 40.0, res.Results[0].Percent)
	assert.Equal(t, 40.0, res.Results[1].Percent)
	assert.Equal(t, 20.0, res.Results[2].Percent)

	list, err := f.svc.ListNominations(ctx, f.award.ID)
	require.NoError(t, err)
	got = got[:0]
	for _, n := range list {
		got = append(got, n.ID)
	}
	assert.Equal(t, want, got)
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 0.0, percentOf(0, 0))
	assert.Equal(t, 33.3, percentOf(1, 3))
	assert.Equal(t, 66.7, percentOf(2, 3))
	assert.Equal(t, 100.0, percentOf(5, 5))
	assert.Equal(t, 6.2, percentOf(1, 16), "halves round to even")
	assert.Equal(t, 18.8, percentOf(3, 16))
}

func TestAwardService_ListNominations(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.CastVote(ctx, f.other.ID, "voter-1", "")
	require.NoError(t, err)

	list, err := f.svc.ListNominations(ctx, f.award.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, f.other.ID, list[0].ID)

	_, err = f.svc.ListNominations(ctx, "finns-inte")
	assert.ErrorIs(t, err, ErrAwardNotFound)
}

func TestAwardService_UserVotesAndStatistics(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.CastVote(ctx, f.first.ID, "voter-1", "")
	require.NoError(t, err)
	_, _, err = f.svc.CastVote(ctx, f.other.ID, "voter-1", "")
	require.NoError(t, err)

	votes, err := f.svc.UserVotes(ctx, "voter-1")
	require.NoError(t, err)
	require.Len(t, votes, 2)
	require.NotNil(t, votes[0].Award)
	assert.Equal(t, "Årets Test", votes[0].Award.Name)
	assert.Equal(t, f.first.ID, votes[0].Nomination.ID)

	none, err := f.svc.UserVotes(ctx, "voter-9")
	require.NoError(t, err)
	assert.Empty(t, none)

	stats, err := f.svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAwards)
	assert.Equal(t, 2, stats.TotalNominations)
	assert.Equal(t, 2, stats.TotalVotes)
	assert.Equal(t, map[string]int{"Årets Test": 2}, stats.VotesPerAward)

	overview, err := f.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.OpenVotings)
	require.Len(t, overview.Awards, 1)
	assert.Equal(t, 2, overview.Awards[0].NominationCount)
}

func TestAwardService_DeclareWinners(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.CastVote(ctx, f.other.ID, "voter-1", "")
	require.NoError(t, err)

	_, err = f.svc.DeclareWinners(ctx, f.award.ID)
	assert.ErrorIs(t, err, ErrVotingOpen)

	f.clock.advance(2 * time.Hour)
	list, err := f.svc.DeclareWinners(ctx, f.award.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, f.other.ID, list[0].ID)
	assert.Equal(t, domain.NominationWinner, list[0].Status)
	assert.Equal(t, domain.NominationActive, list[1].Status)
}

func TestAwardService_DeclareWinnersTiesAndNoVotes(t *testing.T) {
	f := newAwardFixture(t)
	ctx := context.Background()
	f.clock.advance(2 * time.Hour)

	list, err := f.svc.DeclareWinners(ctx, f.award.ID)
	require.NoError(t, err)
	for _, n := range list {
		assert.Equal(t, domain.NominationActive, n.Status)
	}

	g := newAwardFixture(t)
	_, _, err = g.svc.CastVote(ctx, g.first.ID, "voter-1", "")
	require.NoError(t, err)
	_, _, err = g.svc.CastVote(ctx, g.other.ID, "voter-2", "")
	require.NoError(t, err)
	g.clock.advance(2 * time.Hour)

	list, err = g.svc.DeclareWinners(ctx, g.award.ID)
	require.NoError(t, err)
	for _, n := range list {
		assert.Equal(t, domain.NominationWinner, n.Status)
	}
}
