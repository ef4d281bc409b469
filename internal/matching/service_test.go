// internal/matching/service_test.go

package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository serves profiles from memory.
type fakeRepository struct {
	profiles map[string]*Profile
	emails   map[string]string
}

func newFakeRepository(profiles ...*Profile) *fakeRepository {
	repo := &fakeRepository{
		profiles: make(map[string]*Profile),
		emails:   make(map[string]string),
	}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
		repo.emails[p.ID] = p.ID + "@example.com"
	}
	return repo
}

func (r *fakeRepository) GetProfile(_ context.Context, userID string) (*Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return p, nil
}

func (r *fakeRepository) ListCandidates(_ context.Context, excludeID, location string) ([]*Profile, error) {
	var candidates []*Profile
	for _, p := range r.profiles {
		if p.ID == excludeID {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates, nil
}

func (r *fakeRepository) CountCompleteProfiles(_ context.Context, excludeID string) (int, error) {
	count := 0
	for id := range r.profiles {
		if id != excludeID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepository) GetEmail(_ context.Context, userID string) (string, error) {
	email, ok := r.emails[userID]
	if !ok {
		return "", ErrUserNotFound
	}
	return email, nil
}

// fakeNotifier records every notification call.
type fakeNotifier struct {
	calls []notifierCall
}

type notifierCall struct {
	seekerID string
	email    string
	matches  []MatchResult
}

func (n *fakeNotifier) NotifyMatches(_ context.Context, seeker *Profile, email string, matches []MatchResult) error {
	n.calls = append(n.calls, notifierCall{seekerID: seeker.ID, email: email, matches: matches})
	return nil
}

func newTestService(t *testing.T, repo Repository, notifier Notifier) Service {
	t.Helper()
	engine := newTestEngine(t)
	return NewService(repo, engine, nil, 0, notifier)
}

func TestServiceFindMatches(t *testing.T) {
	repo := newFakeRepository(fullProfile("seeker"), fullProfile("twin"))
	svc := newTestService(t, repo, nil)

	outcome, err := svc.FindMatches(context.Background(), "seeker", nil)
	require.NoError(t, err)
	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, "twin", outcome.Matches[0].UserID)
	assert.Equal(t, 97.9, outcome.Matches[0].CompatibilityScore)
}

func TestServiceFindMatchesUnknownUser(t *testing.T) {
	svc := newTestService(t, newFakeRepository(), nil)

	_, err := svc.FindMatches(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestServiceFindMatchesAppliesLimit(t *testing.T) {
	repo := newFakeRepository(
		fullProfile("seeker"),
		fullProfile("c1"),
		fullProfile("c2"),
		fullProfile("c3"),
	)
	svc := newTestService(t, repo, nil)

	outcome, err := svc.FindMatches(context.Background(), "seeker", &FindMatchesParams{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, outcome.Matches, 2)
}

func TestServiceFindMatchesMinScore(t *testing.T) {
	repo := newFakeRepository(fullProfile("seeker"), baseProfile("bare", "bare"))
	svc := newTestService(t, repo, nil)

	outcome, err := svc.FindMatches(context.Background(), "seeker", &FindMatchesParams{MinScore: 90})
	require.NoError(t, err)
	assert.Empty(t, outcome.Matches)
}

func TestServiceMatchWithUser(t *testing.T) {
	t.Run("compatible pair returns the match", func(t *testing.T) {
		repo := newFakeRepository(fullProfile("seeker"), fullProfile("target"))
		svc := newTestService(t, repo, nil)

		resp, err := svc.MatchWithUser(context.Background(), "seeker", "target")
		require.NoError(t, err)
		assert.True(t, resp.Compatible)
		assert.Equal(t, "target", resp.UserID)
		require.NotNil(t, resp.Match)
		assert.Equal(t, 97.9, resp.Match.CompatibilityScore)
	})

	t.Run("deal-breaker pair reports incompatible", func(t *testing.T) {
		seeker := withDealBreakers(fullProfile("seeker"), DealBreakers{NoSmokers: true})
		target := withLifestyle(fullProfile("target"), LifestylePreferences{Smokes: boolPtr(true)})
		repo := newFakeRepository(seeker, target)
		svc := newTestService(t, repo, nil)

		resp, err := svc.MatchWithUser(context.Background(), "seeker", "target")
		require.NoError(t, err)
		assert.False(t, resp.Compatible)
		assert.Equal(t, "Incompatible due to deal-breakers or incomplete profiles", resp.Reason)
		assert.Nil(t, resp.Match)
	})

	t.Run("missing target propagates not found", func(t *testing.T) {
		repo := newFakeRepository(fullProfile("seeker"))
		svc := newTestService(t, repo, nil)

		_, err := svc.MatchWithUser(context.Background(), "seeker", "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestServiceRefreshMatches(t *testing.T) {
	repo := newFakeRepository(fullProfile("seeker"), fullProfile("twin"), baseProfile("bare", "bare"))
	svc := newTestService(t, repo, nil)

	resp, err := svc.RefreshMatches(context.Background(), "seeker")
	require.NoError(t, err)
	assert.Equal(t, "Matches refreshed successfully", resp.Message)
	assert.Equal(t, 2, resp.MatchCount)
	assert.Equal(t, 1, resp.TotalCandidates)
	assert.Zero(t, resp.FilteredByDealBreakers)
}

func TestServiceRefreshMatchesCapsResponseOnly(t *testing.T) {
	profiles := []*Profile{fullProfile("seeker")}
	for i := 0; i < 60; i++ {
		profiles = append(profiles, fullProfile(fmt.Sprintf("cand%02d", i)))
	}
	repo := newFakeRepository(profiles...)
	svc := newTestService(t, repo, nil)

	resp, err := svc.RefreshMatches(context.Background(), "seeker")
	require.NoError(t, err)

	// The response shows the top RefreshLimit matches but stats still
	// describe the full candidate pool.
	assert.Len(t, resp.Matches, RefreshLimit)
	assert.Equal(t, RefreshLimit, resp.MatchCount)
	assert.Equal(t, 59, resp.TotalCandidates)
}

func TestServiceStatsSummary(t *testing.T) {
	repo := newFakeRepository(
		fullProfile("seeker"),
		fullProfile("twin"),         // scores ~97.9 -> high
		baseProfile("bare", "bare"), // scores 67.8 -> medium
	)
	svc := newTestService(t, repo, nil)

	summary, err := svc.StatsSummary(context.Background(), "seeker")
	require.NoError(t, err)
	assert.True(t, summary.ProfileComplete)
	assert.Equal(t, 2, summary.TotalPotentialMatches)
	assert.Equal(t, 2, summary.CompatibleMatches)
	assert.Equal(t, 1, summary.ScoreDistribution.High)
	assert.Equal(t, 1, summary.ScoreDistribution.Medium)
	assert.Zero(t, summary.ScoreDistribution.Low)
	require.NotNil(t, summary.TopMatchScore)
	assert.Equal(t, 97.9, *summary.TopMatchScore)
}

func TestServiceDashboard(t *testing.T) {
	repo := newFakeRepository(
		fullProfile("seeker"),
		fullProfile("c1"),
		fullProfile("c2"),
		fullProfile("c3"),
		fullProfile("c4"),
		fullProfile("c5"),
		fullProfile("c6"),
	)
	svc := newTestService(t, repo, nil)

	dashboard, err := svc.Dashboard(context.Background(), "seeker")
	require.NoError(t, err)
	assert.True(t, dashboard.ProfileComplete)
	assert.Equal(t, 6, dashboard.Stats.TotalPotentialMatches)
	assert.Equal(t, 6, dashboard.Stats.CompatibleMatches)
	assert.Equal(t, 6, dashboard.Stats.HighCompatibility)
	assert.Len(t, dashboard.TopMatches, 5)
}

func TestServiceNotifyMatches(t *testing.T) {
	t.Run("nil notifier is a no-op", func(t *testing.T) {
		repo := newFakeRepository(fullProfile("seeker"))
		svc := newTestService(t, repo, nil)
		assert.NoError(t, svc.NotifyMatches(context.Background(), "seeker"))
	})

	t.Run("qualifying matches reach the notifier", func(t *testing.T) {
		repo := newFakeRepository(fullProfile("seeker"), fullProfile("twin"))
		notifier := &fakeNotifier{}
		svc := newTestService(t, repo, notifier)

		require.NoError(t, svc.NotifyMatches(context.Background(), "seeker"))
		require.Len(t, notifier.calls, 1)
		call := notifier.calls[0]
		assert.Equal(t, "seeker", call.seekerID)
		assert.Equal(t, "seeker@example.com", call.email)
		require.Len(t, call.matches, 1)
		assert.Equal(t, "twin", call.matches[0].UserID)
	})

	t.Run("low scores never trigger an email", func(t *testing.T) {
		repo := newFakeRepository(fullProfile("seeker"), baseProfile("bare", "bare"))
		notifier := &fakeNotifier{}
		svc := newTestService(t, repo, notifier)

		require.NoError(t, svc.NotifyMatches(context.Background(), "seeker"))
		require.Len(t, notifier.calls, 1)
		assert.Empty(t, notifier.calls[0].matches)
	})
}

func TestServiceNotifyNewProfile(t *testing.T) {
	repo := newFakeRepository(fullProfile("newcomer"), fullProfile("resident"), baseProfile("bare", "bare"))
	notifier := &fakeNotifier{}
	svc := newTestService(t, repo, notifier)

	require.NoError(t, svc.NotifyNewProfile(context.Background(), "newcomer"))

	// Only the resident scores above the notification threshold against the
	// newcomer; the bare profile pair lands well below it.
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "resident", notifier.calls[0].seekerID)
	require.Len(t, notifier.calls[0].matches, 1)
	assert.Equal(t, "newcomer", notifier.calls[0].matches[0].UserID)
}
