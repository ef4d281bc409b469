// internal/matching/service.go

package matching

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileIncomplete = errors.New("profile is incomplete")
)

type Service interface {
	FindMatches(ctx context.Context, userID string, params *FindMatchesParams) (*MatchOutcome, error)
	MatchWithUser(ctx context.Context, userID, targetID string) (*SingleMatchResponse, error)
	RefreshMatches(ctx context.Context, userID string) (*RefreshResponse, error)
	StatsSummary(ctx context.Context, userID string) (*StatsSummary, error)
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
	NotifyMatches(ctx context.Context, userID string) error
	NotifyNewProfile(ctx context.Context, newUserID string) error
}

type service struct {
	repo     Repository
	engine   *Engine
	cache    *redis.Client
	cacheTTL time.Duration
	notifier Notifier
}

// NewService wires the engine to storage, cache and notifications.
// cache may be nil, in which case every run recomputes.
func NewService(repo Repository, engine *Engine, cache *redis.Client, cacheTTL time.Duration, notifier Notifier) Service {
	return &service{
		repo:     repo,
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		notifier: notifier,
	}
}

const cacheKeyPrefix = "matching:results:"

// FindMatches loads the seeker and candidate pool and runs the engine.
// Unfiltered default-shaped requests are served from cache when possible;
// a location filter or a non-default minScore always recomputes because the
// cached outcome was built from a different candidate pool.
func (s *service) FindMatches(ctx context.Context, userID string, params *FindMatchesParams) (*MatchOutcome, error) {
	if params == nil {
		params = &FindMatchesParams{}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	cacheable := params.Location == "" && params.MinScore == 0
	if cacheable {
		if outcome, ok := s.cachedOutcome(ctx, userID); ok {
			recordCacheHit(true)
			if len(outcome.Matches) > limit {
				outcome.Matches = outcome.Matches[:limit]
			}
			return outcome, nil
		}
		recordCacheHit(false)
	}

	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCandidates(ctx, userID, params.Location)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	// Cacheable runs are computed uncapped so the stored outcome can serve
	// any later limit; the caller's limit is applied after.
	runLimit := limit
	if cacheable {
		runLimit = MaxCandidates
	}
	outcome := s.engine.FindMatches(seeker, candidates, runLimit, params.MinScore)
	recordMatchRun("api", outcome, time.Since(start))

	if cacheable {
		s.storeOutcome(ctx, userID, outcome)
		if len(outcome.Matches) > limit {
			outcome.Matches = outcome.Matches[:limit]
		}
	}
	return outcome, nil
}

// MatchWithUser scores exactly one pair and reports either the full match
// result or the fact that a deal-breaker excluded it.
func (s *service) MatchWithUser(ctx context.Context, userID, targetID string) (*SingleMatchResponse, error) {
	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	target, err := s.repo.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcome := s.engine.FindMatches(seeker, []*Profile{target}, 1, 0)
	recordMatchRun("single", outcome, time.Since(start))

	if len(outcome.Matches) == 0 {
		return &SingleMatchResponse{
			Compatible: false,
			UserID:     targetID,
			Reason:     "Incompatible due to deal-breakers or incomplete profiles",
		}, nil
	}

	match := outcome.Matches[0]
	return &SingleMatchResponse{
		Compatible: true,
		UserID:     targetID,
		Match:      &match,
	}, nil
}

// RefreshMatches drops the cached outcome and recomputes with a wider limit,
// for use after a profile update.
func (s *service) RefreshMatches(ctx context.Context, userID string) (*RefreshResponse, error) {
	s.invalidate(ctx, userID)

	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCandidates(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	// The cached outcome must stay uncapped so later FindMatches calls can
	// apply their own limits; only the response is trimmed.
	start := time.Now()
	outcome := s.engine.FindMatches(seeker, candidates, MaxCandidates, 0)
	recordMatchRun("refresh", outcome, time.Since(start))

	s.storeOutcome(ctx, userID, outcome)

	matches := outcome.Matches
	if len(matches) > RefreshLimit {
		matches = matches[:RefreshLimit]
	}

	return &RefreshResponse{
		Message:                "Matches refreshed successfully",
		MatchCount:             len(matches),
		TotalCandidates:        outcome.TotalCandidates,
		FilteredByDealBreakers: outcome.FilteredByDealBreakers,
		Matches:                matches,
	}, nil
}

// RefreshLimit widens the result set on an explicit refresh.
const RefreshLimit = 50

func (s *service) StatsSummary(ctx context.Context, userID string) (*StatsSummary, error) {
	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.repo.CountCompleteProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCandidates(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcome := s.engine.FindMatches(seeker, candidates, StatsLimit, 0)
	recordMatchRun("stats", outcome, time.Since(start))

	var high, medium, low int
	for _, m := range outcome.Matches {
		switch {
		case m.CompatibilityScore >= 80:
			high++
		case m.CompatibilityScore >= 50:
			medium++
		default:
			low++
		}
	}

	summary := &StatsSummary{
		ProfileComplete:        true,
		TotalPotentialMatches:  totalUsers,
		FilteredByDealBreakers: outcome.FilteredByDealBreakers,
		CompatibleMatches:      len(outcome.Matches),
		ScoreDistribution: ScoreDistribution{
			High:   high,
			Medium: medium,
			Low:    low,
		},
	}
	if len(outcome.Matches) > 0 {
		summary.TopMatchScore = &outcome.Matches[0].CompatibilityScore
	}
	return summary, nil
}

// StatsLimit bounds the match list examined for the summary distribution.
const StatsLimit = 100

func (s *service) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.repo.CountCompleteProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListCandidates(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcome := s.engine.FindMatches(seeker, candidates, RefreshLimit, 0)
	recordMatchRun("dashboard", outcome, time.Since(start))

	var high, medium int
	for _, m := range outcome.Matches {
		switch {
		case m.CompatibilityScore >= 80:
			high++
		case m.CompatibilityScore >= 50:
			medium++
		}
	}

	topMatches := outcome.Matches
	if len(topMatches) > 5 {
		topMatches = topMatches[:5]
	}

	dashboard := &Dashboard{
		ProfileComplete: true,
		Stats: DashboardStats{
			TotalPotentialMatches: totalUsers,
			CompatibleMatches:     len(outcome.Matches),
			HighCompatibility:     high,
			MediumCompatibility:   medium,
		},
		TopMatches: topMatches,
	}
	if len(outcome.Matches) > 0 {
		dashboard.Stats.TopMatchScore = &outcome.Matches[0].CompatibilityScore
	}
	return dashboard, nil
}

func (s *service) NotifyMatches(ctx context.Context, userID string) error {
	if s.notifier == nil {
		return nil
	}

	seeker, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	candidates, err := s.repo.ListCandidates(ctx, userID, "")
	if err != nil {
		return err
	}

	start := time.Now()
	outcome := s.engine.FindMatches(seeker, candidates, RefreshLimit, NotifyMinScore)
	recordMatchRun("notify", outcome, time.Since(start))

	email, err := s.repo.GetEmail(ctx, userID)
	if err != nil {
		return err
	}

	return s.notifier.NotifyMatches(ctx, seeker, email, outcome.Matches)
}

// NotifyNewProfile fans out to existing users when a profile is completed:
// anyone the newcomer scores NotifyMinScore or better with gets an email.
// Intended to be called once from the profile-completion flow.
func (s *service) NotifyNewProfile(ctx context.Context, newUserID string) error {
	if s.notifier == nil {
		return nil
	}

	newcomer, err := s.repo.GetProfile(ctx, newUserID)
	if err != nil {
		return err
	}
	existing, err := s.repo.ListCandidates(ctx, newUserID, "")
	if err != nil {
		return err
	}

	for _, user := range existing {
		outcome := s.engine.FindMatches(user, []*Profile{newcomer}, 1, NotifyMinScore)
		if len(outcome.Matches) == 0 {
			continue
		}

		email, err := s.repo.GetEmail(ctx, user.ID)
		if err != nil {
			log.Printf("matching: no email for user %s, skipping notification: %v", user.ID, err)
			continue
		}
		if err := s.notifier.NotifyMatches(ctx, user, email, outcome.Matches); err != nil {
			log.Printf("matching: new-profile notification failed for user %s: %v", user.ID, err)
		}
		// The newcomer changes everyone's result set.
		s.invalidate(ctx, user.ID)
	}
	return nil
}

// ---- cache helpers ----

func (s *service) cachedOutcome(ctx context.Context, userID string) (*MatchOutcome, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, cacheKeyPrefix+userID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("matching: cache read failed for user %s: %v", userID, err)
		}
		return nil, false
	}

	var outcome MatchOutcome
	if err := json.Unmarshal(payload, &outcome); err != nil {
		log.Printf("matching: dropping corrupt cache entry for user %s: %v", userID, err)
		s.invalidate(ctx, userID)
		return nil, false
	}
	return &outcome, true
}

func (s *service) storeOutcome(ctx context.Context, userID string, outcome *MatchOutcome) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(outcome)
	if err != nil {
		log.Printf("matching: cache marshal failed for user %s: %v", userID, err)
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+userID, payload, s.cacheTTL).Err(); err != nil {
		log.Printf("matching: cache write failed for user %s: %v", userID, err)
	}
}

func (s *service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyPrefix+userID).Err(); err != nil {
		log.Printf("matching: cache invalidation failed for user %s: %v", userID, err)
	}
}
