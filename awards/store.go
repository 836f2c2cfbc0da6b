package awards

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alex-pricope/elevate-awards/logging"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Persister is told about every mutation while the store still holds its lock.
// A non-nil error rolls the in-memory mutation back.
type Persister interface {
	SaveVote(ctx context.Context, vote Vote, position int) error
	SaveVotingPeriod(ctx context.Context, period VotingPeriod) error
	DeleteAllVotes(ctx context.Context) error
}

// VoteLoader is implemented by persisters that can read back what they hold.
// ClearAllVotes uses it to resync after a clear that failed partway.
type VoteLoader interface {
	LoadVotes(ctx context.Context) ([]Vote, error)
}

type StoreOption func(*VoteStore)

func WithPersister(p Persister) StoreOption {
	return func(s *VoteStore) { s.persister = p }
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *VoteStore) { s.now = now }
}

func WithIDGenerator(gen func() (string, error)) StoreOption {
	return func(s *VoteStore) { s.newID = gen }
}

// VoteStore owns the vote collection and the voting period.
// All mutations are serialized behind mu; reads return copies.
type VoteStore struct {
	mu sync.RWMutex

	categories []AwardCategory
	catalog    map[string]struct{}
	votes      []Vote
	period     VotingPeriod

	persister Persister
	now       func() time.Time
	newID     func() (string, error)
}

func NewVoteStore(categories []AwardCategory, state State, opts ...StoreOption) *VoteStore {
	s := &VoteStore{
		categories: append([]AwardCategory(nil), categories...),
		catalog:    make(map[string]struct{}, len(categories)),
		votes:      append([]Vote(nil), state.Votes...),
		period:     state.Period,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      newVoteID,
	}
	for _, c := range categories {
		s.catalog[c.ID] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newVoteID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return "vote-" + id, nil
}

// CastVote records voterID's nomination in categoryID. A second vote for the same
// (voter, category) overwrites the first in place and keeps its ID and position.
func (s *VoteStore) CastVote(ctx context.Context, categoryID, voterID, nomineeID, reason string) (Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog[categoryID]; !ok {
		logging.Log.Warnf("AWARDS: vote rejected, unknown category %q", categoryID)
		return Vote{}, ErrInvalidCategory
	}
	if !s.period.IsOpen {
		logging.Log.Warnf("AWARDS: vote rejected for %s, voting is closed", categoryID)
		return Vote{}, ErrVotingClosed
	}
	voterID = strings.TrimSpace(voterID)
	nomineeID = strings.TrimSpace(nomineeID)
	if voterID == "" || nomineeID == "" {
		return Vote{}, ErrInvalidVote
	}

	for i := range s.votes {
		if s.votes[i].VoterID != voterID || s.votes[i].CategoryID != categoryID {
			continue
		}
		prev := s.votes[i]
		s.votes[i].NomineeID = nomineeID
		s.votes[i].Reason = reason
		s.votes[i].Timestamp = s.now()
		if s.persister != nil {
			if err := s.persister.SaveVote(ctx, s.votes[i], i); err != nil {
				s.votes[i] = prev
				logging.Log.Errorf("AWARDS: failed to persist vote %s: %v", prev.ID, err)
				return Vote{}, fmt.Errorf("persist vote: %w", err)
			}
		}
		logging.Log.Infof("AWARDS: vote %s updated in %s", prev.ID, categoryID)
		return s.votes[i], nil
	}

	id, err := s.newID()
	if err != nil {
		logging.Log.Errorf("AWARDS: failed to generate vote id: %v", err)
		return Vote{}, fmt.Errorf("generate vote id: %w", err)
	}
	vote := Vote{
		ID:         id,
		CategoryID: categoryID,
		VoterID:    voterID,
		NomineeID:  nomineeID,
		Reason:     reason,
		Timestamp:  s.now(),
	}
	s.votes = append(s.votes, vote)
	if s.persister != nil {
		if err := s.persister.SaveVote(ctx, vote, len(s.votes)-1); err != nil {
			s.votes = s.votes[:len(s.votes)-1]
			logging.Log.Errorf("AWARDS: failed to persist vote %s: %v", vote.ID, err)
			return Vote{}, fmt.Errorf("persist vote: %w", err)
		}
	}
	logging.Log.Infof("AWARDS: vote %s created in %s", vote.ID, categoryID)
	return vote, nil
}

// SetVotingPeriod replaces IsOpen. Nil dates keep their previous value.
func (s *VoteStore) SetVotingPeriod(ctx context.Context, isOpen bool, startDate, endDate *time.Time) (VotingPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.period
	s.period.IsOpen = isOpen
	if startDate != nil {
		s.period.StartDate = startDate.UTC()
	}
	if endDate != nil {
		s.period.EndDate = endDate.UTC()
	}
	if s.persister != nil {
		if err := s.persister.SaveVotingPeriod(ctx, s.period); err != nil {
			s.period = prev
			logging.Log.Errorf("AWARDS: failed to persist voting period: %v", err)
			return VotingPeriod{}, fmt.Errorf("persist voting period: %w", err)
		}
	}
	logging.Log.Infof("AWARDS: voting period set, open=%t", isOpen)
	return s.period, nil
}

// ClearAllVotes empties the vote collection. The voting period is untouched.
// When the persisted clear fails, the collection is reloaded from the persister
// if it is a VoteLoader, since the clear may have stopped partway.
func (s *VoteStore) ClearAllVotes(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.votes
	s.votes = nil
	if s.persister != nil {
		if err := s.persister.DeleteAllVotes(ctx); err != nil {
			logging.Log.Errorf("AWARDS: failed to clear persisted votes: %v", err)
			s.votes = s.resyncVotes(ctx, prev)
			return fmt.Errorf("clear votes: %w", err)
		}
	}
	logging.Log.Infof("AWARDS: cleared %d votes", len(prev))
	return nil
}

func (s *VoteStore) resyncVotes(ctx context.Context, prev []Vote) []Vote {
	loader, ok := s.persister.(VoteLoader)
	if !ok {
		return prev
	}
	votes, err := loader.LoadVotes(ctx)
	if err != nil {
		logging.Log.Errorf("AWARDS: failed to reload votes after a failed clear: %v", err)
		return prev
	}
	logging.Log.Warnf("AWARDS: reloaded %d of %d votes after a failed clear", len(votes), len(prev))
	return votes
}

// ListVotes returns the votes in append order.
func (s *VoteStore) ListVotes() []Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyVotes(s.votes)
}

func (s *VoteStore) Categories() []AwardCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AwardCategory(nil), s.categories...)
}

func (s *VoteStore) VotingPeriod() VotingPeriod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.period
}

func (s *VoteStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Votes:      copyVotes(s.votes),
		Categories: append([]AwardCategory(nil), s.categories...),
		Period:     s.period,
	}
}

func copyVotes(votes []Vote) []Vote {
	out := make([]Vote, len(votes))
	copy(out, votes)
	return out
}
