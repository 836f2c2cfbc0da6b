package storage

import (
	"context"

	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/alex-pricope/elevate-awards/logging"
)

// Persister writes every VoteStore mutation through to durable storage.
type Persister struct {
	Votes   VoteStorage
	Periods VotingPeriodStorage
}

func (p *Persister) SaveVote(ctx context.Context, vote awards.Vote, position int) error {
	return p.Votes.Put(ctx, FromAwardVote(vote, position))
}

func (p *Persister) SaveVotingPeriod(ctx context.Context, period awards.VotingPeriod) error {
	return p.Periods.Put(ctx, FromAwardPeriod(period))
}

func (p *Persister) DeleteAllVotes(ctx context.Context) error {
	return p.Votes.DeleteAll(ctx)
}

// LoadVotes reads the stored vote log back in position order.
func (p *Persister) LoadVotes(ctx context.Context) ([]awards.Vote, error) {
	stored, err := p.Votes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	votes := make([]awards.Vote, 0, len(stored))
	for _, v := range stored {
		votes = append(votes, v.ToAwardVote())
	}
	return votes, nil
}

// LoadState rebuilds the initial VoteStore state. A missing period loads as closed.
func (p *Persister) LoadState(ctx context.Context) (awards.State, error) {
	votes, err := p.LoadVotes(ctx)
	if err != nil {
		return awards.State{}, err
	}

	state := awards.State{Votes: votes}
	period, err := p.Periods.Get(ctx)
	if err != nil {
		return awards.State{}, err
	}
	if period != nil {
		state.Period = period.ToAwardPeriod()
	}

	logging.Log.Infof("VOTE: loaded %d votes, voting open=%t", len(votes), state.Period.IsOpen)
	return state, nil
}
