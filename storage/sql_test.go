package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLPersister(t *testing.T) *Persister {
	t.Helper()

	db, err := OpenSQL("sqlite", filepath.Join(t.TempDir(), "awards.db"))
	require.NoError(t, err, "sqlite storage should open")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &Persister{
		Votes:   &SQLStorage{DB: db},
		Periods: &SQLPeriodStorage{DB: db},
	}
}

func TestOpenSQLUnknownDriver(t *testing.T) {
	_, err := OpenSQL("oracle", "whatever")

	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSQLPersister(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path - empty database loads a closed period", func(t *testing.T) {
		p := setupSQLPersister(t)

		state, err := p.LoadState(ctx)
		require.NoError(t, err)

		assert.Empty(t, state.Votes)
		assert.False(t, state.Period.IsOpen)
	})

	t.Run("Happy path - store writes survive a reload", func(t *testing.T) {
		p := setupSQLPersister(t)
		store := awards.NewVoteStore(awards.DefaultCategories(), awards.State{}, awards.WithPersister(p))

		_, err := store.SetVotingPeriod(ctx, true, nil, nil)
		require.NoError(t, err)
		first, err := store.CastVote(ctx, "sherpa", "alice", "bob", "mentor")
		require.NoError(t, err)
		_, err = store.CastVote(ctx, "sherpa", "carol", "dan", "")
		require.NoError(t, err)
		_, err = store.CastVote(ctx, "sherpa", "alice", "erin", "changed")
		require.NoError(t, err)

		state, err := p.LoadState(ctx)
		require.NoError(t, err)

		assert.True(t, state.Period.IsOpen)
		require.Len(t, state.Votes, 2, "Overwrite should update the stored row")
		assert.Equal(t, first.ID, state.Votes[0].ID, "Reload should keep vote log order")
		assert.Equal(t, "erin", state.Votes[0].NomineeID)
		assert.Equal(t, "changed", state.Votes[0].Reason)
		assert.Equal(t, "dan", state.Votes[1].NomineeID)

		reloaded := awards.NewVoteStore(awards.DefaultCategories(), state)
		assert.Equal(t,
			awards.Leaderboard(store.ListVotes(), 3),
			awards.Leaderboard(reloaded.ListVotes(), 3),
			"Reloaded store should rank identically")
	})

	t.Run("Happy path - clear removes stored votes but not the period", func(t *testing.T) {
		p := setupSQLPersister(t)
		store := awards.NewVoteStore(awards.DefaultCategories(), awards.State{}, awards.WithPersister(p))
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		_, err := store.SetVotingPeriod(ctx, true, &start, nil)
		require.NoError(t, err)
		_, err = store.CastVote(ctx, "sherpa", "alice", "bob", "")
		require.NoError(t, err)

		require.NoError(t, store.ClearAllVotes(ctx))

		state, err := p.LoadState(ctx)
		require.NoError(t, err)
		assert.Empty(t, state.Votes)
		assert.True(t, state.Period.IsOpen)
		assert.True(t, start.Equal(state.Period.StartDate))
	})
}
