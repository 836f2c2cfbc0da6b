package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	testutils "github.com/alex-pricope/elevate-awards/api/controllers/testing"
	"github.com/alex-pricope/elevate-awards/api/models"
	"github.com/alex-pricope/elevate-awards/api/transport"
	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/alex-pricope/elevate-awards/logging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "secret"

type failingPersister struct{}

func (failingPersister) SaveVote(context.Context, awards.Vote, int) error {
	return errors.New("storage down")
}

func (failingPersister) SaveVotingPeriod(context.Context, awards.VotingPeriod) error {
	return errors.New("storage down")
}

func (failingPersister) DeleteAllVotes(context.Context) error {
	return errors.New("storage down")
}

func setupTestAwardsRouter(t *testing.T, state awards.State, opts ...awards.StoreOption) (*awards.VoteStore, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()

	store := awards.NewVoteStore(awards.DefaultCategories(), state, opts...)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(transport.RequestIDMiddleware())
	NewAwardsController(store).RegisterRoutes(r)
	NewAdminController(store, testAdminToken).RegisterRoutes(r)

	return store, r
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), "Should unmarshal response: %s", string(body))
	return out
}

func TestCastVoteEndpoint(t *testing.T) {
	t.Run("Happy path - cast then re-cast keeps one vote", func(t *testing.T) {
		store, router := setupTestAwardsRouter(t, awards.State{Period: awards.VotingPeriod{IsOpen: true}})

		first := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "alice",
			NomineeID:  "bob",
			Reason:     "Always helps",
		}, nil)
		require.Equal(t, http.StatusOK, first.Code, "Expected 200 for first vote")
		created := decode[awards.Vote](t, first.Body.Bytes())
		assert.NotEmpty(t, created.ID, "Vote should have an ID")
		assert.Equal(t, "bob", created.NomineeID)

		second := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "alice",
			NomineeID:  "carol",
		}, nil)
		require.Equal(t, http.StatusOK, second.Code, "Expected 200 for re-vote")
		updated := decode[awards.Vote](t, second.Body.Bytes())

		assert.Equal(t, created.ID, updated.ID, "Re-vote should keep the vote ID")
		assert.Equal(t, "carol", updated.NomineeID)
		assert.Len(t, store.ListVotes(), 1, "Re-vote must not duplicate")
	})

	t.Run("Unhappy path - unknown category", func(t *testing.T) {
		_, router := setupTestAwardsRouter(t, awards.State{Period: awards.VotingPeriod{IsOpen: true}})

		res := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "best-dressed",
			VoterID:    "alice",
			NomineeID:  "bob",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for unknown category")
	})

	t.Run("Unhappy path - voting closed", func(t *testing.T) {
		store, router := setupTestAwardsRouter(t, awards.State{Votes: awards.SeedVotes()})

		res := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "alice",
			NomineeID:  "bob",
		}, nil)

		assert.Equal(t, http.StatusConflict, res.Code, "Expected 409 while voting is closed")
		assert.Len(t, store.ListVotes(), 14, "Collection should be unchanged")
	})

	t.Run("Unhappy path - blank voter while voting is closed", func(t *testing.T) {
		_, router := setupTestAwardsRouter(t, awards.State{})

		res := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "   ",
			NomineeID:  "bob",
		}, nil)

		assert.Equal(t, http.StatusConflict, res.Code, "A closed period should be reported before input errors")
	})

	t.Run("Unhappy path - missing fields", func(t *testing.T) {
		_, router := setupTestAwardsRouter(t, awards.State{Period: awards.VotingPeriod{IsOpen: true}})

		res := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", map[string]string{
			"categoryId": "sherpa",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for missing voter and nominee")

		res = testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "   ",
			NomineeID:  "bob",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code, "Expected 400 for blank voter")
	})

	t.Run("Unhappy path - storage failure", func(t *testing.T) {
		store, router := setupTestAwardsRouter(t,
			awards.State{Period: awards.VotingPeriod{IsOpen: true}},
			awards.WithPersister(failingPersister{}))

		res := testutils.PerformRequest(router, http.MethodPost, "/api/awards/votes", models.CastVoteRequest{
			CategoryID: "sherpa",
			VoterID:    "alice",
			NomineeID:  "bob",
		}, nil)

		assert.Equal(t, http.StatusInternalServerError, res.Code)
		assert.Empty(t, store.ListVotes())
	})
}

func TestLeaderboardEndpoints(t *testing.T) {
	_, router := setupTestAwardsRouter(t, awards.SeedState())

	t.Run("Happy path - single category leaderboard", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/leaderboard/pinnacle-pursuit", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		board := decode[models.CategoryLeaderboardResponse](t, res.Body.Bytes())
		assert.Equal(t, "Pinnacle Pursuit Award", board.Category.Name)
		assert.Equal(t, []awards.LeaderboardEntry{
			{Rank: 1, NomineeID: "Alice Johnson", VoteCount: 3, Percentage: 75},
			{Rank: 2, NomineeID: "Emma Davis", VoteCount: 1, Percentage: 25},
		}, board.Entries)
	})

	t.Run("Happy path - all leaderboards in catalog order", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/leaderboard?top=1", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		boards := decode[[]models.CategoryLeaderboardResponse](t, res.Body.Bytes())
		require.Len(t, boards, 4)
		expectedLeaders := []string{"Alice Johnson", "Henry Brown", "Frank Miller", "Iris Chen"}
		for i, b := range boards {
			require.Len(t, b.Entries, 1, "top=1 should truncate %s", b.Category.ID)
			assert.Equal(t, expectedLeaders[i], b.Entries[0].NomineeID)
		}
	})

	t.Run("Happy path - unknown category is an empty leaderboard", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/leaderboard/nope", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		board := decode[models.CategoryLeaderboardResponse](t, res.Body.Bytes())
		assert.Empty(t, board.Entries)
	})

	t.Run("Unhappy path - invalid top", func(t *testing.T) {
		for _, q := range []string{"0", "-2", "three"} {
			res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/leaderboard?top="+q, nil, nil)
			assert.Equal(t, http.StatusBadRequest, res.Code, "top=%s should be rejected", q)
		}
	})
}

func TestQueryEndpoints(t *testing.T) {
	_, router := setupTestAwardsRouter(t, awards.SeedState())

	t.Run("Happy path - statistics", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/stats", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		stats := decode[awards.Statistics](t, res.Body.Bytes())
		assert.Equal(t, 14, stats.TotalVotes)
		assert.Equal(t, 11, stats.UniqueVoters)
		assert.Equal(t, 8, stats.UniqueNominees)
		assert.Equal(t, 4, stats.CategoriesCount)
	})

	t.Run("Happy path - tally", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/tally", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		tally := decode[map[string][]awards.VoteCount](t, res.Body.Bytes())
		assert.Equal(t, awards.TallyByCategory(awards.SeedVotes()), tally)
	})

	t.Run("Happy path - votes by voter and nominee", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/voters/Viinu/votes", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		byVoter := decode[[]awards.Vote](t, res.Body.Bytes())
		require.Len(t, byVoter, 2)
		assert.Equal(t, "v1", byVoter[0].ID)
		assert.Equal(t, "v9", byVoter[1].ID)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/awards/nominees/Henry%20Brown/votes", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.Len(t, decode[[]awards.Vote](t, res.Body.Bytes()), 3)
	})

	t.Run("Happy path - no matches is an empty list", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/voters/nobody/votes", nil, nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, "[]", res.Body.String())
	})

	t.Run("Happy path - has voted in category", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/voters/Viinu/categories/sticky-wicket", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.True(t, decode[models.HasVotedResponse](t, res.Body.Bytes()).HasVoted)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/awards/voters/Viinu/categories/sherpa", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.False(t, decode[models.HasVotedResponse](t, res.Body.Bytes()).HasVoted)
	})

	t.Run("Happy path - recent votes", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/votes/recent", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.Len(t, decode[[]awards.Vote](t, res.Body.Bytes()), 10)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/awards/votes/recent?limit=3", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.Len(t, decode[[]awards.Vote](t, res.Body.Bytes()), 3)
	})

	t.Run("Happy path - catalog and period", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/categories", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, awards.DefaultCategories(), decode[[]awards.AwardCategory](t, res.Body.Bytes()))

		res = testutils.PerformRequest(router, http.MethodGet, "/api/awards/period", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		period := decode[awards.VotingPeriod](t, res.Body.Bytes())
		assert.True(t, period.IsOpen)
		assert.True(t, period.EndDate.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	})

	t.Run("Happy path - request ID is echoed", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/awards/stats", nil, map[string]string{
			transport.RequestIDHeader: "req-123",
		})

		assert.Equal(t, "req-123", res.Header().Get(transport.RequestIDHeader))
	})
}
