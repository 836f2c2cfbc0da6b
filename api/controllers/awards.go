package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alex-pricope/elevate-awards/api/models"
	"github.com/alex-pricope/elevate-awards/api/transport"
	"github.com/alex-pricope/elevate-awards/awards"
	"github.com/gin-gonic/gin"
)

const recentVotesLimit = 10

// AwardStore is the slice of awards.VoteStore the HTTP layer needs.
type AwardStore interface {
	CastVote(ctx context.Context, categoryID, voterID, nomineeID, reason string) (awards.Vote, error)
	SetVotingPeriod(ctx context.Context, isOpen bool, startDate, endDate *time.Time) (awards.VotingPeriod, error)
	ClearAllVotes(ctx context.Context) error
	Snapshot() awards.Snapshot
}

type AwardsController struct {
	store AwardStore
}

func NewAwardsController(store AwardStore) *AwardsController {
	return &AwardsController{store: store}
}

func (c *AwardsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/awards")

	group.GET("/categories", c.listCategories)
	group.GET("/period", c.getVotingPeriod)
	group.POST("/votes", c.castVote)
	group.GET("/votes", c.listVotes)
	group.GET("/votes/recent", c.recentVotes)
	group.GET("/voters/:voterId/votes", c.votesByVoter)
	group.GET("/voters/:voterId/categories/:categoryId", c.hasVoted)
	group.GET("/nominees/:nomineeId/votes", c.votesByNominee)
	group.GET("/tally", c.tally)
	group.GET("/leaderboard", c.leaderboard)
	group.GET("/leaderboard/:categoryId", c.categoryLeaderboard)
	group.GET("/stats", c.statistics)
}

// castVote godoc
// @Summary Nominate someone for an award
// @Description Casting again in the same category replaces the voter's previous nomination
// @Tags awards
// @Accept json
// @Produce json
// @Param vote body models.CastVoteRequest true "Nomination"
// @Success 200 {object} awards.Vote
// @Failure 400 {object} models.ErrorResponse "Invalid request or unknown category"
// @Failure 409 {object} models.ErrorResponse "Voting is closed"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/awards/votes [post]
func (c *AwardsController) castVote(g *gin.Context) {
	var req models.CastVoteRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	vote, err := c.store.CastVote(g.Request.Context(), req.CategoryID, req.VoterID, req.NomineeID, req.Reason)
	if err != nil {
		writeStoreError(g, err)
		return
	}

	transport.Logger(g).Infof("AWARDS: %s nominated %s in %s", vote.VoterID, vote.NomineeID, vote.CategoryID)
	g.JSON(http.StatusOK, vote)
}

// @Summary List the award catalog
// @Tags awards
// @Produce json
// @Success 200 {array} awards.AwardCategory
// @Router /api/awards/categories [get]
func (c *AwardsController) listCategories(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Snapshot().Categories)
}

// @Summary Get the voting period
// @Tags awards
// @Produce json
// @Success 200 {object} awards.VotingPeriod
// @Router /api/awards/period [get]
func (c *AwardsController) getVotingPeriod(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Snapshot().Period)
}

// @Summary List all votes in the order they were first cast
// @Tags awards
// @Produce json
// @Success 200 {array} awards.Vote
// @Router /api/awards/votes [get]
func (c *AwardsController) listVotes(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Snapshot().Votes)
}

// @Summary List the first votes of the log, as shown on the admin dashboard
// @Tags awards
// @Produce json
// @Param limit query int false "Maximum number of votes" default(10)
// @Success 200 {array} awards.Vote
// @Failure 400 {object} models.ErrorResponse
// @Router /api/awards/votes/recent [get]
func (c *AwardsController) recentVotes(g *gin.Context) {
	limit, ok := positiveQueryInt(g, "limit", recentVotesLimit)
	if !ok {
		return
	}
	g.JSON(http.StatusOK, awards.RecentVotes(c.store.Snapshot().Votes, limit))
}

// @Summary List the votes cast by a voter
// @Tags awards
// @Produce json
// @Param voterId path string true "Voter ID"
// @Success 200 {array} awards.Vote
// @Router /api/awards/voters/{voterId}/votes [get]
func (c *AwardsController) votesByVoter(g *gin.Context) {
	g.JSON(http.StatusOK, awards.VotesByVoter(c.store.Snapshot().Votes, g.Param("voterId")))
}

// @Summary List the votes received by a nominee
// @Tags awards
// @Produce json
// @Param nomineeId path string true "Nominee ID"
// @Success 200 {array} awards.Vote
// @Router /api/awards/nominees/{nomineeId}/votes [get]
func (c *AwardsController) votesByNominee(g *gin.Context) {
	g.JSON(http.StatusOK, awards.VotesByNominee(c.store.Snapshot().Votes, g.Param("nomineeId")))
}

// @Summary Check whether a voter already nominated someone in a category
// @Tags awards
// @Produce json
// @Param voterId path string true "Voter ID"
// @Param categoryId path string true "Category ID"
// @Success 200 {object} models.HasVotedResponse
// @Router /api/awards/voters/{voterId}/categories/{categoryId} [get]
func (c *AwardsController) hasVoted(g *gin.Context) {
	voterID := g.Param("voterId")
	categoryID := g.Param("categoryId")
	g.JSON(http.StatusOK, models.HasVotedResponse{
		VoterID:    voterID,
		CategoryID: categoryID,
		HasVoted:   awards.HasVotedInCategory(c.store.Snapshot().Votes, voterID, categoryID),
	})
}

// @Summary Vote tallies per category and nominee
// @Tags awards
// @Produce json
// @Success 200 {object} map[string][]awards.VoteCount
// @Router /api/awards/tally [get]
func (c *AwardsController) tally(g *gin.Context) {
	g.JSON(http.StatusOK, awards.TallyByCategory(c.store.Snapshot().Votes))
}

// @Summary Top nominees of every category, in catalog order
// @Tags awards
// @Produce json
// @Param top query int false "Leaderboard size" default(3)
// @Success 200 {array} models.CategoryLeaderboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/awards/leaderboard [get]
func (c *AwardsController) leaderboard(g *gin.Context) {
	top, ok := positiveQueryInt(g, "top", awards.DefaultLeaderboardSize)
	if !ok {
		return
	}
	snap := c.store.Snapshot()
	g.JSON(http.StatusOK, models.TransformLeaderboards(snap.Categories, awards.Leaderboard(snap.Votes, top)))
}

// @Summary Top nominees of one category
// @Tags awards
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param top query int false "Leaderboard size" default(3)
// @Success 200 {object} models.CategoryLeaderboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/awards/leaderboard/{categoryId} [get]
func (c *AwardsController) categoryLeaderboard(g *gin.Context) {
	top, ok := positiveQueryInt(g, "top", awards.DefaultLeaderboardSize)
	if !ok {
		return
	}
	categoryID := g.Param("categoryId")
	snap := c.store.Snapshot()

	category, found := awards.FindCategory(snap.Categories, categoryID)
	if !found {
		category = awards.AwardCategory{ID: categoryID}
	}
	g.JSON(http.StatusOK, models.CategoryLeaderboardResponse{
		Category: category,
		Entries:  awards.CategoryLeaderboard(snap.Votes, categoryID, top),
	})
}

// @Summary Aggregate voting statistics
// @Tags awards
// @Produce json
// @Success 200 {object} awards.Statistics
// @Router /api/awards/stats [get]
func (c *AwardsController) statistics(g *gin.Context) {
	snap := c.store.Snapshot()
	g.JSON(http.StatusOK, awards.ComputeStatistics(snap.Votes, snap.Categories))
}

func positiveQueryInt(g *gin.Context, name string, def int) (int, bool) {
	raw := g.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

func writeStoreError(g *gin.Context, err error) {
	switch {
	case errors.Is(err, awards.ErrInvalidCategory):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, awards.ErrInvalidVote):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, awards.ErrVotingClosed):
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
	default:
		transport.Logger(g).Errorf("AWARDS: store operation failed: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save changes"})
	}
}
