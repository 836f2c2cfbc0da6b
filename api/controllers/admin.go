package controllers

import (
	"net/http"

	"github.com/alex-pricope/elevate-awards/api/models"
	"github.com/alex-pricope/elevate-awards/api/transport"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	store      AwardStore
	adminToken string
}

func NewAdminController(store AwardStore, adminToken string) *AdminController {
	return &AdminController{
		store:      store,
		adminToken: adminToken,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin/awards", transport.AdminAuthMiddleware(c.adminToken))

	group.PUT("/period", c.setVotingPeriod)
	group.POST("/votes/reset", c.resetVotes)
}

// @Security AdminToken
// setVotingPeriod godoc
// @Summary Open or close voting
// @Description Omitted dates keep their previous value
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SetVotingPeriodRequest true "Voting period"
// @Success 200 {object} awards.VotingPeriod
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/awards/period [put]
func (c *AdminController) setVotingPeriod(g *gin.Context) {
	var req models.SetVotingPeriodRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request, isOpen is required"})
		return
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "endDate is before startDate"})
		return
	}

	period, err := c.store.SetVotingPeriod(g.Request.Context(), *req.IsOpen, req.StartDate, req.EndDate)
	if err != nil {
		writeStoreError(g, err)
		return
	}

	transport.Logger(g).Infof("ADMIN: voting period set, open=%t", period.IsOpen)
	g.JSON(http.StatusOK, period)
}

// @Security AdminToken
// resetVotes godoc
// @Summary Delete every vote
// @Description Irreversible. The voting period and catalog are untouched.
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/awards/votes/reset [post]
func (c *AdminController) resetVotes(g *gin.Context) {
	cleared := len(c.store.Snapshot().Votes)
	if err := c.store.ClearAllVotes(g.Request.Context()); err != nil {
		writeStoreError(g, err)
		return
	}

	transport.Logger(g).Infof("ADMIN: cleared %d votes", cleared)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "All votes cleared"})
}
