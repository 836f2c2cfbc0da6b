package models

import (
	"time"

	"github.com/alex-pricope/elevate-awards/awards"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CastVoteRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	VoterID    string `json:"voterId" binding:"required"`
	NomineeID  string `json:"nomineeId" binding:"required"`
	Reason     string `json:"reason"`
}

type HasVotedResponse struct {
	VoterID    string `json:"voterId"`
	CategoryID string `json:"categoryId"`
	HasVoted   bool   `json:"hasVoted"`
}

type SetVotingPeriodRequest struct {
	IsOpen    *bool      `json:"isOpen" binding:"required"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CategoryLeaderboardResponse decorates a leaderboard with its catalog entry.
type CategoryLeaderboardResponse struct {
	Category awards.AwardCategory      `json:"category"`
	Entries  []awards.LeaderboardEntry `json:"entries"`
}

// TransformLeaderboards lays the per-category leaderboards out in catalog order.
// Categories nobody voted in get an empty entry list.
func TransformLeaderboards(categories []awards.AwardCategory, boards map[string][]awards.LeaderboardEntry) []CategoryLeaderboardResponse {
	out := make([]CategoryLeaderboardResponse, 0, len(categories))
	for _, c := range categories {
		entries := boards[c.ID]
		if entries == nil {
			entries = []awards.LeaderboardEntry{}
		}
		out = append(out, CategoryLeaderboardResponse{Category: c, Entries: entries})
	}
	return out
}
