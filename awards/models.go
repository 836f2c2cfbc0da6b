package awards

import "time"

// AwardCategory is a catalog entry. The catalog is loaded once at startup and never mutated.
type AwardCategory struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Icon        string `json:"icon" mapstructure:"icon"`
	Description string `json:"description" mapstructure:"description"`
}

// Vote is a single voter's current nomination within one category.
type Vote struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	VoterID    string    `json:"voterId"`
	NomineeID  string    `json:"nomineeId"`
	Reason     string    `json:"reason,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// VotingPeriod gates CastVote. The dates are descriptive only.
type VotingPeriod struct {
	IsOpen    bool      `json:"isOpen"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// State is what a VoteStore is constructed from and what a Persister can rebuild.
type State struct {
	Votes  []Vote
	Period VotingPeriod
}

// Snapshot is a consistent copy of the store taken under a single lock.
type Snapshot struct {
	Votes      []Vote
	Categories []AwardCategory
	Period     VotingPeriod
}

type VoteCount struct {
	CategoryID string   `json:"categoryId"`
	NomineeID  string   `json:"nomineeId"`
	Count      int      `json:"count"`
	Voters     []string `json:"voters"`
}

type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	NomineeID  string  `json:"nomineeId"`
	VoteCount  int     `json:"voteCount"`
	Percentage float64 `json:"percentage"`
}

type CategoryVoteCount struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	VoteCount    int    `json:"voteCount"`
}

type Statistics struct {
	TotalVotes      int                 `json:"totalVotes"`
	UniqueVoters    int                 `json:"uniqueVoters"`
	UniqueNominees  int                 `json:"uniqueNominees"`
	CategoriesCount int                 `json:"categoriesCount"`
	VotesByCategory []CategoryVoteCount `json:"votesByCategory"`
}
