package storage

import (
	"time"

	"github.com/alex-pricope/elevate-awards/awards"
)

// ActivePeriodKey is the only key the voting period table ever holds.
const ActivePeriodKey = "ACTIVE"

type Vote struct {
	ID         string    `dynamodbav:"PK" gorm:"primaryKey;column:id"`
	Position   int       `dynamodbav:"Position" gorm:"column:position;index"`
	CategoryID string    `dynamodbav:"CategoryID" gorm:"column:category_id;uniqueIndex:idx_award_votes_voter_category"`
	VoterID    string    `dynamodbav:"VoterID" gorm:"column:voter_id;uniqueIndex:idx_award_votes_voter_category"`
	NomineeID  string    `dynamodbav:"NomineeID" gorm:"column:nominee_id;index"`
	Reason     string    `dynamodbav:"Reason" gorm:"column:reason"`
	Timestamp  time.Time `dynamodbav:"Timestamp" gorm:"column:timestamp"`
}

func (Vote) TableName() string { return "award_votes" }

type VotingPeriod struct {
	Key       string    `dynamodbav:"PK" gorm:"primaryKey;column:id"`
	IsOpen    bool      `dynamodbav:"IsOpen" gorm:"column:is_open"`
	StartDate time.Time `dynamodbav:"StartDate" gorm:"column:start_date"`
	EndDate   time.Time `dynamodbav:"EndDate" gorm:"column:end_date"`
}

func (VotingPeriod) TableName() string { return "award_voting_periods" }

func FromAwardVote(v awards.Vote, position int) *Vote {
	return &Vote{
		ID:         v.ID,
		Position:   position,
		CategoryID: v.CategoryID,
		VoterID:    v.VoterID,
		NomineeID:  v.NomineeID,
		Reason:     v.Reason,
		Timestamp:  v.Timestamp.UTC(),
	}
}

func (v *Vote) ToAwardVote() awards.Vote {
	return awards.Vote{
		ID:         v.ID,
		CategoryID: v.CategoryID,
		VoterID:    v.VoterID,
		NomineeID:  v.NomineeID,
		Reason:     v.Reason,
		Timestamp:  v.Timestamp.UTC(),
	}
}

func FromAwardPeriod(p awards.VotingPeriod) *VotingPeriod {
	return &VotingPeriod{
		Key:       ActivePeriodKey,
		IsOpen:    p.IsOpen,
		StartDate: p.StartDate.UTC(),
		EndDate:   p.EndDate.UTC(),
	}
}

func (p *VotingPeriod) ToAwardPeriod() awards.VotingPeriod {
	return awards.VotingPeriod{
		IsOpen:    p.IsOpen,
		StartDate: p.StartDate.UTC(),
		EndDate:   p.EndDate.UTC(),
	}
}
