package awards

import "time"

// DefaultCategories is the catalog used when config does not provide one.
// New awards only need a unique id here.
func DefaultCategories() []AwardCategory {
	return []AwardCategory{
		{
			ID:          "pinnacle-pursuit",
			Name:        "Pinnacle Pursuit Award",
			Icon:        "🎯",
			Description: "Reaching the highest standards of excellence",
		},
		{
			ID:          "sherpa",
			Name:        "The Sherpa Award",
			Icon:        "🏔️",
			Description: "Guiding and supporting team members",
		},
		{
			ID:          "sticky-wicket",
			Name:        "The Sticky Wicket Award",
			Icon:        "🏏",
			Description: "Navigating through difficult challenges",
		},
		{
			ID:          "bulls-by-horn",
			Name:        "Take the Bulls by the Horn Award",
			Icon:        "🐂",
			Description: "Bold initiative and decisive action",
		},
	}
}

func FindCategory(categories []AwardCategory, id string) (AwardCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return AwardCategory{}, false
}

// SeedVotes is the demo vote log the dashboard ships with.
func SeedVotes() []Vote {
	return []Vote{
		seedVote("v1", "pinnacle-pursuit", "Viinu", "Alice Johnson", "Exceptional code quality and architecture", "2024-02-01T10:00:00Z"),
		seedVote("v2", "pinnacle-pursuit", "Bob Smith", "Alice Johnson", "Goes above and beyond in every task", "2024-02-01T11:00:00Z"),
		seedVote("v3", "pinnacle-pursuit", "Carol White", "Emma Davis", "Outstanding UX design standards", "2024-02-01T12:00:00Z"),
		seedVote("v4", "pinnacle-pursuit", "David Lee", "Alice Johnson", "Sets the bar for excellence", "2024-02-01T13:00:00Z"),

		seedVote("v5", "sherpa", "Alice Johnson", "Henry Brown", "Mentors new team members", "2024-02-02T09:00:00Z"),
		seedVote("v6", "sherpa", "Emma Davis", "Henry Brown", "Always willing to help and guide", "2024-02-02T10:00:00Z"),
		seedVote("v7", "sherpa", "Frank Miller", "Grace Taylor", "Expert knowledge sharing", "2024-02-02T11:00:00Z"),
		seedVote("v8", "sherpa", "David Lee", "Henry Brown", "Patient teacher and supporter", "2024-02-02T12:00:00Z"),

		seedVote("v9", "sticky-wicket", "Viinu", "Frank Miller", "Solved complex deployment issues", "2024-02-03T14:00:00Z"),
		seedVote("v10", "sticky-wicket", "Iris Chen", "Bob Smith", "Untangled legacy code issues", "2024-02-03T15:00:00Z"),
		seedVote("v11", "sticky-wicket", "Jack Wilson", "Frank Miller", "Debugged production crisis", "2024-02-03T16:00:00Z"),

		seedVote("v12", "bulls-by-horn", "Kate Martinez", "Iris Chen", "Led critical migration project", "2024-02-04T08:00:00Z"),
		seedVote("v13", "bulls-by-horn", "Leo Garcia", "Carol White", "Took ownership of failed release", "2024-02-04T09:00:00Z"),
		seedVote("v14", "bulls-by-horn", "Alice Johnson", "Iris Chen", "Bold decision on architecture change", "2024-02-05T07:00:00Z"),
	}
}

// SeedState is SeedVotes with the February 2024 voting period open.
func SeedState() State {
	return State{
		Votes: SeedVotes(),
		Period: VotingPeriod{
			IsOpen:    true,
			StartDate: mustParse("2024-02-01T00:00:00Z"),
			EndDate:   mustParse("2024-02-29T23:59:59Z"),
		},
	}
}

func seedVote(id, category, voter, nominee, reason, ts string) Vote {
	return Vote{
		ID:         id,
		CategoryID: category,
		VoterID:    voter,
		NomineeID:  nominee,
		Reason:     reason,
		Timestamp:  mustParse(ts),
	}
}

func mustParse(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic("invalid seed timestamp: " + ts)
	}
	return t
}
