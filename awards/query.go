package awards

func VotesByVoter(votes []Vote, voterID string) []Vote {
	return filterVotes(votes, func(v Vote) bool { return v.VoterID == voterID })
}

func VotesByNominee(votes []Vote, nomineeID string) []Vote {
	return filterVotes(votes, func(v Vote) bool { return v.NomineeID == nomineeID })
}

func HasVotedInCategory(votes []Vote, voterID, categoryID string) bool {
	for _, v := range votes {
		if v.VoterID == voterID && v.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// RecentVotes returns at most limit votes from the head of the collection.
func RecentVotes(votes []Vote, limit int) []Vote {
	if limit <= 0 || limit > len(votes) {
		limit = len(votes)
	}
	out := make([]Vote, limit)
	copy(out, votes[:limit])
	return out
}

func filterVotes(votes []Vote, keep func(Vote) bool) []Vote {
	out := make([]Vote, 0)
	for _, v := range votes {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
