package awards

import "sort"

const DefaultLeaderboardSize = 3

// TallyByCategory groups votes by category, then by nominee. Within a category
// nominees appear in the order their first vote sits in the collection.
func TallyByCategory(votes []Vote) map[string][]VoteCount {
	tallies := make(map[string][]VoteCount)
	index := make(map[string]map[string]int)

	for _, v := range votes {
		byNominee, ok := index[v.CategoryID]
		if !ok {
			byNominee = make(map[string]int)
			index[v.CategoryID] = byNominee
		}
		if i, ok := byNominee[v.NomineeID]; ok {
			tallies[v.CategoryID][i].Count++
			tallies[v.CategoryID][i].Voters = append(tallies[v.CategoryID][i].Voters, v.VoterID)
			continue
		}
		byNominee[v.NomineeID] = len(tallies[v.CategoryID])
		tallies[v.CategoryID] = append(tallies[v.CategoryID], VoteCount{
			CategoryID: v.CategoryID,
			NomineeID:  v.NomineeID,
			Count:      1,
			Voters:     []string{v.VoterID},
		})
	}
	return tallies
}

// Leaderboard ranks every category's nominees by vote count. Ties keep tally
// order. topN <= 0 returns the full ranking.
func Leaderboard(votes []Vote, topN int) map[string][]LeaderboardEntry {
	tallies := TallyByCategory(votes)
	boards := make(map[string][]LeaderboardEntry, len(tallies))
	for categoryID, counts := range tallies {
		boards[categoryID] = rank(counts, topN)
	}
	return boards
}

// CategoryLeaderboard is Leaderboard restricted to a single category.
func CategoryLeaderboard(votes []Vote, categoryID string, topN int) []LeaderboardEntry {
	filtered := make([]Vote, 0, len(votes))
	for _, v := range votes {
		if v.CategoryID == categoryID {
			filtered = append(filtered, v)
		}
	}
	return rank(TallyByCategory(filtered)[categoryID], topN)
}

func rank(counts []VoteCount, topN int) []LeaderboardEntry {
	sorted := make([]VoteCount, len(counts))
	copy(sorted, counts)

	total := 0
	for _, c := range sorted {
		total += c.Count
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if topN > 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	entries := make([]LeaderboardEntry, 0, len(sorted))
	shared := 0.0
	for i, c := range sorted {
		var pct float64
		if total > 0 {
			// float rounding must not push the summed shares past 100
			pct = min(float64(c.Count)/float64(total)*100, 100-shared)
			shared += pct
		}
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			NomineeID:  c.NomineeID,
			VoteCount:  c.Count,
			Percentage: pct,
		})
	}
	return entries
}

// ComputeStatistics summarizes the vote collection against the catalog.
// Every catalog category is reported, including those nobody voted in.
func ComputeStatistics(votes []Vote, categories []AwardCategory) Statistics {
	voters := make(map[string]struct{})
	nominees := make(map[string]struct{})
	perCategory := make(map[string]int)
	for _, v := range votes {
		voters[v.VoterID] = struct{}{}
		nominees[v.NomineeID] = struct{}{}
		perCategory[v.CategoryID]++
	}

	byCategory := make([]CategoryVoteCount, 0, len(categories))
	for _, c := range categories {
		byCategory = append(byCategory, CategoryVoteCount{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			VoteCount:    perCategory[c.ID],
		})
	}

	return Statistics{
		TotalVotes:      len(votes),
		UniqueVoters:    len(voters),
		UniqueNominees:  len(nominees),
		CategoriesCount: len(categories),
		VotesByCategory: byCategory,
	}
}
