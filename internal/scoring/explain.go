package scoring

// PlaceholderReason is shown when no source contributed any reason. It is
// never combined with real reasons.
const PlaceholderReason = "No specific threats detected."

// RankReasons merges reason strings from the job analyzer, the company
// verifier, and the user-context matcher, in that priority order. Within-source
// order is preserved and exact duplicates keep their first occurrence.
func RankReasons(jobReasons, companyRisks, userRisks []string) []string {
	seen := make(map[string]struct{})
	ranked := make([]string, 0, len(jobReasons)+len(companyRisks)+len(userRisks))

	for _, source := range [][]string{jobReasons, companyRisks, userRisks} {
		for _, reason := range source {
			if _, dup := seen[reason]; dup {
				continue
			}
			seen[reason] = struct{}{}
			ranked = append(ranked, reason)
		}
	}

	if len(ranked) == 0 {
		return []string{PlaceholderReason}
	}
	return ranked
}
