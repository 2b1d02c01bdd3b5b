package recipe

// maxExcludedTitles caps the exclusion list embedded in the prompt so it
// cannot grow without bound and crowd out the instructions.
const maxExcludedTitles = 1000

// MergeExcludes combines the persisted exclusion list with recently
// generated titles, deduplicating while preserving first-seen order, and
// truncates the result to the cap. Persisted titles come first, so under
// truncation the long-term list wins over recency.
func MergeExcludes(persisted, recent []string) []string {
	seen := make(map[string]struct{}, len(persisted)+len(recent))
	merged := make([]string, 0, len(persisted)+len(recent))

	for _, list := range [][]string{persisted, recent} {
		for _, title := range list {
			if title == "" {
				continue
			}
			if _, ok := seen[title]; ok {
				continue
			}
			seen[title] = struct{}{}
			merged = append(merged, title)
		}
	}

	if len(merged) > maxExcludedTitles {
		merged = merged[:maxExcludedTitles]
	}
	return merged
}
