package split

import "fmt"

// PartitionSubjects divides the subject list into contiguous groups of
// ceil(len/parts) members each, in original order, with the last group
// absorbing the remainder. It never shuffles or reorders, so the same list
// and part count always produce the same groups.
//
// It fails with ErrInsufficientSubjects when there are fewer subjects than
// parts, because at least one destination tree would be empty.
func PartitionSubjects(subjects []string, parts int) ([][]string, error) {
	if parts < 1 {
		return nil, fmt.Errorf("part count must be at least 1, got %d", parts)
	}
	if len(subjects) < parts {
		return nil, fmt.Errorf("%w: %d subjects for %d parts", ErrInsufficientSubjects, len(subjects), parts)
	}

	perPart := (len(subjects) + parts - 1) / parts

	var groups [][]string
	for start := 0; start < len(subjects); start += perPart {
		end := start + perPart
		if end > len(subjects) {
			end = len(subjects)
		}
		groups = append(groups, subjects[start:end:end])
	}
	return groups, nil
}
