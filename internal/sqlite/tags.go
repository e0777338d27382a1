package sqlite

import "strings"

// Tags are stored as a comma-joined column; tag values are normalized
// lowercase tokens before they reach storage, so the join is unambiguous.

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
