package utils

import (
	"strconv"
	"strings"
)

// JoinIDs renders a list of ids as "1, 2, 3" for aggregate messages.
func JoinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}
