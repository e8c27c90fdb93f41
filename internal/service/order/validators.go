package order

import "strings"

func isValidID(id int64) bool {
	return id > 0
}

func isValidItemDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}
