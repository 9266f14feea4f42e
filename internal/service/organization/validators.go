package organization

import "strings"

func isPresent(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
