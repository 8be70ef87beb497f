package common

import "strconv"

// ParseID parses a decimal surrogate identity as used by every entity table.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError("invalid id", map[string]string{"id": "id must be a positive integer"})
	}
	return id, nil
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
