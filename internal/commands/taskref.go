package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskIDs parses one or more task ids from args.
// Each arg must be a positive decimal integer. Ids are returned in the order
// given; repeats are kept, so "3 3" toggles task 3 twice.
func ParseTaskIDs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskIDRequired
	}

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		if !isAllDigits(arg) {
			return nil, fmt.Errorf("invalid task id: %s", arg)
		}
		id, err := strconv.Atoi(arg)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid task id: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
