package dashboard

import "math"

// Stats summarizes a task sequence.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // percent, 0-100
}

// Summarize derives statistics from tasks.
func Summarize(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
