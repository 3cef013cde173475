package dashboard

// ToggleTask returns a new sequence in which the task with the given id has
// Completed flipped. All other entries are copied unchanged. If no task has
// the id, the result equals the input.
func ToggleTask(tasks []Task, id int) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		out[i] = t
	}
	return out
}

// FindTask returns the task with the given id.
func FindTask(tasks []Task, id int) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// PriorityColor is the visual class of a priority tag.
type PriorityColor string

const (
	ColorRed    PriorityColor = "red"
	ColorYellow PriorityColor = "yellow"
	ColorGreen  PriorityColor = "green"
	ColorGray   PriorityColor = "gray"
)

// PriorityColorFor maps a priority to its tag color. Unknown priorities are gray.
func PriorityColorFor(p Priority) PriorityColor {
	switch p {
	case PriorityHigh:
		return ColorRed
	case PriorityMedium:
		return ColorYellow
	case PriorityLow:
		return ColorGreen
	default:
		return ColorGray
	}
}
