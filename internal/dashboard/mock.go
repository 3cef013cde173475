package dashboard

// MockUser is the profile the dashboard starts with when no seed file exists.
func MockUser() User {
	return User{
		ID:     1,
		Name:   "Nityom Tikhe",
		Email:  "nityomtikherr@gmail.com",
		Avatar: "/placeholder.svg?height=100&width=100",
	}
}

// MockTasks returns the default task sequence.
func MockTasks() []Task {
	return []Task{
		{ID: 1, Title: "Complete project proposal", Completed: true, Priority: PriorityHigh, DueDate: "15-06-2025"},
		{ID: 2, Title: "Review team feedback", Completed: false, Priority: PriorityMedium, DueDate: "16-06-2025"},
		{ID: 3, Title: "Update documentation", Completed: false, Priority: PriorityLow, DueDate: "17-06-2025"},
		{ID: 4, Title: "Prepare presentation slides", Completed: true, Priority: PriorityHigh, DueDate: "14-06-2025"},
		{ID: 5, Title: "Schedule client meeting", Completed: false, Priority: PriorityMedium, DueDate: "16-06-2025"},
		{ID: 6, Title: "Code review for new feature", Completed: true, Priority: PriorityHigh, DueDate: "13-06-2025"},
	}
}
