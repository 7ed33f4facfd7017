package model

import "time"

// Task is a task as reported back by a task store.
type Task struct {
	ID          string
	Title       string
	Description *string // nil when the task was created without one
	URL         string  // Deep link into the store's own UI, when it has one
	CreatedAt   time.Time
}
