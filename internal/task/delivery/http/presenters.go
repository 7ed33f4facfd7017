package http

import (
	"task-portal/internal/task"
)

// --- Request DTOs ---

// createReq is the body of POST /internal/v1/tasks. A missing "description"
// and an explicit null both decode to nil.
type createReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

// --- Response DTOs ---

// createResp is intentionally empty: creation returns no value.
type createResp struct{}
