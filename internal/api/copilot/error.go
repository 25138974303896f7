package copilot

import "github.com/ranjini26/lifeos/pkg/response"

var (
	ErrEmptyTaskTitle = response.NewError(400, "task title must not be empty")
)
