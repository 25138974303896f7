package workspace

import "github.com/ranjini26/lifeos/pkg/response"

var (
	ErrTaskNotFound       = response.NewError(404, "task not found")
	ErrNoteNotFound       = response.NewError(404, "note not found")
	ErrHabitNotFound      = response.NewError(404, "habit not found")
	ErrReflectionNotFound = response.NewError(404, "reflection not found")
	ErrEventNotFound      = response.NewError(404, "calendar event not found")
	ErrRecordNotOwned     = response.NewError(403, "record does not belong to user")
	ErrInvalidPriority    = response.NewError(400, "invalid task priority")
	ErrInvalidStatus      = response.NewError(400, "invalid task status")
	ErrInvalidTimeRange   = response.NewError(400, "event end time must be after start time")
	ErrCreateRecord       = response.NewError(500, "failed to create record")
	ErrUpdateRecord       = response.NewError(500, "failed to update record")
	ErrDeleteRecord       = response.NewError(500, "failed to delete record")
)
