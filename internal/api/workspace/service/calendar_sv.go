package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

func (s *workspaceService) CreateEvent(ctx context.Context, req workspace.CreateEventRequest) (entity.CalendarEvent, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.CalendarEvent{}, err
	}

	startTime, okStart := parseDate(req.StartTime)
	endTime, okEnd := parseDate(req.EndTime)
	if !okStart || !okEnd || !endTime.After(startTime) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_time": req.StartTime,
			"end_time":   req.EndTime,
		}).Warn("Invalid event time range")
		return entity.CalendarEvent{}, workspace.ErrInvalidTimeRange
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.CalendarEvent{}, err
	}

	event := entity.CalendarEvent{
		ID:          ULID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    req.Location,
		Color:       req.Color,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := repo.Calendar.CreateEvent(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create calendar event")
		return entity.CalendarEvent{}, workspace.ErrCreateRecord
	}

	return event, nil
}

func (s *workspaceService) GetEventsByUserID(ctx context.Context, userID string) ([]entity.CalendarEvent, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	events, err := repo.Calendar.GetEventsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get events by user ID")
		return nil, err
	}

	return events, nil
}

func (s *workspaceService) UpdateEvent(ctx context.Context, req workspace.UpdateEventRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Calendar.GetEventByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get event for update")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Event does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	startTime, okStart := parseDate(req.StartTime)
	endTime, okEnd := parseDate(req.EndTime)
	if !okStart || !okEnd || !endTime.After(startTime) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"start_time": req.StartTime,
			"end_time":   req.EndTime,
		}).Warn("Invalid event time range")
		return workspace.ErrInvalidTimeRange
	}

	event := entity.CalendarEvent{
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    req.Location,
		Color:       req.Color,
	}

	if err := repo.Calendar.UpdateEvent(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update calendar event")
		return err
	}

	return nil
}

func (s *workspaceService) DeleteEvent(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Calendar.GetEventByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get event for deletion")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Event does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if err := repo.Calendar.DeleteEvent(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete calendar event")
		return err
	}

	return nil
}
