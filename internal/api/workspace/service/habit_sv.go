package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

func (s *workspaceService) CreateHabit(ctx context.Context, req workspace.CreateHabitRequest) (entity.Habit, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Habit{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Habit{}, err
	}

	target := req.TargetDaysPerWeek
	if target == 0 {
		target = 7
	}

	habit := entity.Habit{
		ID:                ULID,
		UserID:            req.UserID,
		Name:              req.Name,
		Description:       req.Description,
		TargetDaysPerWeek: target,
		Color:             req.Color,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := repo.Habit.CreateHabit(ctx, habit); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create habit")
		return entity.Habit{}, workspace.ErrCreateRecord
	}

	return habit, nil
}

func (s *workspaceService) GetHabitsByUserID(ctx context.Context, userID string) ([]entity.Habit, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	habits, err := repo.Habit.GetHabitsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get habits by user ID")
		return nil, err
	}

	return habits, nil
}

func (s *workspaceService) UpdateHabit(ctx context.Context, req workspace.UpdateHabitRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Habit.GetHabitByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get habit for update")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Habit does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	target := req.TargetDaysPerWeek
	if target == 0 {
		target = existing.TargetDaysPerWeek
	}

	habit := entity.Habit{
		ID:                req.ID,
		UserID:            req.UserID,
		Name:              req.Name,
		Description:       req.Description,
		TargetDaysPerWeek: target,
		Color:             req.Color,
	}

	if err := repo.Habit.UpdateHabit(ctx, habit); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update habit")
		return err
	}

	return nil
}

func (s *workspaceService) DeleteHabit(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Habit.GetHabitByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get habit for deletion")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Habit does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if err := repo.Habit.DeleteHabit(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete habit")
		return err
	}

	return nil
}

func (s *workspaceService) ToggleHabitEntry(ctx context.Context, req workspace.ToggleHabitEntryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	habit, err := repo.Habit.GetHabitByID(ctx, req.HabitID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"habit_id":   req.HabitID,
			"error":      err.Error(),
		}).Error("Failed to get habit for entry toggle")
		return err
	}

	if habit.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"habit_id":   req.HabitID,
		}).Warn("Habit does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	date, ok := parseDate(req.Date)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid habit entry date")
		return workspace.ErrInvalidTimeRange
	}

	entries, err := repo.Habit.GetEntriesByHabitID(ctx, req.HabitID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get habit entries")
		return err
	}

	completed := true
	for _, entry := range entries {
		if entry.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			completed = !entry.Completed
			break
		}
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	entry := entity.HabitEntry{
		ID:        ULID,
		HabitID:   req.HabitID,
		Date:      date,
		Completed: completed,
		CreatedAt: time.Now(),
	}

	if err := repo.Habit.UpsertEntry(ctx, entry); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upsert habit entry")
		return err
	}

	return nil
}

func (s *workspaceService) GetHabitEntries(ctx context.Context, habitID string, userID string) ([]entity.HabitEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	habit, err := repo.Habit.GetHabitByID(ctx, habitID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"habit_id":   habitID,
			"error":      err.Error(),
		}).Error("Failed to get habit for entries")
		return nil, err
	}

	if habit.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"habit_id":   habitID,
		}).Warn("Habit does not belong to user")
		return nil, workspace.ErrRecordNotOwned
	}

	entries, err := repo.Habit.GetEntriesByHabitID(ctx, habitID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get habit entries")
		return nil, err
	}

	return entries, nil
}
