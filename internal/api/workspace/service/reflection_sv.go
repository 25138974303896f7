package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

func (s *workspaceService) CreateReflection(ctx context.Context, req workspace.CreateReflectionRequest) (entity.Reflection, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Reflection{}, err
	}

	date, ok := parseDate(req.Date)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid reflection date")
		return entity.Reflection{}, workspace.ErrInvalidTimeRange
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Reflection{}, err
	}

	reflection := entity.Reflection{
		ID:            ULID,
		UserID:        req.UserID,
		Date:          date,
		Mood:          req.Mood,
		EnergyLevel:   req.EnergyLevel,
		Gratitude:     emptyIfNil(req.Gratitude),
		Wins:          emptyIfNil(req.Wins),
		Challenges:    emptyIfNil(req.Challenges),
		TomorrowFocus: emptyIfNil(req.TomorrowFocus),
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := repo.Reflection.CreateReflection(ctx, reflection); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create reflection")
		return entity.Reflection{}, workspace.ErrCreateRecord
	}

	return reflection, nil
}

func (s *workspaceService) GetReflectionsByUserID(ctx context.Context, userID string) ([]entity.Reflection, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	reflections, err := repo.Reflection.GetReflectionsByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get reflections by user ID")
		return nil, err
	}

	return reflections, nil
}

func (s *workspaceService) UpdateReflection(ctx context.Context, req workspace.UpdateReflectionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Reflection.GetReflectionByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get reflection for update")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Reflection does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	reflection := entity.Reflection{
		ID:            req.ID,
		UserID:        req.UserID,
		Mood:          req.Mood,
		EnergyLevel:   req.EnergyLevel,
		Gratitude:     emptyIfNil(req.Gratitude),
		Wins:          emptyIfNil(req.Wins),
		Challenges:    emptyIfNil(req.Challenges),
		TomorrowFocus: emptyIfNil(req.TomorrowFocus),
		Notes:         req.Notes,
	}

	if err := repo.Reflection.UpdateReflection(ctx, reflection); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update reflection")
		return err
	}

	return nil
}

func (s *workspaceService) DeleteReflection(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Reflection.GetReflectionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get reflection for deletion")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Reflection does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if err := repo.Reflection.DeleteReflection(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete reflection")
		return err
	}

	return nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
