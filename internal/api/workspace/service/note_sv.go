package workspaceService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/ranjini26/lifeos/internal/api/workspace"
	"github.com/ranjini26/lifeos/internal/entity"
	contextPkg "github.com/ranjini26/lifeos/pkg/context"
)

func (s *workspaceService) CreateNote(ctx context.Context, req workspace.CreateNoteRequest) (entity.Note, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Note{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Note{}, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := entity.Note{
		ID:        ULID,
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      tags,
		Starred:   req.Starred,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Note.CreateNote(ctx, note); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create note")
		return entity.Note{}, workspace.ErrCreateRecord
	}

	return note, nil
}

func (s *workspaceService) GetNoteByID(ctx context.Context, id string, userID string) (entity.Note, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Note{}, err
	}

	note, err := repo.Note.GetNoteByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get note by ID")
		return entity.Note{}, err
	}

	if note.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Note does not belong to user")
		return entity.Note{}, workspace.ErrRecordNotOwned
	}

	return note, nil
}

func (s *workspaceService) GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	notes, err := repo.Note.GetNotesByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get notes by user ID")
		return nil, err
	}

	return notes, nil
}

func (s *workspaceService) UpdateNote(ctx context.Context, req workspace.UpdateNoteRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Note.GetNoteByID(ctx, req.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
			"error":      err.Error(),
		}).Error("Failed to get note for update")
		return err
	}

	if existing.UserID != req.UserID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         req.ID,
		}).Warn("Note does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	note := entity.Note{
		ID:      req.ID,
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    tags,
		Starred: req.Starred,
	}

	if err := repo.Note.UpdateNote(ctx, note); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update note")
		return err
	}

	return nil
}

func (s *workspaceService) DeleteNote(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.workspaceRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Note.GetNoteByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get note for deletion")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Note does not belong to user")
		return workspace.ErrRecordNotOwned
	}

	if err := repo.Note.DeleteNote(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete note")
		return err
	}

	return nil
}
