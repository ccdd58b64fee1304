package service

import (
	"context"
	"errors"
	"fmt"

	"quillpad-server/internal/domain"
	"quillpad-server/internal/repository"
)

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

func (s *NoteService) Create(ctx context.Context, ownerEmail string, req *domain.NoteRequest) (*domain.Note, error) {
	note, err := s.repo.Create(ctx, ownerEmail, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// List returns the owner's notes, most recent first. A user with no notes
// gets an empty slice, never nil, so the endpoint serializes to [].
func (s *NoteService) List(ctx context.Context, ownerEmail string) ([]*domain.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}

func (s *NoteService) Update(ctx context.Context, ownerEmail string, id int64, req *domain.NoteRequest) (*domain.Note, error) {
	note, err := s.repo.Update(ctx, id, ownerEmail, req.Title, req.Content)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerEmail string, id int64) error {
	err := s.repo.Delete(ctx, id, ownerEmail)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
