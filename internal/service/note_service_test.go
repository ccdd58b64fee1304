package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quillpad-server/internal/domain"
	"quillpad-server/internal/repository"
)

type mockNoteRepo struct {
	notes  []*domain.Note
	nextID int64
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{nextID: 1}
}

func (m *mockNoteRepo) Create(ctx context.Context, ownerEmail, title, content string) (*domain.Note, error) {
	note := &domain.Note{
		ID:         m.nextID,
		OwnerEmail: ownerEmail,
		Title:      title,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	m.nextID++
	m.notes = append(m.notes, note)
	return note, nil
}

func (m *mockNoteRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Note, error) {
	var out []*domain.Note
	for i := len(m.notes) - 1; i >= 0; i-- {
		if m.notes[i].OwnerEmail == ownerEmail {
			out = append(out, m.notes[i])
		}
	}
	return out, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, id int64, ownerEmail, title, content string) (*domain.Note, error) {
	for _, n := range m.notes {
		if n.ID == id && n.OwnerEmail == ownerEmail {
			n.Title = title
			n.Content = content
			return n, nil
		}
	}
	return nil, repository.ErrNoteNotFound
}

func (m *mockNoteRepo) Delete(ctx context.Context, id int64, ownerEmail string) error {
	for i, n := range m.notes {
		if n.ID == id && n.OwnerEmail == ownerEmail {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoteNotFound
}

func TestNoteService_Create(t *testing.T) {
	service := NewNoteService(newMockNoteRepo())

	note, err := service.Create(context.Background(), "a@x.com", &domain.NoteRequest{
		Title:   "t",
		Content: "c",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if note.ID == 0 {
		t.Error("Create() expected note ID to be assigned")
	}
	if note.OwnerEmail != "a@x.com" {
		t.Errorf("Create() owner = %v, want a@x.com", note.OwnerEmail)
	}
	if note.CreatedAt.IsZero() {
		t.Error("Create() expected created_at to be set")
	}
}

func TestNoteService_ListOrderingAndScoping(t *testing.T) {
	repo := newMockNoteRepo()
	service := NewNoteService(repo)
	ctx := context.Background()

	// Interleave creations by two owners.
	service.Create(ctx, "a@x.com", &domain.NoteRequest{Title: "a1", Content: "c"})
	service.Create(ctx, "b@x.com", &domain.NoteRequest{Title: "b1", Content: "c"})
	service.Create(ctx, "a@x.com", &domain.NoteRequest{Title: "a2", Content: "c"})
	service.Create(ctx, "a@x.com", &domain.NoteRequest{Title: "a3", Content: "c"})
	service.Create(ctx, "b@x.com", &domain.NoteRequest{Title: "b2", Content: "c"})

	list, err := service.List(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(list) != 3 {
		t.Fatalf("List() returned %d notes, want 3", len(list))
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].ID <= list[i].ID {
			t.Errorf("List() not descending by id: %d before %d", list[i-1].ID, list[i].ID)
		}
	}

	for _, n := range list {
		if n.OwnerEmail != "a@x.com" {
			t.Errorf("List() leaked note %d owned by %s", n.ID, n.OwnerEmail)
		}
	}
}

func TestNoteService_ListEmpty(t *testing.T) {
	service := NewNoteService(newMockNoteRepo())

	list, err := service.List(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil {
		t.Error("List() returned nil, want empty slice")
	}
	if len(list) != 0 {
		t.Errorf("List() returned %d notes, want 0", len(list))
	}
}

func TestNoteService_Update(t *testing.T) {
	repo := newMockNoteRepo()
	service := NewNoteService(repo)
	ctx := context.Background()

	note, _ := service.Create(ctx, "a@x.com", &domain.NoteRequest{Title: "old", Content: "old"})

	updated, err := service.Update(ctx, "a@x.com", note.ID, &domain.NoteRequest{Title: "new", Content: "newer"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "new" || updated.Content != "newer" {
		t.Errorf("Update() got %q/%q, want new/newer", updated.Title, updated.Content)
	}
	if updated.ID != note.ID {
		t.Errorf("Update() changed id from %d to %d", note.ID, updated.ID)
	}

	// Another user's valid identity must not reach the note, and must not be
	// able to tell it exists.
	_, err = service.Update(ctx, "b@x.com", note.ID, &domain.NoteRequest{Title: "x", Content: "y"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Update() cross-owner error = %v, want ErrNoteNotFound", err)
	}

	_, err = service.Update(ctx, "a@x.com", 9999, &domain.NoteRequest{Title: "x", Content: "y"})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Update() missing-note error = %v, want ErrNoteNotFound", err)
	}
}

func TestNoteService_Delete(t *testing.T) {
	repo := newMockNoteRepo()
	service := NewNoteService(repo)
	ctx := context.Background()

	note, _ := service.Create(ctx, "a@x.com", &domain.NoteRequest{Title: "t", Content: "c"})

	if err := service.Delete(ctx, "b@x.com", note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Delete() cross-owner error = %v, want ErrNoteNotFound", err)
	}

	if err := service.Delete(ctx, "a@x.com", note.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := service.Delete(ctx, "a@x.com", note.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Delete() repeated error = %v, want ErrNoteNotFound", err)
	}

	list, _ := service.List(ctx, "a@x.com")
	if len(list) != 0 {
		t.Errorf("List() after delete returned %d notes, want 0", len(list))
	}
}
