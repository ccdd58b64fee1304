package repository

import (
	"context"
	"errors"
	"fmt"

	"quillpad-server/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NoteRepository interface {
	Create(ctx context.Context, ownerEmail, title, content string) (*domain.Note, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Note, error)
	Update(ctx context.Context, id int64, ownerEmail, title, content string) (*domain.Note, error)
	Delete(ctx context.Context, id int64, ownerEmail string) error
}

type noteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) NoteRepository {
	return &noteRepository{pool: pool}
}

func (r *noteRepository) Create(ctx context.Context, ownerEmail, title, content string) (*domain.Note, error) {
	var n domain.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_email, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, owner_email, title, content, created_at`,
		ownerEmail, title, content,
	).Scan(&n.ID, &n.OwnerEmail, &n.Title, &n.Content, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &n, nil
}

func (r *noteRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_email, title, content, created_at
		 FROM notes
		 WHERE owner_email = $1
		 ORDER BY id DESC`,
		ownerEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.OwnerEmail, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}

// Update mutates title and content of the note only when it exists and
// belongs to ownerEmail. An absent note and a foreign note both come back as
// ErrNoteNotFound so callers cannot probe for other users' note ids.
func (r *noteRepository) Update(ctx context.Context, id int64, ownerEmail, title, content string) (*domain.Note, error) {
	var n domain.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
		 SET title = $3, content = $4
		 WHERE id = $1 AND owner_email = $2
		 RETURNING id, owner_email, title, content, created_at`,
		id, ownerEmail, title, content,
	).Scan(&n.ID, &n.OwnerEmail, &n.Title, &n.Content, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &n, nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64, ownerEmail string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_email = $2`,
		id, ownerEmail,
	)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoteNotFound
	}

	return nil
}
