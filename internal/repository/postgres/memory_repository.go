package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type memoryRepository struct {
	db *sqlx.DB
}

func NewMemoryRepository(db *sqlx.DB) repository.MemoryRepository {
	return &memoryRepository{db: db}
}

// memoryRow joins the author's username onto the memory record.
type memoryRow struct {
	domain.Memory
	Username string `db:"username"`
}

func (r *memoryRepository) Create(ctx context.Context, memory *domain.Memory) error {
	query := `
		INSERT INTO memories (id, user_id, place_name, note, photo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		memory.ID, memory.UserID, memory.PlaceName, memory.Note, memory.Photo, memory.CreatedAt)
	return err
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*domain.Memory, error) {
	var row memoryRow
	query := `
		SELECT m.id, m.user_id, m.place_name, m.note, m.photo, m.created_at, u.username
		FROM memories m JOIN users u ON u.id = m.user_id
		WHERE m.id = $1
	`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemoryNotFound
		}
		return nil, err
	}
	memory := row.Memory
	memory.Username = row.Username
	if err := r.attach(ctx, []*domain.Memory{&memory}); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (r *memoryRepository) GetByAuthors(ctx context.Context, userIDs []string) ([]*domain.Memory, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []memoryRow
	query := `
		SELECT m.id, m.user_id, m.place_name, m.note, m.photo, m.created_at, u.username
		FROM memories m JOIN users u ON u.id = m.user_id
		WHERE m.user_id = ANY($1)
		ORDER BY m.created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(userIDs)); err != nil {
		return nil, err
	}

	memories := make([]*domain.Memory, len(rows))
	for i := range rows {
		m := rows[i].Memory
		m.Username = rows[i].Username
		memories[i] = &m
	}
	if err := r.attach(ctx, memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// attach populates likes and comments for the given memories.
func (r *memoryRepository) attach(ctx context.Context, memories []*domain.Memory) error {
	if len(memories) == 0 {
		return nil
	}
	ids := make([]string, len(memories))
	byID := make(map[string]*domain.Memory, len(memories))
	for i, m := range memories {
		ids[i] = m.ID
		byID[m.ID] = m
		m.Likes = []string{}
		m.Comments = []domain.Comment{}
	}

	likeRows := []struct {
		MemoryID string `db:"memory_id"`
		UserID   string `db:"user_id"`
	}{}
	likeQuery := `SELECT memory_id, user_id FROM memory_likes WHERE memory_id = ANY($1)`
	if err := r.db.SelectContext(ctx, &likeRows, likeQuery, pq.Array(ids)); err != nil {
		return err
	}
	for _, row := range likeRows {
		m := byID[row.MemoryID]
		m.Likes = append(m.Likes, row.UserID)
	}

	var comments []domain.Comment
	commentQuery := `
		SELECT * FROM memory_comments
		WHERE memory_id = ANY($1)
		ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &comments, commentQuery, pq.Array(ids)); err != nil {
		return err
	}
	for _, c := range comments {
		m := byID[c.MemoryID]
		m.Comments = append(m.Comments, c)
	}
	return nil
}

func (r *memoryRepository) Like(ctx context.Context, memoryID, userID string) error {
	// Set semantics: liking twice is a no-op, same as firestore arrayUnion.
	query := `
		INSERT INTO memory_likes (memory_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, memoryID, userID)
	return err
}

func (r *memoryRepository) Unlike(ctx context.Context, memoryID, userID string) error {
	query := `DELETE FROM memory_likes WHERE memory_id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, memoryID, userID)
	return err
}

func (r *memoryRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO memory_comments (id, memory_id, user_id, username, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.MemoryID, comment.UserID, comment.Username, comment.Text, comment.CreatedAt)
	return err
}
