package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type diceGameRepository struct {
	db *sqlx.DB
}

func NewDiceGameRepository(db *sqlx.DB) repository.DiceGameRepository {
	return &diceGameRepository{db: db}
}

// diceGameRow maps the dice_games table; the selected place round-trips
// through a JSONB column.
type diceGameRow struct {
	ID              string     `db:"id"`
	Player1ID       string     `db:"player1_id"`
	Player1Username string     `db:"player1_username"`
	Player2ID       string     `db:"player2_id"`
	Player2Username string     `db:"player2_username"`
	Status          string     `db:"status"`
	DiceResult      *int       `db:"dice_result"`
	Category        *string    `db:"category"`
	CategoryEmoji   *string    `db:"category_emoji"`
	SelectedPlace   []byte     `db:"selected_place"`
	GameDay         string     `db:"game_day"`
	CreatedAt       time.Time  `db:"created_at"`
	AcceptedAt      *time.Time `db:"accepted_at"`
	RolledAt        *time.Time `db:"rolled_at"`
}

func (row *diceGameRow) toDomain() (*domain.DiceGame, error) {
	game := &domain.DiceGame{
		ID:              row.ID,
		Player1ID:       row.Player1ID,
		Player1Username: row.Player1Username,
		Player2ID:       row.Player2ID,
		Player2Username: row.Player2Username,
		Status:          domain.DiceGameStatus(row.Status),
		DiceResult:      row.DiceResult,
		Category:        row.Category,
		CategoryEmoji:   row.CategoryEmoji,
		CreatedAt:       row.CreatedAt,
		AcceptedAt:      row.AcceptedAt,
		RolledAt:        row.RolledAt,
	}
	if len(row.SelectedPlace) > 0 {
		var place domain.Place
		if err := json.Unmarshal(row.SelectedPlace, &place); err != nil {
			return nil, fmt.Errorf("failed to decode selected place: %w", err)
		}
		game.SelectedPlace = &place
	}
	return game, nil
}

func (r *diceGameRepository) CreateUnique(ctx context.Context, game *domain.DiceGame, day string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock both player rows in id order so two simultaneous invites for
	// the same pair serialize regardless of direction, then
	// check-then-insert. The pair is unordered: a game either way counts.
	lock := `SELECT 1 FROM users WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`
	if _, err := tx.ExecContext(ctx, lock, game.Player1ID, game.Player2ID); err != nil {
		return err
	}

	var count int
	dupQuery := `
		SELECT COUNT(*) FROM dice_games
		WHERE game_day = $1
		  AND ((player1_id = $2 AND player2_id = $3) OR (player1_id = $3 AND player2_id = $2))
	`
	if err := tx.GetContext(ctx, &count, dupQuery, day, game.Player1ID, game.Player2ID); err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDuplicateInvite
	}

	insert := `
		INSERT INTO dice_games (id, player1_id, player1_username, player2_id, player2_username, status, game_day, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.ExecContext(ctx, insert,
		game.ID, game.Player1ID, game.Player1Username, game.Player2ID, game.Player2Username,
		string(game.Status), day, game.CreatedAt,
	); err != nil {
		// The pair/day unique index backstops the scan.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateInvite
		}
		return fmt.Errorf("failed to insert dice game: %w", err)
	}

	return tx.Commit()
}

func (r *diceGameRepository) GetByID(ctx context.Context, id string) (*domain.DiceGame, error) {
	var row diceGameRow
	query := `SELECT * FROM dice_games WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

func (r *diceGameRepository) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE dice_games SET status = 'accepted', accepted_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *diceGameRepository) MarkRolled(ctx context.Context, id string, result int, category, emoji string, place *domain.Place, at time.Time) error {
	placeJSON, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("failed to encode selected place: %w", err)
	}
	query := `
		UPDATE dice_games
		SET status = 'rolled', dice_result = $1, category = $2, category_emoji = $3, selected_place = $4, rolled_at = $5
		WHERE id = $6
	`
	res, err := r.db.ExecContext(ctx, query, result, category, emoji, placeJSON, at, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *diceGameRepository) GetTodayByUser(ctx context.Context, userID, day string) ([]*domain.DiceGame, error) {
	var rows []diceGameRow
	query := `
		SELECT * FROM dice_games
		WHERE game_day = $1 AND (player1_id = $2 OR player2_id = $2)
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, day, userID); err != nil {
		return nil, err
	}
	games := make([]*domain.DiceGame, 0, len(rows))
	for i := range rows {
		game, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}
