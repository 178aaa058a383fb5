package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied on startup; every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              TEXT PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	email           TEXT NOT NULL UNIQUE,
	password_hash   TEXT NOT NULL,
	profile_picture TEXT,
	answers         JSONB NOT NULL DEFAULT '{}',
	profile_key     TEXT,
	profile_type    TEXT,
	score_breakdown JSONB NOT NULL DEFAULT '{}',
	total_visits    INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS follows (
	follower_id TEXT NOT NULL REFERENCES users(id),
	followee_id TEXT NOT NULL REFERENCES users(id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (follower_id, followee_id)
);

CREATE TABLE IF NOT EXISTS stamps (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL REFERENCES users(id),
	place_id      TEXT NOT NULL,
	place_name    TEXT NOT NULL,
	place_address TEXT NOT NULL DEFAULT '',
	category      TEXT NOT NULL,
	latitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
	longitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_stamps_user_place ON stamps (user_id, place_id, created_at);

CREATE TABLE IF NOT EXISTS memories (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id),
	place_name TEXT NOT NULL,
	note       TEXT NOT NULL DEFAULT '',
	photo      TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_memories_user ON memories (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS memory_likes (
	memory_id  TEXT NOT NULL REFERENCES memories(id),
	user_id    TEXT NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (memory_id, user_id)
);

CREATE TABLE IF NOT EXISTS memory_comments (
	id         TEXT PRIMARY KEY,
	memory_id  TEXT NOT NULL REFERENCES memories(id),
	user_id    TEXT NOT NULL REFERENCES users(id),
	username   TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_memory_comments_memory ON memory_comments (memory_id, created_at);

CREATE TABLE IF NOT EXISTS notifications (
	id              TEXT PRIMARY KEY,
	recipient_id    TEXT NOT NULL,
	type            TEXT NOT NULL,
	sender_id       TEXT NOT NULL,
	sender_username TEXT NOT NULL,
	message         TEXT NOT NULL,
	place_id        TEXT,
	place_name      TEXT,
	stamp_category  TEXT,
	stamp_emoji     TEXT,
	restaurant_id   TEXT,
	restaurant_name TEXT,
	good_deed_id    TEXT,
	game_id         TEXT,
	memory_id       TEXT,
	read            BOOLEAN NOT NULL DEFAULT FALSE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications (recipient_id, created_at DESC);

CREATE TABLE IF NOT EXISTS good_deeds (
	id                       TEXT PRIMARY KEY,
	user_id                  TEXT NOT NULL REFERENCES users(id),
	username                 TEXT NOT NULL,
	trigger_place_id         TEXT NOT NULL,
	trigger_place_name       TEXT NOT NULL,
	status                   TEXT NOT NULL DEFAULT 'pending',
	assigned_restaurant_id   TEXT,
	assigned_restaurant_name TEXT,
	created_at               TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	assigned_at              TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS dice_games (
	id               TEXT PRIMARY KEY,
	player1_id       TEXT NOT NULL REFERENCES users(id),
	player1_username TEXT NOT NULL,
	player2_id       TEXT NOT NULL REFERENCES users(id),
	player2_username TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'pending',
	dice_result      INTEGER,
	category         TEXT,
	category_emoji   TEXT,
	selected_place   JSONB,
	game_day         TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	accepted_at      TIMESTAMPTZ,
	rolled_at        TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_dice_games_day ON dice_games (game_day, player1_id, player2_id);
CREATE UNIQUE INDEX IF NOT EXISTS uniq_dice_pair_day
	ON dice_games ((LEAST(player1_id, player2_id)), (GREATEST(player1_id, player2_id)), game_day);
`

// EnsureSchema creates missing tables and indexes.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
