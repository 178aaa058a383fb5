package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrInvalidInput      = errors.New("invalid input")

	ErrMemoryNotFound       = errors.New("memory not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrGoodDeedNotFound     = errors.New("good deed not found")

	// ErrDuplicateCheckIn rejects a second check-in for the same
	// (user, place) pair inside the rolling 24h window.
	ErrDuplicateCheckIn = errors.New("already checked in today")

	// ErrDuplicateInvite rejects a second dice game for the same
	// unordered player pair on the same calendar day.
	ErrDuplicateInvite = errors.New("already played today")

	ErrGameNotFound = errors.New("game not found")
	// ErrGameNotReady rejects a roll while the game is still pending.
	ErrGameNotReady = errors.New("game not accepted yet")
	// ErrNotYourGame rejects actions by users who are not a participant,
	// and accepts attempted by anyone but player2.
	ErrNotYourGame = errors.New("not a participant of this game")

	// ErrInsufficientCandidates means fewer places exist than the
	// route or roll needs, even after the fallback pool.
	ErrInsufficientCandidates = errors.New("not enough candidate places")

	// ErrProviderUnavailable signals an external collaborator failure.
	// Callers degrade to empty results instead of crashing.
	ErrProviderUnavailable = errors.New("places provider unavailable")
)
