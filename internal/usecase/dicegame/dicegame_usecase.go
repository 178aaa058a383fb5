package dicegame

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/random"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

// DiceGameUseCase drives the two-player invite/accept/roll protocol.
// Each call is an independent guarded step; nothing blocks waiting for
// the other player.
type DiceGameUseCase struct {
	gameRepo repository.DiceGameRepository
	userRepo repository.UserRepository
	emitter  *notification.Emitter
	rng      random.Source
	now      func() time.Time
}

func NewDiceGameUseCase(
	gameRepo repository.DiceGameRepository,
	userRepo repository.UserRepository,
	emitter *notification.Emitter,
	rng random.Source,
) *DiceGameUseCase {
	return &DiceGameUseCase{
		gameRepo: gameRepo,
		userRepo: userRepo,
		emitter:  emitter,
		rng:      rng,
		now:      time.Now,
	}
}

// CreateInvite opens a pending game against the opponent. One game per
// unordered pair per calendar day, in either direction.
func (uc *DiceGameUseCase) CreateInvite(ctx context.Context, from *domain.User, toUserID string) (*domain.DiceGame, error) {
	if from.ID == toUserID {
		return nil, fmt.Errorf("%w: cannot invite yourself", domain.ErrInvalidInput)
	}
	opponent, err := uc.userRepo.GetByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	createdAt := uc.now()
	game := &domain.DiceGame{
		ID:              uuid.NewString(),
		Player1ID:       from.ID,
		Player1Username: from.Username,
		Player2ID:       opponent.ID,
		Player2Username: opponent.Username,
		Status:          domain.DiceGamePending,
		CreatedAt:       createdAt,
	}
	if err := uc.gameRepo.CreateUnique(ctx, game, createdAt.Format("2006-01-02")); err != nil {
		return nil, err
	}

	uc.emitter.Emit(ctx, &domain.Notification{
		RecipientID:    opponent.ID,
		Type:           domain.NotificationDiceInvite,
		SenderID:       from.ID,
		SenderUsername: from.Username,
		Message:        fmt.Sprintf("%s seni zar oyununa davet etti! 🎲", from.Username),
		GameID:         &game.ID,
	})
	return game, nil
}

// AcceptInvite moves a pending game to accepted. Only the invited
// player may accept; the inviter cannot accept their own invite.
func (uc *DiceGameUseCase) AcceptInvite(ctx context.Context, gameID, userID string) (*domain.DiceGame, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Player2ID != userID {
		return nil, domain.ErrNotYourGame
	}
	if game.Status != domain.DiceGamePending {
		return nil, domain.ErrGameNotReady
	}

	acceptedAt := uc.now()
	if err := uc.gameRepo.MarkAccepted(ctx, gameID, acceptedAt); err != nil {
		return nil, err
	}
	game.Status = domain.DiceGameAccepted
	game.AcceptedAt = &acceptedAt

	uc.emitter.Emit(ctx, &domain.Notification{
		RecipientID:    game.Player1ID,
		Type:           domain.NotificationDiceAccepted,
		SenderID:       game.Player2ID,
		SenderUsername: game.Player2Username,
		Message:        fmt.Sprintf("%s davetini kabul etti! Zarı atabilirsiniz 🎲", game.Player2Username),
		GameID:         &game.ID,
	})
	return game, nil
}

// RollResult is the terminal payload of a game.
type RollResult struct {
	DiceResult    int              `json:"dice_result"`
	Category      string           `json:"category"`
	CategoryEmoji string           `json:"category_emoji"`
	SelectedPlace *domain.Place    `json:"selected_place"`
	Game          *domain.DiceGame `json:"game"`
}

// RollDice draws the die, resolves the category, picks a destination
// from the candidate pool and notifies both players. Either player may
// roll once the game is accepted.
func (uc *DiceGameUseCase) RollDice(ctx context.Context, gameID, userID string, candidates []domain.Place) (*RollResult, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(userID) {
		return nil, domain.ErrNotYourGame
	}
	if game.Status != domain.DiceGameAccepted {
		return nil, domain.ErrGameNotReady
	}
	if len(candidates) == 0 {
		return nil, domain.ErrInsufficientCandidates
	}

	result := uc.rng.Intn(6) + 1
	category := domain.DiceCategories[result]

	// Empty type list (Sürpriz) means the whole pool; a filter that
	// matches nothing also falls back to the whole pool.
	pool := candidates
	if len(category.Types) > 0 {
		if filtered := filterByTypes(candidates, category.Types); len(filtered) > 0 {
			pool = filtered
		}
	}
	place := pool[uc.rng.Intn(len(pool))]

	rolledAt := uc.now()
	if err := uc.gameRepo.MarkRolled(ctx, gameID, result, category.Name, category.Emoji, &place, rolledAt); err != nil {
		return nil, err
	}
	game.Status = domain.DiceGameRolled
	game.DiceResult = &result
	game.Category = &category.Name
	game.CategoryEmoji = &category.Emoji
	game.SelectedPlace = &place
	game.RolledAt = &rolledAt

	message := fmt.Sprintf("Zar atıldı! %s %s - %s", category.Emoji, category.Name, place.Name)
	for _, playerID := range []string{game.Player1ID, game.Player2ID} {
		senderID, senderUsername := game.OtherPlayer(playerID)
		uc.emitter.Emit(ctx, &domain.Notification{
			RecipientID:    playerID,
			Type:           domain.NotificationDiceRolled,
			SenderID:       senderID,
			SenderUsername: senderUsername,
			Message:        message,
			PlaceName:      &place.Name,
			GameID:         &game.ID,
		})
	}

	return &RollResult{
		DiceResult:    result,
		Category:      category.Name,
		CategoryEmoji: category.Emoji,
		SelectedPlace: &place,
		Game:          game,
	}, nil
}

// GetGame returns one game, players only.
func (uc *DiceGameUseCase) GetGame(ctx context.Context, gameID, userID string) (*domain.DiceGame, error) {
	game, err := uc.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(userID) {
		return nil, domain.ErrNotYourGame
	}
	return game, nil
}

// GetTodayGames lists the user's games for the current calendar day.
func (uc *DiceGameUseCase) GetTodayGames(ctx context.Context, userID string) ([]*domain.DiceGame, error) {
	return uc.gameRepo.GetTodayByUser(ctx, userID, uc.now().Format("2006-01-02"))
}

func filterByTypes(places []domain.Place, types []string) []domain.Place {
	var out []domain.Place
	for _, p := range places {
		if p.HasAnyTag(types) {
			out = append(out, p)
		}
	}
	return out
}
