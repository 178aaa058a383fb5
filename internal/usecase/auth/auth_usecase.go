package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/auramap/auramap-backend/internal/config"
	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret string
	expiry    time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, cfg *config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: cfg.Secret,
		expiry:    time.Duration(cfg.ExpiryMin) * time.Minute,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Register creates the account and signs the first token.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Answers:      domain.SurveyAnswers{},
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueToken(user)
}

// Login verifies the credentials and signs a token. A missing user and
// a wrong password are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}

	return uc.issueToken(user)
}

// Me returns the authenticated user's record.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfilePicture stores the photo URL on the user record.
func (uc *AuthUseCase) UpdateProfilePicture(ctx context.Context, userID, url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("%w: empty picture url", domain.ErrInvalidInput)
	}
	return uc.userRepo.UpdateProfilePicture(ctx, userID, url)
}

func (uc *AuthUseCase) issueToken(user *domain.User) (*AuthResponse, error) {
	expiresAt := time.Now().Add(uc.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

// VerifyToken parses and validates a token, returning the embedded
// user id and username.
func (uc *AuthUseCase) VerifyToken(tokenString string) (userID, username string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", domain.ErrInvalidToken
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", domain.ErrInvalidToken
	}
	username, _ = claims["username"].(string)
	return userID, username, nil
}
