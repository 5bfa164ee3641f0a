// Package user provides the application layer for accounts,
// authentication, and recipe favorites.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/user"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

const minPasswordLength = 8

// Claims are the JWT claims issued on login.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// sessionRecord is what gets cached per issued token.
type sessionRecord struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}

// UserService implements the account use cases.
type UserService struct {
	userRepo  outbound.UserRepository
	catalog   outbound.RecipeCatalog
	cache     outbound.CacheRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo outbound.UserRepository,
	catalog outbound.RecipeCatalog,
	cache outbound.CacheRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		catalog:   catalog,
		cache:     cache,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger.Named("user-service"),
	}
}

// Register creates a new account and signs the user in.
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResult, error) {
	s.logger.Info("Registering new user", zap.String("email", cmd.Email))

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if existing != nil {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	entity, err := user.NewUser(cmd.Email, cmd.Name, string(hash))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", entity.ID.String()),
		zap.String("email", entity.Email),
	)
	return s.issueSession(ctx, entity)
}

// Login authenticates by email and password.
func (s *UserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.AuthResult, error) {
	entity, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if entity == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(cmd.Password)); err != nil {
		s.logger.Warn("Invalid password attempt", zap.String("email", cmd.Email))
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := s.userRepo.UpdateLastLogin(ctx, entity.ID); err != nil {
		s.logger.Error("Failed to record last login", zap.Error(err))
	}

	return s.issueSession(ctx, entity)
}

// Get returns the public shape of a user.
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := entityToDTO(entity)
	return &dto, nil
}

// ResolveByEmail returns the full user entity for email, or an error when
// none exists.
func (s *UserService) ResolveByEmail(ctx context.Context, email string) (*user.User, error) {
	entity, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewDatabaseError("find user by email", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(email)
	}
	return entity, nil
}

// ToggleFavorite adds or removes a catalog recipe from the user's
// favorites and reports the resulting state.
func (s *UserService) ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeSlug string) (bool, error) {
	if _, ok := s.catalog.BySlug(recipeSlug); !ok {
		return false, errors.NewRecipeNotFoundError(recipeSlug)
	}

	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return false, err
	}

	nowFavorite := entity.ToggleFavorite(recipeSlug)
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return false, errors.NewDatabaseError("update user", err)
	}

	s.logger.Info("Favorite toggled",
		zap.String("user_id", userID.String()),
		zap.String("slug", recipeSlug),
		zap.Bool("favorite", nowFavorite),
	)
	return nowFavorite, nil
}

// ListFavorites resolves the user's favorite slugs against the catalog.
// Slugs that no longer resolve are dropped silently.
func (s *UserService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]catalog.Recipe, error) {
	entity, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Recipe, 0, len(entity.Favorites))
	for _, slug := range entity.Favorites {
		if recipe, ok := s.catalog.BySlug(slug); ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

// VerifyToken parses and validates an access token, checking the cached
// session so that revoked sessions are rejected before expiry.
func (s *UserService) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.NewUnauthorizedError("invalid token claims")
	}

	exists, err := s.cache.Exists(ctx, sessionKey(claims.ID))
	if err != nil {
		s.logger.Warn("Session lookup failed, accepting token on signature alone", zap.Error(err))
		return claims, nil
	}
	if !exists {
		return nil, errors.NewUnauthorizedError("session expired")
	}
	return claims, nil
}

func (s *UserService) issueSession(ctx context.Context, entity *user.User) (*inbound.AuthResult, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	sessionID := uuid.NewString()

	claims := Claims{
		UserID: entity.ID,
		Email:  entity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   entity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, errors.NewInternalError("failed to sign token")
	}

	record, err := json.Marshal(sessionRecord{
		UserID:   entity.ID,
		Email:    entity.Email,
		IssuedAt: now,
	})
	if err == nil {
		if cacheErr := s.cache.Set(ctx, sessionKey(sessionID), record, s.tokenTTL); cacheErr != nil {
			s.logger.Warn("Failed to cache session", zap.Error(cacheErr))
		}
	}

	return &inbound.AuthResult{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User:        entityToDTO(entity),
	}, nil
}

func (s *UserService) findUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find user", err)
	}
	if entity == nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}
	return entity, nil
}

func entityToDTO(entity *user.User) inbound.UserDTO {
	favorites := entity.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return inbound.UserDTO{
		ID:        entity.ID,
		Email:     entity.Email,
		Name:      entity.Name,
		Favorites: favorites,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
