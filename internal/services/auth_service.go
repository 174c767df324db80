package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"ats_backend/internal/auth"
	"ats_backend/internal/email"
	"ats_backend/internal/logger"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/services/dto"
	"ats_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
}

type authService struct {
	db            *gorm.DB
	users         repositories.UserRepository
	profiles      repositories.ProfileRepository
	refreshTokens repositories.RefreshTokenRepository
	tokens        *auth.TokenManager
	refreshTTL    time.Duration
	mailer        email.Provider // optional
}

func NewAuthService(
	db *gorm.DB,
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	refreshTokens repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	refreshTTL time.Duration,
	mailer email.Provider,
) AuthService {
	return &authService{
		db:            db,
		users:         users,
		profiles:      profiles,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		refreshTTL:    refreshTTL,
		mailer:        mailer,
	}
}

// Register creates the user and its profile atomically.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ValidationError(map[string]string{
			"username": "A user with that username already exists.",
		})
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ValidationError(map[string]string{
			"email": "A user with that email already exists.",
		})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		profile := &models.UserProfile{
			UserID:      user.ID,
			Role:        req.Role,
			CompanyName: req.CompanyName,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		}
		return s.profiles.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", req.Role)

	if s.mailer != nil {
		go func(to, name, role string) {
			if err := s.mailer.SendWelcome(to, name, role); err != nil {
				logger.Warn("welcome email failed", "error", err.Error(), "email", to)
			}
		}(user.Email, user.FullName(), string(req.Role))
	}

	return dto.NewRegisterResponse(user), nil
}

// Login checks credentials and issues an access/refresh token pair. The role
// in the response is null when the user has no profile.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.LoginResponse{
		Refresh:  refresh,
		Access:   access,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
	if profile, err := s.profiles.FindByUserID(ctx, user.ID); err == nil {
		role := profile.Role
		resp.Role = &role
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return resp, nil
}

// Refresh rotates a valid refresh token and issues a fresh access token.
func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	stored, err := s.refreshTokens.FindByToken(ctx, req.Refresh)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokens.DeleteByToken(ctx, stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokens.DeleteByToken(ctx, stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	access, err := s.tokens.GenerateAccessToken(stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh, err := s.issueRefreshToken(ctx, stored.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.RefreshResponse{Access: access, Refresh: refresh}, nil
}

func (s *authService) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refreshTokens.Create(ctx, rt); err != nil {
		return "", err
	}
	return token, nil
}
