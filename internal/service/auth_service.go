//go:generate mockery --name AuthService --structname MockAuthService --filename mock_auth_service.go --output ./mocks --outpkg mocks
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Register は新しいユーザーを登録し、ウェルカムメールを送信します。
// メール送信の失敗は登録結果に影響しません。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	email := strings.TrimSpace(req.Email)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			logger.Warn("Email already exists", "email", email)
			return duplicateEmail()
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return internalError(err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			PasswordHash: string(hashedPassword),
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return duplicateEmail()
			}
			return internalError(err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sendWelcomeEmail(ctx, newUser); err != nil {
		logger.Error("Failed to send welcome email", "error", err, "user_id", newUser.ID)
	}

	logger.Info("User registered", "user_id", newUser.ID, "email", newUser.Email)
	return newUser, nil
}

// Login はユーザーを認証し、JWTを返します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, invalidCredentials()
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, internalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.ID)
		return nil, invalidCredentials()
	}

	signedToken, err := s.issueToken(user)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return &model.LoginResponse{User: user, Token: signedToken}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFoundError("USER_NOT_FOUND", "ユーザーが見つかりません。")
		}
		return nil, internalError(err)
	}
	return user, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &model.JWTCustomClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.cfg.App.Name,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

func (s *authService) sendWelcomeEmail(ctx context.Context, user *model.User) error {
	if s.mailer == nil {
		return nil
	}
	subject := fmt.Sprintf("【%s】ご登録ありがとうございます", s.cfg.App.Name)
	body := fmt.Sprintf("%s さん\n\n%s へのご登録ありがとうございます。\nログインしてコースの受講を始めましょう。", user.Name, s.cfg.App.Name)
	return s.mailer.Send(ctx, user.Email, subject, body)
}

func duplicateEmail() error {
	return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
}

func invalidCredentials() error {
	return model.NewAppError("AUTHENTICATION_FAILED", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)
}
