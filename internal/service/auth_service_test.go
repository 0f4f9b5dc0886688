package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/repository"
	"go_5_course_keep/internal/repository/mocks"
	"go_5_course_keep/internal/service"
	servicemocks "go_5_course_keep/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite は登録とログインのテストをまとめます。
type AuthServiceTestSuite struct {
	suite.Suite

	db           *gorm.DB
	mockUserRepo *mocks.UserRepository
	mockMailer   *servicemocks.Mailer
	cfg          *config.Config
	authService  service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB("sqlite://file:"+uuid.NewString()+"?mode=memory&cache=shared", logger)
	s.Require().NoError(err)
	s.db = db

	s.mockUserRepo = mocks.NewUserRepository(s.T())
	s.mockMailer = servicemocks.NewMailer(s.T())

	s.cfg = &config.Config{
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}
	s.cfg.App.Name = "CourseKeep"

	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockMailer, s.cfg)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) assertCode(err error, sentinel error, code string) {
	s.Require().Error(err)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(code, appErr.Detail.Code)
	s.ErrorIs(err, sentinel)
}

func (s *AuthServiceTestSuite) TestRegister() {
	errDBDown := errors.New("db down")

	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success - 正常に登録できる",
			req:  &model.RegisterRequest{Name: " Alice ", Email: "alice@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "alice@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(2).(*model.User).ID = 1
					}).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Require().NoError(err)
				s.Equal(uint(1), user.ID)
				s.Equal("Alice", user.Name)
				s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			},
		},
		{
			name: "Success - メール送信に失敗しても登録は成功する",
			req:  &model.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "bob@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.NoError(err)
				s.NotNil(user)
			},
		},
		{
			name: "Failure - メールアドレスが既に存在する",
			req:  &model.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "alice@example.com").Return(&model.User{ID: 1}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.assertCode(err, model.ErrConflict, "DUPLICATE_EMAIL")
			},
		},
		{
			name: "Failure - 作成時の一意制約違反も重複として扱う",
			req:  &model.RegisterRequest{Name: "Carol", Email: "carol@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "carol@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).Return(model.ErrConflict).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.assertCode(err, model.ErrConflict, "DUPLICATE_EMAIL")
			},
		},
		{
			name: "Failure - DBエラー",
			req:  &model.RegisterRequest{Name: "Dave", Email: "dave@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "dave@example.com").Return(nil, errDBDown).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.assertCode(err, errDBDown, "INTERNAL_SERVER_ERROR")
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMocks()
			user, err := s.authService.Register(context.Background(), tc.req)
			tc.checkResult(user, err)
		})
	}
}

func (s *AuthServiceTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	s.Require().NoError(err)
	user := &model.User{ID: 42, Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}

	s.Run("Success - トークンが発行される", func() {
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "alice@example.com").Return(user, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "alice@example.com", Password: "password123"})
		s.Require().NoError(err)
		s.Equal(user, resp.User)

		claims := &model.JWTCustomClaims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		s.Require().NoError(err)
		s.True(token.Valid)
		s.Equal("42", claims.Subject)
		s.Equal("CourseKeep", claims.Issuer)
		s.Equal("alice@example.com", claims.Email)
		s.NotEmpty(claims.ID)
		s.WithinDuration(time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
	})

	s.Run("Failure - パスワードが違う", func() {
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "alice@example.com").Return(user, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
		s.Nil(resp)
		s.assertCode(err, model.ErrUnauthorized, "AUTHENTICATION_FAILED")
	})

	s.Run("Failure - ユーザーが存在しない", func() {
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		s.Nil(resp)
		s.assertCode(err, model.ErrUnauthorized, "AUTHENTICATION_FAILED")
	})
}

func (s *AuthServiceTestSuite) TestGetUser() {
	s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, uint(7)).Return(&model.User{ID: 7, Name: "Alice"}, nil).Once()
	s.mockUserRepo.On("FindByID", mock.Anything, mock.Anything, uint(8)).Return(nil, model.ErrNotFound).Once()

	user, err := s.authService.GetUser(context.Background(), 7)
	s.Require().NoError(err)
	s.Equal("Alice", user.Name)

	_, err = s.authService.GetUser(context.Background(), 8)
	s.assertCode(err, model.ErrNotFound, "USER_NOT_FOUND")
}
