// Package auth implements account registration and credential login.
package auth

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/dto/respond"
	"petlify_server/internal/model"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/jwt"
	"petlify_server/pkg/util/random"
)

// authService implements service.AuthService.
type authService struct {
	repos *mysql.Repositories
}

// NewAuthService creates the auth service.
func NewAuthService(repos *mysql.Repositories) *authService {
	return &authService{repos: repos}
}

// Register creates an account with a bcrypt-hashed password and
// returns a signed token pair.
func (s *authService) Register(req request.RegisterRequest) (*respond.LoginRespond, error) {
	// Friendly pre-check; the unique index on email backs the race.
	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "an account with this email already exists")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("register email lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("hash password failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	user := &model.UserInfo{
		Uuid:     random.NewUserID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.repos.User.Create(user); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeUserExist, "an account with this email already exists")
		}
		zap.L().Error("create user failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return s.issueTokens(user)
}

// Login verifies the credentials. An unknown email and a wrong
// password produce the same error.
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeInvalidPassword, "invalid credentials")
		}
		zap.L().Error("login email lookup failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errorx.New(errorx.CodeInvalidPassword, "invalid credentials")
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *model.UserInfo) (*respond.LoginRespond, error) {
	isAdmin := user.IsAdmin == 1

	accessToken, err := jwt.GenerateAccessToken(user.Uuid, isAdmin)
	if err != nil {
		zap.L().Error("sign access token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, _, err := jwt.GenerateRefreshToken(user.Uuid, isAdmin)
	if err != nil {
		zap.L().Error("sign refresh token failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.LoginRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: respond.UserSummary{
			UserId:  user.Uuid,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: isAdmin,
		},
	}, nil
}
