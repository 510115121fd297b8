package authservice

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/rebox/internal/domain"
	"github.com/GlebRadaev/rebox/internal/pg"
	"github.com/GlebRadaev/rebox/pkg/auth"
	"go.uber.org/zap"
)

const (
	minLoginLen    = 3
	maxLoginLen    = 50
	minPasswordLen = 8

	tokenTTL = 15 * time.Minute
)

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidLogin       = errors.New("login must be 3 to 50 characters long")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Accounts opens the rewards account of a newly registered user.
type Accounts interface {
	CreateAccount(ctx context.Context, userID int) (*domain.RewardsAggregate, error)
}

type Service struct {
	userRepo    Repo
	txManager   pg.TXManager
	accounts    Accounts
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, txManager pg.TXManager, accounts Accounts, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		txManager:   txManager,
		accounts:    accounts,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the user and its rewards account in one transaction.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	if n := utf8.RuneCountInString(login); n < minLoginLen || n > maxLoginLen {
		return nil, ErrInvalidLogin
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existingUser, err := s.userRepo.FindByLogin(ctx, login)
		if err != nil {
			zap.L().Error("can't find user", zap.Error(err))
			return err
		}
		if existingUser != nil {
			zap.L().Info("user already exists", zap.String("login", login))
			return ErrLoginTaken
		}

		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return err
		}

		user, err = s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			zap.L().Info("user already exists", zap.String("login", login))
			return ErrLoginTaken
		}
		if err != nil {
			zap.L().Error("can't create user", zap.Error(err))
			return err
		}

		if _, err = s.accounts.CreateAccount(ctx, user.ID); err != nil {
			zap.L().Error("can't create rewards account", zap.Int("userID", user.ID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't look up user", zap.String("login", login), zap.Error(err))
		return nil, domain.StorageError(err)
	}
	if user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
