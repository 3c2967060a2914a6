package service

import (
	"context"
	"time"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	ResolveUser(ctx context.Context, tokenStr string) (*entity.User, error)
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenExpiry time.Duration) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user (exact, case-sensitive match)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	// 2. Hash password; the plaintext is never stored
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity
	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Unknown user and wrong password produce the same error.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signedToken, err := s.issueToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: signedToken,
		TokenType:   "bearer",
	}, nil
}

// issueToken signs a self-contained JWT carrying the username as subject, so
// validation needs no database round trip.
func (s *authService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ResolveUser(ctx context.Context, tokenStr string) (*entity.User, error) {
	if tokenStr == "" {
		return nil, ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrUnauthenticated
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: claims.Subject})
	if err != nil || user == nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
