package services

import (
	"errors"
	"fmt"
	"time"

	"questify/internal/logger"
	"questify/internal/models"
	"questify/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and bearer-token handling.
type AuthService struct {
	userRepo    repositories.UserRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
	bcryptCost  int
	log         *logger.Logger
}

// NewAuthService creates a new AuthService. bcryptCost tunes the
// password hashing work factor; expiry bounds token lifetime.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, expiry time.Duration, bcryptCost int, log *logger.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: expiry,
		bcryptCost:  bcryptCost,
		log:         log,
	}
}

// Register validates the password against the policy, hashes it and
// stores the new user. The username lookup is only a fast path for a
// friendly error; the unique index on users.user_name is the authority,
// so a racing duplicate insert also surfaces as ErrUserNameTaken.
func (s *AuthService) Register(userName, password string) (*models.User, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByUserName(userName); err == nil {
		return nil, ErrUserNameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserName:     userName,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUserName) {
			return nil, ErrUserNameTaken
		}
		return nil, err
	}

	s.log.Info().Str("user_name", user.UserName).Uint("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token.
// Unknown usernames and wrong passwords produce the same error.
func (s *AuthService) Login(userName, password string) (string, error) {
	user, err := s.userRepo.GetByUserName(userName)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken signs an HS256 JWT for the user: subject is the username,
// user_id is a custom numeric claim, expiry is issuance time plus the
// configured window.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     user.UserName,
		"user_id": user.ID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenExpiry).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// AuthenticateToken verifies a bearer token and resolves the subject
// claim to a live user record. Bad signatures, malformed tokens,
// expired tokens and vanished users all come back as ErrUnauthorized;
// the caller cannot tell which check failed.
func (s *AuthService) AuthenticateToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByUserName(sub)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
