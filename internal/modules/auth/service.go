package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cinelog/internal/domain"
	"cinelog/internal/repository"
)

const (
	maxBioLength    = 500
	maxAvatarLength = 2048
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// Service contains all business logic for accounts and authentication
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates an account and mints a token for it. The pre-checks
// give the caller a field-specific conflict message; the unique indexes on
// username and email are the backstop when two registrations race past
// them.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if taken, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if taken {
		return nil, "", ErrEmailAlreadyExists
	}
	if taken, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return nil, "", err
	} else if taken {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			// The race lost to another registration; figure out which
			// field collided so the message stays accurate.
			if taken, checkErr := s.users.ExistsByUsername(ctx, username); checkErr == nil && taken {
				return nil, "", ErrUsernameTaken
			}
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login checks credentials and mints a token. Unknown email and wrong
// password return the same error so callers cannot probe which accounts
// exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) GetPublicProfile(ctx context.Context, username string) (*domain.PublicProfile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p := user.Public()
	return &p, nil
}

// UpdateProfile applies a partial bio/avatar update. Username and email
// are immutable after registration.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	if req.Bio != nil && len(*req.Bio) > maxBioLength {
		return nil, ErrInvalidRequest
	}
	if req.Avatar != nil && len(*req.Avatar) > maxAvatarLength {
		return nil, ErrInvalidRequest
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
