package services

import (
	"errors"
	"time"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/asifnewaz/blogsphere/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles registration and login. Deletion goes through
// CascadeService.
type UserService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB, jwtSecret string) *UserService {
	return &UserService{db: db, jwtSecret: jwtSecret}
}

// Register creates an account. Email and username must be unique; the first
// account in an empty users table becomes ADMIN, decided by row count inside
// the same transaction.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Status:    models.UserStatusActive,
		Role:      models.UserRoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUserRepository(tx)

		taken, err := repo.ExistsByEmail(req.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict("Email already used")
		}
		taken, err = repo.ExistsByUsername(req.Username)
		if err != nil {
			return err
		}
		if taken {
			return ErrConflict("Username already used")
		}

		count, err := repo.Count()
		if err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.UserRoleAdmin
		}

		if err := repo.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict("Email or username already used")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials (email or username) and returns the user.
func (s *UserService) Login(req *models.LoginRequest) (*models.User, error) {
	user, err := repositories.NewUserRepository(s.db).GetByEmailOrUsername(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("User not found")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrBadRequest("Wrong password")
	}
	if user.Status == models.UserStatusBanned {
		return nil, ErrForbidden("Account is banned")
	}
	return user, nil
}

// IssueToken signs a JWT for the user, valid for 72 hours.
func (s *UserService) IssueToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetByID returns a user profile.
func (s *UserService) GetByID(userID uint) (*models.User, error) {
	user, err := repositories.NewUserRepository(s.db).GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
