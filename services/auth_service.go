package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nntexpressinc/blackhawks.tms-sub001/entity"
	"github.com/nntexpressinc/blackhawks.tms-sub001/repository"
	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user. Role defaults to viewer; elevated roles are
// assigned by an admin outside this flow.
func (s *AuthService) Register(email, password, firstName, lastName string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      "viewer",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a token carrying the role's capability
// blob.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	caps := utils.RoleCapabilities(user.Role)
	token, err := utils.GenerateToken(user.ID, user.Role, caps, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}
