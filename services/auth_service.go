package services

import (
	"context"
	"log"
	"strings"
	"time"

	"dmscreen/models"
	"dmscreen/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 24 * time.Hour

type AuthService struct {
	users     *repository.UserRepository
	sessions  *SessionStore
	jwtSecret string
}

func NewAuthService(users *repository.UserRepository, sessions *SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Register(name, password, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, Validation("No username specified.")
	}
	if password == "" {
		return nil, Validation("No password specified.")
	}

	existing, err := s.users.FindByName(name)
	if err != nil {
		return nil, Internal(err)
	}
	if existing != nil {
		return nil, Conflict("Username already in use.")
	}

	if email != "" {
		existing, err = s.users.FindByEmail(email)
		if err != nil {
			return nil, Internal(err)
		}
		if existing != nil {
			return nil, Conflict("Email already in use.")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Internal(err)
	}

	user := models.NewUser(name, hash, email)
	if err := s.users.Create(user); err != nil {
		return nil, Internal(err)
	}
	return user, nil
}

// Authenticate checks a username/password pair without touching session
// state. A wrong name and a wrong password produce the same error.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindByName(username)
	if err != nil {
		return nil, Internal(err)
	}
	if user == nil {
		return nil, Validation("Invalid username or password.")
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return nil, Validation("Invalid username or password.")
	}
	return user, nil
}

// Login authenticates and issues a signed bearer token backed by a Redis
// session record.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) IssueToken(ctx context.Context, user *models.User) (string, error) {
	tokenID := uuid.NewString()
	now := time.Now()
	expiresAt := now.Add(s.sessions.TTL())

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"jti":     tokenID,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", Internal(err)
	}

	session := &Session{
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Set(ctx, tokenID, session); err != nil {
		return "", Internal(err)
	}
	return signed, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.Delete(ctx, tokenID); err != nil {
		return Internal(err)
	}
	return nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, Internal(err)
	}
	if user == nil {
		return nil, NotFound("This user does not exist.")
	}
	return user, nil
}

// ForgotPassword issues a one-time reset code for the account behind the
// email address. Delivering the code by mail is handled outside this
// service; the code is logged for the mailer to pick up.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return Internal(err)
	}
	if user == nil {
		return NotFound("No user with this email exists.")
	}

	reset := models.NewEmailReset(user.ID, uuid.NewString(), time.Now())
	if err := s.users.CreateReset(reset); err != nil {
		return Internal(err)
	}

	log.Printf("Password reset code issued for user %s", user.Name)
	return nil
}

func (s *AuthService) FindUserByResetCode(code string) (*models.User, error) {
	reset, err := s.users.FindResetByCode(code)
	if err != nil {
		return nil, Internal(err)
	}
	if reset == nil {
		return nil, NotFound("This reset code is invalid.")
	}
	if time.Since(reset.Date) > resetCodeTTL {
		return nil, Validation("This reset code has expired.")
	}

	user, err := s.users.FindByID(reset.UserID)
	if err != nil {
		return nil, Internal(err)
	}
	if user == nil {
		return nil, NotFound("This user does not exist.")
	}
	return user, nil
}

// ResetPassword consumes a reset code and sets a new password. The code is
// deleted afterwards so it cannot be replayed.
func (s *AuthService) ResetPassword(code, password string) error {
	if password == "" {
		return Validation("No password specified.")
	}

	reset, err := s.users.FindResetByCode(code)
	if err != nil {
		return Internal(err)
	}
	if reset == nil {
		return NotFound("This reset code is invalid.")
	}
	if time.Since(reset.Date) > resetCodeTTL {
		return Validation("This reset code has expired.")
	}

	user, err := s.users.FindByID(reset.UserID)
	if err != nil {
		return Internal(err)
	}
	if user == nil {
		return NotFound("This user does not exist.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Internal(err)
	}

	user.Password = hash
	if err := s.users.Save(user); err != nil {
		return Internal(err)
	}

	if err := s.users.DeleteReset(reset); err != nil {
		return Internal(err)
	}
	return nil
}
