package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/werbeauty/beauty-shop-backend/internal/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type Service struct {
	repo Repository
	mail mailer.Mailer
}

func NewService(repo Repository, mail mailer.Mailer) *Service {
	return &Service{repo: repo, mail: mail}
}

func (s *Service) List() []User {
	return s.repo.List()
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

func (s *Service) Register(u User) (User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !emailPattern.MatchString(u.Email) {
		return User{}, ErrInvalidEmail
	}
	if len(u.Password) < 6 {
		return User{}, ErrWeakPassword
	}

	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)

	now := nowRFC3339()
	u.CreatedAt = now
	u.UpdatedAt = now

	created, err := s.repo.Create(u)
	if err != nil {
		return User{}, err
	}
	_ = s.mail.SendWelcome(created.Email, created.Name)
	return created, nil
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// UpdateProfile overwrites name and gender; everything else is managed by
// dedicated flows.
func (s *Service) UpdateProfile(email, name, gender string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, err
	}
	if name != "" {
		u.Name = name
	}
	if gender != "" {
		u.Gender = gender
	}
	u.UpdatedAt = nowRFC3339()
	return s.repo.Update(email, u)
}

// SetGender switches the shopping preference without touching the name.
func (s *Service) SetGender(email, gender string) (User, error) {
	return s.UpdateProfile(email, "", gender)
}

func (s *Service) ChangePassword(email, oldPassword, newPassword string) error {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.MustChangePassword = false
	u.UpdatedAt = nowRFC3339()
	_, err = s.repo.Update(email, u)
	return err
}

// InitiatePasswordReset issues a temporary password and mails it to the
// account holder. The caller is always told the request succeeded so the
// endpoint cannot be used to probe which emails are registered.
func (s *Service) InitiatePasswordReset(email string) error {
	u, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	temp := temporaryPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.MustChangePassword = true
	u.UpdatedAt = nowRFC3339()
	if _, err := s.repo.Update(u.Email, u); err != nil {
		return err
	}
	return s.mail.SendTemporaryPassword(u.Email, u.Name, temp)
}

// RecordView appends a viewed product category to the user's history.
func (s *Service) RecordView(email, category string) error {
	return s.repo.AppendViewHistory(email, category)
}

func temporaryPassword() string {
	// 12 hex chars of uuid entropy, plenty for a password valid minutes
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
