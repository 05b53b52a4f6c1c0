package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Nitin6404/sryzen-backend/entity"
	"github.com/Nitin6404/sryzen-backend/pkg/apperr"
	"github.com/Nitin6404/sryzen-backend/repository"
	"github.com/Nitin6404/sryzen-backend/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AuthService handles register/login. Password hashing happens here,
// explicitly, before the persistence call — no ORM hooks.
type AuthService struct {
	userRepo  *repository.UserRepository
	mailer    Mailer
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, mailer Mailer, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, mailer: mailer, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Internal("check email", err)
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}

	token := uuid.NewString()
	user := &entity.User{
		Email:             email,
		Password:          string(hashed),
		Name:              strings.TrimSpace(name),
		Role:              "user",
		VerificationToken: token,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Internal("create user", err)
	}

	if err := s.mailer.SendVerificationEmail(user.Email, token); err != nil {
		// Account exists either way; the token can be re-sent.
		log.Printf("send verification email to %s failed: %v", user.Email, err)
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}
	if !user.IsVerified {
		return "", nil, apperr.InvalidState("please verify your email first")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal("generate token", err)
	}
	return token, user, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("invalid verification token")
		}
		return apperr.Internal("load user", err)
	}

	updates := map[string]any{"is_verified": true, "verification_token": ""}
	if err := s.userRepo.Update(user.ID, updates); err != nil {
		return apperr.Internal("verify email", err)
	}
	return nil
}

// ForgotPassword mints a one-hour reset token and mails it. The token
// replaces any earlier one.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal("load user", err)
	}

	token := uuid.NewString()
	expires := time.Now().Add(resetTokenTTL)
	updates := map[string]any{
		"reset_password_token":   token,
		"reset_password_expires": expires,
	}
	if err := s.userRepo.Update(user.ID, updates); err != nil {
		return apperr.Internal("store reset token", err)
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, token); err != nil {
		return apperr.Internal("send reset email", err)
	}
	return nil
}

// ResetPassword consumes a reset token. Expired or unknown tokens are
// rejected; a used token cannot be replayed.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" {
		return apperr.Validation("invalid or expired reset token")
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("invalid or expired reset token")
		}
		return apperr.Internal("load user", err)
	}
	if user.ResetPasswordExpires == nil || time.Now().After(*user.ResetPasswordExpires) {
		return apperr.Validation("invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("hash password", err)
	}

	updates := map[string]any{
		"password":               string(hashed),
		"reset_password_token":   "",
		"reset_password_expires": nil,
	}
	if err := s.userRepo.Update(user.ID, updates); err != nil {
		return apperr.Internal("reset password", err)
	}
	return nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal("load user", err)
	}
	return user, nil
}
