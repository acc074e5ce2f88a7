package services

import (
	"context"
	"errors"
	"strings"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError kimlik doğrulama hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	// Kullanıcıya gösterilir; bu yüzden İngilizce ve e-posta/şifre ayrımı yapmaz.
	ErrInvalidCredentials AuthServiceError = "Invalid login credentials"
	ErrAuthUnavailable    AuthServiceError = "Login is temporarily unavailable"
	ErrUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
	ErrPasswordTooShort   AuthServiceError = "şifre en az 8 karakter olmalı"
	ErrPasswordHashFailed AuthServiceError = "şifre hashlenemedi"
)

const minPasswordLength = 8

// IAuthService admin girişi için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	repo repositories.IUserRepository
}

func NewAuthService(repo repositories.IUserRepository) IAuthService {
	return &AuthService{repo: repo}
}

// HashPassword şifreyi bcrypt ile hashler.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrPasswordHashFailed
	}
	return string(hash), nil
}

// Authenticate e-posta ve şifreyi doğrular.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.SLog.Infof("Başarısız giriş denemesi (kullanıcı yok): %s", email)
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("Giriş sırasında kullanıcı okunamadı", zap.Error(err))
		return nil, ErrAuthUnavailable
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.SLog.Infof("Başarısız giriş denemesi (şifre): %s", email)
		return nil, ErrInvalidCredentials
	}
	configslog.SLog.Infof("Admin girişi: ID %d", user.ID)
	return user, nil
}

// GetUserByID oturumdaki kullanıcıyı getirir. Silinmiş kullanıcı için ErrUserNotFound,
// depolama hatasında ErrAuthUnavailable döner.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		configslog.Log.Error("Oturum kullanıcısı okunamadı", zap.Uint("userID", id), zap.Error(err))
		return nil, ErrAuthUnavailable
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
