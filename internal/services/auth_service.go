package services

import (
	"errors"
	"strings"

	"github.com/ritmofit/ritmo/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	msgEmailAlreadyRegistered = "Já existe um usuário com este e-mail."
	msgEmailInUse             = "Este e-mail já está em uso por outro usuário."
	msgPasswordTooShort       = "A senha deve ter pelo menos 6 caracteres."
	msgCurrentPasswordWrong   = "A senha atual fornecida está incorreta. Não foi possível alterar a senha."
	msgNewPasswordSameAsOld   = "A nova senha não pode ser igual à senha atual."
	msgPasswordsDoNotMatch    = "As novas senhas não coincidem."
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	EmailTaken(email string, excludeUserID uint) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	UpdatePasswordHash(userID uint, passwordHash string) error
	Delete(userID uint) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new account with a lowercased email and a bcrypt hash.
// The plaintext password never reaches the repository.
func (service *AuthService) Register(name string, email string, password string) (models.User, error) {
	email = NormalizeEmail(email)

	if err := ValidatePasswordLength(password); err != nil {
		return models.User{}, NewFieldError("senha", msgPasswordTooShort)
	}

	taken, err := service.users.EmailTaken(email, 0)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, NewFieldError("email", msgEmailAlreadyRegistered)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(passwordHash),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves email+password to a user. Every failure collapses to
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// UpdateProfile partially updates name and email; nil means "not provided".
func (service *AuthService) UpdateProfile(user models.User, name *string, email *string) (models.User, error) {
	if email != nil {
		normalized := NormalizeEmail(*email)
		taken, err := service.users.EmailTaken(normalized, user.ID)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, NewFieldError("email", msgEmailInUse)
		}
		user.Email = normalized
	}
	if name != nil {
		user.Name = strings.TrimSpace(*name)
	}

	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) ChangePassword(user models.User, currentPassword string, newPassword string, confirmation string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return NewValidationError(msgCurrentPasswordWrong)
	}
	if currentPassword == newPassword {
		return NewFieldError("nova_senha", msgNewPasswordSameAsOld)
	}
	if newPassword != confirmation {
		return NewFieldError("nova_senha_confirmacao", msgPasswordsDoNotMatch)
	}
	if err := ValidatePasswordLength(newPassword); err != nil {
		return NewFieldError("nova_senha", msgPasswordTooShort)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePasswordHash(user.ID, string(passwordHash))
}

func (service *AuthService) DeleteAccount(userID uint) error {
	return service.users.Delete(userID)
}
