package usecase

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jobtimizer/jobtimizer/internal/config"
	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("benutzer mit dieser E-Mail existiert bereits")
	ErrInvalidCredentials = errors.New("ungültige Zugangsdaten")
)

// UserAccountStore covers the repository surface of account management.
type UserAccountStore interface {
	CreateUser(user *model.User) error
	FindUserByID(id string) (*model.User, error)
	FindUserByEmail(email string) (*model.User, error)
	UpdatePreferences(id string, preferences string) error
	UpdateLastLogin(id string) error
}

type UserUsecase struct {
	userRepo UserAccountStore
	log      *zap.Logger
}

func NewUserUsecase(userRepo UserAccountStore, log *zap.Logger) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, log: log}
}

func (uc *UserUsecase) Register(req dto.RegisterRequest) (*dto.UserDTO, error) {
	if req.Email == "" || len(req.Password) < 6 {
		return nil, fmt.Errorf("e-mail und ein Passwort mit mindestens 6 Zeichen sind erforderlich")
	}

	if _, err := uc.userRepo.FindUserByEmail(req.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), config.LoadAuthConfig().BcryptCost)
	if err != nil {
		return nil, err
	}

	preferences := dto.DefaultPreferences()
	if req.Preferences != nil {
		preferences = *req.Preferences
	}
	preferencesJSON, err := json.Marshal(preferences)
	if err != nil {
		return nil, err
	}
	companyJSON, err := json.Marshal(req.CompanyInfo)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		CompanyInfo:  string(companyJSON),
		Preferences:  string(preferencesJSON),
	}
	if err := uc.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	uc.log.Info("user registered", zap.String("email", req.Email))
	return uc.toDTO(user), nil
}

func (uc *UserUsecase) Login(req dto.LoginRequest) (*dto.UserDTO, error) {
	user, err := uc.userRepo.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		uc.log.Warn("authentication failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if err := uc.userRepo.UpdateLastLogin(user.ID.String()); err != nil {
		uc.log.Error("failed to update last login",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return uc.toDTO(user), nil
}

func (uc *UserUsecase) GetUser(id string) (*dto.UserDTO, error) {
	user, err := uc.userRepo.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	return uc.toDTO(user), nil
}

func (uc *UserUsecase) UpdatePreferences(id string, preferences dto.Preferences) error {
	preferencesJSON, err := json.Marshal(preferences)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePreferences(id, string(preferencesJSON))
}

func (uc *UserUsecase) toDTO(user *model.User) *dto.UserDTO {
	var companyInfo dto.CompanyInfo
	_ = json.Unmarshal([]byte(user.CompanyInfo), &companyInfo)
	var preferences dto.Preferences
	if err := json.Unmarshal([]byte(user.Preferences), &preferences); err != nil {
		preferences = dto.DefaultPreferences()
	}

	return &dto.UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		CompanyInfo: companyInfo,
		Preferences: preferences,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
