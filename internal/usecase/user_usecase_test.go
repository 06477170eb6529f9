package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/model"
)

type stubUserAccountStore struct {
	byEmail         map[string]*model.User
	created         *model.User
	lastLoginCalled bool
}

func (s *stubUserAccountStore) CreateUser(user *model.User) error {
	s.created = user
	return nil
}

func (s *stubUserAccountStore) FindUserByID(_ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserAccountStore) FindUserByEmail(email string) (*model.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserAccountStore) UpdatePreferences(_ string, _ string) error { return nil }

func (s *stubUserAccountStore) UpdateLastLogin(_ string) error {
	s.lastLoginCalled = true
	return nil
}

func TestRegisterHashesPasswordAndAppliesDefaults(t *testing.T) {
	store := &stubUserAccountStore{}
	uc := NewUserUsecase(store, zap.NewNop())

	user, err := uc.Register(dto.RegisterRequest{
		Email:       "hr@example.de",
		Password:    "geheim123",
		CompanyInfo: dto.CompanyInfo{CompanyName: "Beispiel GmbH"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hr@example.de", user.Email)
	assert.Equal(t, "du", user.Preferences.Tone)
	assert.True(t, user.Preferences.TemplateCustomizations.IncludeBenefits)

	require.NotNil(t, store.created)
	assert.NotEqual(t, "geheim123", store.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.created.PasswordHash), []byte("geheim123")))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	uc := NewUserUsecase(&stubUserAccountStore{}, zap.NewNop())

	_, err := uc.Register(dto.RegisterRequest{Email: "hr@example.de", Password: "kurz"})
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := &stubUserAccountStore{byEmail: map[string]*model.User{
		"hr@example.de": {Email: "hr@example.de"},
	}}
	uc := NewUserUsecase(store, zap.NewNop())

	_, err := uc.Register(dto.RegisterRequest{Email: "hr@example.de", Password: "geheim123"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("geheim123"), bcrypt.MinCost)
	require.NoError(t, err)
	store := &stubUserAccountStore{byEmail: map[string]*model.User{
		"hr@example.de": {Email: "hr@example.de", PasswordHash: string(hash), Preferences: "{}"},
	}}
	uc := NewUserUsecase(store, zap.NewNop())

	user, err := uc.Login(dto.LoginRequest{Email: "hr@example.de", Password: "geheim123"})
	require.NoError(t, err)
	assert.Equal(t, "hr@example.de", user.Email)
	assert.True(t, store.lastLoginCalled)

	_, err = uc.Login(dto.LoginRequest{Email: "hr@example.de", Password: "falsch"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Email: "unbekannt@example.de", Password: "geheim123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
