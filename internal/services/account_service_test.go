package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	created []*db_models.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *db_models.Account) error {
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return nil, nil
}

func TestCreateAccountHashesPassword(t *testing.T) {
	repo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "홍길동",
		Email:       "hong@example.com",
		Password:    "correct horse",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	account := repo.created[0]
	assert.Equal(t, "user", account.Role)
	assert.NotEqual(t, "correct horse", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "correct horse"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{
		"hong@example.com": {},
	}}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "홍길동",
		Email:       "hong@example.com",
		Password:    "correct horse",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	repo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{
		"hong@example.com": {PasswordHash: hash, Role: "user"},
	}}
	svc := NewAccountService(repo)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "hong@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "hong@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
