package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/request_models"
	"tripjournal/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	order    []string
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.failWith != nil {
		return f.failWith
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID.String()] = account
	f.order = append(f.order, account.ID.String())
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Account
	for _, id := range f.order {
		if a, ok := f.accounts[id]; ok {
			out = append(out, *a)
		}
	}
	offset := (page - 1) * pageSize
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > pageSize {
		out = out[:pageSize]
	}
	return out, nil
}

func (f *fakeAccountRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.accounts[id]; !ok {
		return 0, nil
	}
	delete(f.accounts, id)
	return 1, nil
}

func signUpRequest() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username: "jozef",
		Email:    "jozef@example.com",
		Bio:      "rád cestujem",
		Password: "tajneheslo",
	}
}

func TestRegister_CreatesAccountAndReturnsToken(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	token, err := service.Register(context.Background(), signUpRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	account, err := repo.FindByEmail(context.Background(), "jozef@example.com")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "jozef", account.Username)
	assert.NotEqual(t, "tajneheslo", account.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "tajneheslo"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	_, err := service.Register(context.Background(), signUpRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), signUpRequest())
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	_, err := service.Register(context.Background(), signUpRequest())
	require.NoError(t, err)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Username: "jozef",
		Password: "tajneheslo",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	_, err := service.Register(context.Background(), signUpRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), request_models.LoginRequest{
		Username: "jozef",
		Password: "zleheslo",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Username: "nikto",
		Password: "tajneheslo",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetAccount_NotFound(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	account, err := service.GetAccount(context.Background(), uuid.NewString())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestDeleteAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	_, err := service.Register(context.Background(), signUpRequest())
	require.NoError(t, err)
	account, _ := repo.FindByUsername(context.Background(), "jozef")

	require.NoError(t, service.DeleteAccount(context.Background(), account.ID.String()))
	assert.ErrorIs(t, service.DeleteAccount(context.Background(), account.ID.String()), utils.ErrAccountNotFound)
}

func TestAccountService_RepoFailureMapsToDatabaseError(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.failWith = errors.New("connection reset")
	service := NewAccountService(repo)

	_, err := service.Register(context.Background(), signUpRequest())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = service.ListAccounts(context.Background(), 1, 20)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestListAccounts_Paginates(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)
	for _, name := range []string{"jozef", "anna", "marek"} {
		require.NoError(t, repo.Insert(context.Background(), &db_models.Account{
			Username: name,
			Email:    name + "@example.com",
		}))
	}

	first, err := service.ListAccounts(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "jozef", first[0].Username)
	assert.Equal(t, "anna", first[1].Username)

	second, err := service.ListAccounts(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "marek", second[0].Username)
}

func TestListAccounts_RejectsBadPaging(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	_, err := service.ListAccounts(context.Background(), 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = service.ListAccounts(context.Background(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = service.ListAccounts(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}
