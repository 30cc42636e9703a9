package services

import (
	"context"

	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
	ListAccounts(ctx context.Context, page, pageSize int) ([]response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, id string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Username:     request.Username,
		Email:        request.Email,
		Bio:          request.Bio,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return "", utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(newAccount.ID, newAccount.Username)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Username)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:       account.ID.String(),
		Username: account.Username,
		Email:    account.Email,
		Bio:      account.Bio,
	}, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, page, pageSize int) ([]response_models.AccountResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	accounts, err := a.accountRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, response_models.AccountResponse{
			ID:       account.ID.String(),
			Username: account.Username,
			Email:    account.Email,
			Bio:      account.Bio,
		})
	}
	return out, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, id string) error {
	affected, err := a.accountRepo.DeleteByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}
