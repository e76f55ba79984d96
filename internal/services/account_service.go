package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"astrasafe/internal/models/db_models"
	"astrasafe/internal/models/request_models"
	"astrasafe/internal/models/response_models"
	"astrasafe/internal/repositories"
	"astrasafe/pkg/metrics"
	"astrasafe/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger, m *metrics.Metrics) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger.Named("accounts"),
		metrics:     m,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.Account, error) {
	account, err := newAccount(request)
	if err != nil {
		return response_models.Account{}, err
	}

	existing, err := a.accountRepo.FindByEmail(ctx, account.Email)
	if err != nil {
		a.logger.Error("find account by email", zap.Error(err))
		return response_models.Account{}, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return response_models.Account{}, utils.ErrEmailAlreadyExists
	}

	if err := a.accountRepo.InsertTx(account, ctx); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return response_models.Account{}, utils.ErrEmailAlreadyExists
		}
		a.logger.Error("insert account", zap.Error(err))
		return response_models.Account{}, fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
	}

	a.metrics.Signup()
	a.logger.Info("account created", zap.String("account_id", account.ID.String()))

	return response_models.Account{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Photo:     account.Photo,
		CreatedAt: utils.FormatUnixRFC3339(account.CreatedAt),
	}, nil
}

func newAccount(request request_models.SignUpRequest) (*db_models.Account, error) {
	name := strings.TrimSpace(request.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 80 {
		return nil, fmt.Errorf("%w: name must be between 2 and 80 characters", utils.ErrInvalidSignup)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, fmt.Errorf("%w: email is not valid", utils.ErrInvalidSignup)
	}

	photo := strings.TrimSpace(request.Photo)
	if photo != "" {
		u, err := url.Parse(photo)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: photo must be an http(s) URL", utils.ErrInvalidSignup)
		}
	}

	return &db_models.Account{Name: name, Email: email, Photo: photo}, nil
}
