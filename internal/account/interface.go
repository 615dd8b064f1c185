package account

import (
	"context"

	"accounts/pkg/domain"
)

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Accounts interface {
	Register(ctx context.Context, account domain.Account) (*domain.Account, error)
	ByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	All(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id domain.AccountID, account domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id domain.AccountID) error
}
