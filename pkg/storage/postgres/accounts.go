package postgres

import (
	"context"
	"fmt"

	"accounts/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	accountsTable = "accounts"
)

// StoreAccount inserts a new account row and returns it as stored, including
// the generated id and created_at.
func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var pgAccount PgAccount
	pgAccount.FromDomain(account)

	var row PgAccount
	found, err := p.Builder.Insert(accountsTable).
		Rows(pgAccount).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store account into pg: %w", mapWriteError(err))
	}
	if !found {
		return nil, fmt.Errorf("insert into %s returned no row", accountsTable)
	}

	return row.ToDomain(), nil
}

// AccountByID returns an account by its id, or nil when absent.
func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AccountByUsername returns the account holding the given username, or nil.
func (p *PgSQL) AccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by username: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AccountByUsernameExcluding returns the account holding the given username
// while ignoring the excluded id, or nil when no other account holds it.
func (p *PgSQL) AccountByUsernameExcluding(ctx context.Context,
	username string,
	excludedID domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(
			goqu.I("username").Eq(username),
			goqu.I("id").Neq(uuid.UUID(excludedID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by username excluding id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Accounts returns all stored accounts without any particular ordering.
func (p *PgSQL) Accounts(ctx context.Context) ([]domain.Account, error) {
	var rows []PgAccount
	if err := p.Builder.From(accountsTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch accounts from pg: %w", err)
	}

	return pgAccountsToDomain(rows), nil
}

// UpdateAccount replaces the mutable fields of the account with the given id
// and returns the post-update row, or nil when the id does not exist.
func (p *PgSQL) UpdateAccount(ctx context.Context,
	id domain.AccountID,
	account domain.Account) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"username":   account.Username,
			"password":   account.Password,
			"first_name": account.FirstName,
			"last_name":  account.LastName,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update account in pg: %w", mapWriteError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteAccount removes the account row with the given id. Absent ids are
// not an error.
func (p *PgSQL) DeleteAccount(ctx context.Context, id domain.AccountID) error {
	if _, err := p.Builder.Delete(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete account in pg: %w", err)
	}

	return nil
}
