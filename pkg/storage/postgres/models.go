package postgres

import (
	"database/sql"
	"time"

	"accounts/pkg/domain"

	"github.com/google/uuid"
)

type PgAccount struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert,skipupdate"`

	Username  string `db:"username"`
	Password  string `db:"password"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert,skipupdate"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:        domain.AccountID(p.ID),
		Username:  p.Username,
		Password:  p.Password,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgAccount) FromDomain(account domain.Account) {
	*p = PgAccount{
		ID:        uuid.UUID(account.ID),
		Username:  account.Username,
		Password:  account.Password,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		CreatedAt: account.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  account.UpdatedAt,
			Valid: !account.UpdatedAt.IsZero(),
		},
	}
}

func pgAccountsToDomain(accounts []PgAccount) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for i := range accounts {
		out = append(out, *accounts[i].ToDomain())
	}

	return out
}
