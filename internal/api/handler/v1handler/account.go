package v1handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"
)

// AccountRequest is the payload accepted by register and update. The same
// shape serves both: an update replaces every mutable field.
type AccountRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AccountResponse is the representation of an account returned to clients.
// The password is write-only and never appears in responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ToDomain converts the request payload into a domain account.
func (r AccountRequest) ToDomain() domain.Account {
	return domain.Account{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// DomainAccountToV1 converts a domain account into its API representation.
func DomainAccountToV1(in domain.Account) AccountResponse {
	return AccountResponse{
		ID:        in.ID.String(),
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// RegisterAccount creates a new account from the request payload.
func (h Handler) RegisterAccount(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	created, err := h.deps.Accounts.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, DomainAccountToV1(*created))
}

// ListAccounts returns every stored account.
func (h Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.deps.Accounts.All(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	res := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		res = append(res, DomainAccountToV1(acc))
	}

	c.JSON(http.StatusOK, res)
}

// GetAccount returns a single account by ID.
func (h Handler) GetAccount(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		respondError(c, err)

		return
	}

	acc, err := h.deps.Accounts.ByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainAccountToV1(*acc))
}

// UpdateAccount replaces the fields of an existing account.
func (h Handler) UpdateAccount(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		respondError(c, err)

		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, serrors.Wrap(serrors.ErrValidation, err, "invalid request body"))

		return
	}

	updated, err := h.deps.Accounts.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, DomainAccountToV1(*updated))
}

// DeleteAccount removes an account by ID.
func (h Handler) DeleteAccount(c *gin.Context) {
	id, err := parseAccountID(c)
	if err != nil {
		respondError(c, err)

		return
	}

	if err := h.deps.Accounts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// parseAccountID extracts and parses the accountId path parameter. An ID
// that is not a valid UUID cannot belong to any account, so it maps to
// not-found rather than a validation failure.
func parseAccountID(c *gin.Context) (domain.AccountID, error) {
	id, err := domain.ParseAccountID(c.Param("accountId"))
	if err != nil {
		return domain.AccountID{}, serrors.Coded(serrors.ErrNotFound, domain.CodeAccountNotFound,
			"account %s not found", c.Param("accountId"))
	}

	return id, nil
}
