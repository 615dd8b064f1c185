package account

import (
	"strings"

	"accounts/pkg/domain"
	"accounts/pkg/serrors"
)

// validateCreate checks the fields of an account submitted for registration.
// Fields are checked in a fixed order (first name, last name, username,
// password) and the first missing field wins, so a request with several
// blank fields always reports the same code.
func validateCreate(account domain.Account) error {
	switch {
	case isBlank(account.FirstName):
		return serrors.Coded(serrors.ErrValidation, domain.CodeRegisterFirstNameRequired,
			"first name is required to register an account")
	case isBlank(account.LastName):
		return serrors.Coded(serrors.ErrValidation, domain.CodeRegisterLastNameRequired,
			"last name is required to register an account")
	case isBlank(account.Username):
		return serrors.Coded(serrors.ErrValidation, domain.CodeRegisterUsernameRequired,
			"username is required to register an account")
	case isBlank(account.Password):
		return serrors.Coded(serrors.ErrValidation, domain.CodeRegisterPasswordRequired,
			"password is required to register an account")
	}

	return nil
}

// validateUpdate mirrors validateCreate for account updates. The checks are
// identical but the reported codes differ, so a client can tell which
// operation rejected the payload.
func validateUpdate(account domain.Account) error {
	switch {
	case isBlank(account.FirstName):
		return serrors.Coded(serrors.ErrValidation, domain.CodeUpdateFirstNameRequired,
			"first name is required to update an account")
	case isBlank(account.LastName):
		return serrors.Coded(serrors.ErrValidation, domain.CodeUpdateLastNameRequired,
			"last name is required to update an account")
	case isBlank(account.Username):
		return serrors.Coded(serrors.ErrValidation, domain.CodeUpdateUsernameRequired,
			"username is required to update an account")
	case isBlank(account.Password):
		return serrors.Coded(serrors.ErrValidation, domain.CodeUpdatePasswordRequired,
			"password is required to update an account")
	}

	return nil
}

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
