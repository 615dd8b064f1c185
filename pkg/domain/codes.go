package domain

// Code is a stable, machine-readable error code carried by account failures.
// Codes are part of the external contract: API clients key translations and
// business handling off them, so values must never be reused or renumbered.
type Code string

const (
	CodeRegisterFirstNameRequired Code = "ACCOUNT_0001"
	CodeRegisterLastNameRequired  Code = "ACCOUNT_0002"
	CodeRegisterUsernameRequired  Code = "ACCOUNT_0003"
	CodeRegisterPasswordRequired  Code = "ACCOUNT_0004"
	CodeRegisterUsernameExists    Code = "ACCOUNT_0005"

	CodeAccountNotFound Code = "ACCOUNT_0006"

	CodeUpdateFirstNameRequired Code = "ACCOUNT_0007"
	CodeUpdateLastNameRequired  Code = "ACCOUNT_0008"
	CodeUpdateUsernameRequired  Code = "ACCOUNT_0009"
	CodeUpdatePasswordRequired  Code = "ACCOUNT_0010"
	CodeUpdateUsernameExists    Code = "ACCOUNT_0011"

	CodeInternalError Code = "ACCOUNT_0012"
)
