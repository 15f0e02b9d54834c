package domain

import "errors"

var (
	// Reference lookup errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrProfitCenterNotFound = errors.New("profit center not found")
	ErrSourceCodeNotFound   = errors.New("source code not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrBankNotFound         = errors.New("bank not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrEnumValueNotFound    = errors.New("enum value not found")

	// Entity errors
	ErrPostingNotFound = errors.New("posting not found")
	ErrPaymentNotFound = errors.New("payment not found")
)
