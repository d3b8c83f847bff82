package byteclient

import "github.com/iho/bytegate/internal/domain"

// The Core declares business failures through per-operation response codes.
// Anything other than "0" maps onto the gateway taxonomy before transport
// errors are even considered.
var businessCodes = map[string]map[string]*domain.Error{
	opDeposit: {
		"001": domain.ErrAccountNotFound,
		"002": domain.ErrInvalidAmount,
	},
	opWithdraw: {
		"001": domain.ErrAccountNotFound,
		"003": domain.ErrInsufficientBalance,
	},
	opInquireAccount: {
		"001": domain.ErrAccountNotFound,
	},
	opTransfer: {
		"001": domain.ErrAccountNotFound,
		"002": domain.ErrAccountNotFound,
		"003": domain.ErrInsufficientBalance,
		"004": domain.ErrInvalidTransaction,
	},
	opInquireLoan: {
		"001": domain.ErrLoanNotFound,
	},
	opLoanPayment: {
		"001": domain.ErrLoanNotFound,
		"002": domain.ErrInvalidAmount,
		"003": domain.ErrInvalidTransaction,
		"004": domain.ErrAccountNotFound,
		"005": domain.ErrInsufficientBalance,
		"006": domain.ErrInvalidAmount,
	},
	opReversal: {
		"001": domain.ErrLoanNotFound,
		"002": domain.ErrAuthorizationNotFound,
		"003": domain.ErrInvalidTransaction,
		"004": domain.ErrDuplicateReversal,
	},
}

func classify(op, code, description string) error {
	if codes, ok := businessCodes[op]; ok {
		if err, ok := codes[code]; ok {
			if description != "" {
				return err.WithMessage("%s", description)
			}
			return err
		}
	}

	return domain.ErrInvalidTransaction.WithMessage("core declined %s with code %s: %s", op, code, description)
}
