package domain

import "fmt"

// Status categorizes an error for the transport boundary.
type Status string

const (
	StatusNotFound    Status = "not-found"
	StatusBadRequest  Status = "bad-request"
	StatusConflict    Status = "conflict"
	StatusForbidden   Status = "forbidden"
	StatusUnavailable Status = "unavailable"
	StatusTimeout     Status = "timeout"
)

// Error is a member of the closed gateway error taxonomy. Both the simulator
// and the remote client report every failure as one of these values; no raw
// transport error reaches a caller.
type Error struct {
	kind    string
	Code    string
	Message string
	Status  Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by taxonomy kind so errors.Is works against the sentinel values
// regardless of the attached message. Account and loan misses share the
// wire code BYTE_001 but stay distinguishable here.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.kind == t.kind
}

// WithMessage returns a copy of e carrying a contextual message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{kind: e.kind, Code: e.Code, Message: fmt.Sprintf(format, args...), Status: e.Status}
}

var (
	ErrAccountNotFound       = &Error{kind: "account_not_found", Code: "BYTE_001", Message: "account not found", Status: StatusNotFound}
	ErrLoanNotFound          = &Error{kind: "loan_not_found", Code: "BYTE_001", Message: "loan not found", Status: StatusNotFound}
	ErrInsufficientBalance   = &Error{kind: "insufficient_balance", Code: "BYTE_003", Message: "insufficient balance", Status: StatusBadRequest}
	ErrInvalidTransaction    = &Error{kind: "invalid_transaction", Code: "BYTE_002", Message: "invalid transaction", Status: StatusBadRequest}
	ErrInvalidAmount         = &Error{kind: "invalid_amount", Code: "BYTE_AMOUNT", Message: "invalid amount", Status: StatusBadRequest}
	ErrAuthorizationNotFound = &Error{kind: "authorization_not_found", Code: "BYTE_AUTH_NOT_FOUND", Message: "authorization not found", Status: StatusNotFound}
	ErrDuplicateReversal     = &Error{kind: "duplicate_reversal", Code: "BYTE_DUPLICATE", Message: "transaction already reversed", Status: StatusConflict}
	ErrDuplicateAuthorization = &Error{kind: "duplicate_authorization", Code: "BYTE_DUPLICATE", Message: "authorization code already registered", Status: StatusConflict}
	ErrAccountInactive       = &Error{kind: "account_inactive", Code: "BYTE_007", Message: "account is inactive or blocked", Status: StatusForbidden}
	ErrServiceUnavailable    = &Error{kind: "service_unavailable", Code: "BYTE_503", Message: "core service unavailable", Status: StatusUnavailable}
	ErrTimeout               = &Error{kind: "timeout", Code: "BYTE_TIMEOUT", Message: "core service did not respond in time", Status: StatusTimeout}
)
