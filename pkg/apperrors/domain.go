package apperrors

import "net/http"

// Predefined errors for the account and roster domain.

// ErrInvalidCredentials covers both "no such account" and "wrong password" so
// the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password.",
	http.StatusUnauthorized,
)

// ErrAccountPending is deliberately distinct from ErrInvalidCredentials: it
// discloses account state, not credential validity.
var ErrAccountPending = New(
	CodeAccountNotApproved,
	"auth",
	"Your account is pending admin approval.",
	http.StatusForbidden,
)

var ErrAccountDenied = New(
	CodeAccountNotApproved,
	"auth",
	"Your account has been denied.",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists.",
	http.StatusConflict,
)

// ErrInvalidResetToken is the single outcome for a wrong, consumed or expired
// reset token.
var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token.",
	http.StatusBadRequest,
)

var ErrInvalidBearerToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token.",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role.",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found.",
	http.StatusNotFound,
)

var ErrScheduleNotFound = New(
	CodeNotFound,
	"schedules",
	"Schedule not found.",
	http.StatusNotFound,
)

var ErrFCIFNotFound = New(
	CodeNotFound,
	"fcifs",
	"FCIF not found.",
	http.StatusNotFound,
)

var ErrQualificationNotFound = New(
	CodeNotFound,
	"qualifications",
	"User or qualification not found.",
	http.StatusNotFound,
)

// ErrMailDelivery reports a mail transport failure back to the caller without
// leaking transport detail.
func ErrMailDelivery(err error) *AppError {
	return DependencyError(err, "email", "Failed to send password reset email.")
}
