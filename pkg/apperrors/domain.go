package apperrors

import "net/http"

// Predefined errors for the auth and payment domains.

// ErrEmailAlreadyExists - registration with an email that is already taken.
// The message matches the generic conflict wording the API has always used.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Resource exists",
	http.StatusConflict,
).WithDetails("User already exists with this email")

// ErrInvalidCredentials - unknown email or wrong password. Deliberately the
// same error for both so responses never reveal whether an account exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidVerificationToken - verification token unknown, already consumed
// or malformed. "Already verified" is indistinguishable from "invalid".
var ErrInvalidVerificationToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired verification token",
	http.StatusBadRequest,
)

// ErrVerificationTokenExpired - token matched a user but its expiry passed.
var ErrVerificationTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Verification token has expired. Please request a new one.",
	http.StatusBadRequest,
)

// ErrUnauthenticated - a handler that requires identity was reached without one.
var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"User not authenticated",
	http.StatusUnauthorized,
)

// ErrInvalidPlanType - payment order requested for a plan that cannot be bought.
var ErrInvalidPlanType = New(
	CodeInvalidOperation,
	"payment",
	"Invalid plan type",
	http.StatusBadRequest,
)

// ErrPaymentGateway - the payment provider call failed.
var ErrPaymentGateway = New(
	CodeExternalServiceError,
	"payment",
	"Payment provider error",
	http.StatusServiceUnavailable,
)

// ErrFileTooLarge - uploaded file exceeds the configured limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - uploaded file MIME type is not allowed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
