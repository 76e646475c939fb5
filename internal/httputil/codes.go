package httputil

// Machine-readable error codes returned alongside error messages so clients
// can branch without string matching.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeInvalidAuthHeader  = "invalid_auth_header"
	CodeMissingAuth        = "missing_auth"
	CodeTokenExpired       = "token_expired"
	CodeInvalidToken       = "invalid_token"
	CodeUserNotFound       = "user_not_found"
	CodeEmailRegistered    = "email_already_registered"
	CodeInvalidCredentials = "invalid_credentials"
	CodeValidation         = "validation_error"
	CodeTooManyRequests    = "too_many_requests"
	CodeNotFound           = "not_found"
	CodeInternalError      = "internal_error"
)
