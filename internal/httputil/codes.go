package httputil

// Machine-readable error codes returned alongside error messages so clients
// can branch without parsing human-readable text.
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeUsernameRequired   = "USERNAME_REQUIRED"
	CodeEmailRequired      = "EMAIL_REQUIRED"
	CodePasswordRequired   = "PASSWORD_REQUIRED"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	CodeUserAlreadyExists  = "USER_ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	CodeMissingAuth       = "MISSING_AUTH"
	CodeInvalidAuthHeader = "INVALID_AUTH_HEADER"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeForbidden         = "FORBIDDEN"

	CodeRecipeFieldsRequired = "RECIPE_FIELDS_REQUIRED"
	CodeRecipeNotFound       = "RECIPE_NOT_FOUND"

	CodeNoFileUploaded  = "NO_FILE_UPLOADED"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeFileTooLarge    = "FILE_TOO_LARGE"

	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternalError   = "INTERNAL_ERROR"
)
