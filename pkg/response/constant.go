package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	MessageSuccess         = "Success"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"

	PermissionErrorCode = 403
	PermissionErrorMsg  = "You don't have permission to do this"

	InternalServerErrorCode = 500

	// DiscordMaxMessageLen splits bug reports into chunks Discord accepts.
	DiscordMaxMessageLen = 1900
)
