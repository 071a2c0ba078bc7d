package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest     = 1
	NotFoundErrorCode       = 404
	InternalServerErrorCode = 500
)
