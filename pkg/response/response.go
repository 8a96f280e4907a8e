package response

import (
	"fmt"
	"net/http"

	"notification-admin/pkg/discord"
	"notification-admin/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError(), c, nil))
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError(), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.PermissionError:
		return http.StatusForbidden, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		if d != nil {
			reportInternalError(c, d, err)
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends an error response, reporting unclassified errors to Discord.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError sends the response for an *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the mapped HTTPError, else falls
// back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr, nil)
		return
	}
	Error(c, err, d)
}

// PanicError handles panic recovery and sends an error response.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}
