package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the body of every failed request. The message is meant for the end
// user, the wrapped error only goes to the log.
type Err struct {
	Status  int    `json:"-"`
	Message string `json:"fel"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Message
}

func (e *Err) Unwrap() error {
	return e.err
}

func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.Int("status", e.Status),
		zap.String("path", ctx.FullPath()),
		zap.String("request_id", requestid.Get(ctx)),
	}
	if e.err != nil {
		fields = append(fields, zap.Error(e.err))
	}

	if e.Status >= http.StatusInternalServerError {
		zap.L().Error(e.Message, fields...)
	} else {
		zap.L().Debug(e.Message, fields...)
	}

	ctx.AbortWithStatusJSON(e.Status, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
		err:     err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s med %s %v hittades inte", resource, key, value),
	}
}

// NewErr builds an error response with a message safe to show the user.
func NewErr(status int, message string, err error) *Err {
	return &Err{
		Status:  status,
		Message: message,
		err:     err,
	}
}

// ErrInternalServerError hides err from the client.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Status:  http.StatusInternalServerError,
		Message: "något gick fel, försök igen senare",
		err:     err,
	}
}
