package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/runway-finance/backend/pkg/httputil"
)

var (
	ErrResourceNotFound  = errors.New("there is no resource for the ID you specified")
	ErrMethodNotAllowed  = errors.New("this HTTP method is not allowed for the endpoint you called")
	ErrRouteDoesNotExist = errors.New("there is no endpoint at the path you called")
)

// Generate a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// Parse returns the HTTP status and the error to return to the client for an error.
//
// Errors that are not caused by the request are logged with the request ID
// and replaced with a generic message.
func Parse(c *gin.Context, err error) Error {
	var (
		syntaxError *json.SyntaxError
		typeError   *json.UnmarshalTypeError
		numError    *strconv.NumError
		timeError   *time.ParseError
	)

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, httputil.ErrRequestBodyEmpty):
		return Error{Status: http.StatusBadRequest, Err: httputil.ErrRequestBodyEmpty}

	case errors.Is(err, httputil.ErrInvalidBody), errors.Is(err, httputil.ErrInvalidQuery):
		return Error{Status: http.StatusBadRequest, Err: err}

	case errors.As(err, &syntaxError), errors.As(err, &typeError):
		return Error{Status: http.StatusBadRequest, Err: fmt.Errorf("%w: %s", httputil.ErrInvalidBody, err.Error())}

	case errors.As(err, &timeError):
		return Error{Status: http.StatusBadRequest, Err: err}

	case errors.As(err, &numError):
		return Error{Status: http.StatusBadRequest, Err: fmt.Errorf("%w: %s", httputil.ErrInvalidQuery, err.Error())}

	case errors.Is(err, ErrResourceNotFound):
		return Error{Status: http.StatusNotFound, Err: err}
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return Error{
		Status: http.StatusInternalServerError,
		Err:    fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)),
	}
}

// Handler writes the error response for an error.
func Handler(c *gin.Context, err error) {
	e := Parse(c, err)
	New(c, e.Status, e.Error())
}
