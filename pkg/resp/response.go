package resp

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{Status: StatusOK}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var msg string
	for i, err := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("field %s is invalid", err.Field())
	}
	return Error(msg)
}
