package errs

import (
	"fmt"
	"net/http"
)

type Error interface {
	Error() string
	Code() int32
	Msg() string
	Status() int
	SetMsg(msg string) Error
}

type bizError struct {
	code   int32
	status int
	msg    string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

// Status is the HTTP status the error is answered with.
func (bizErr *bizError) Status() int {
	return bizErr.status
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.Code(), bizErr.Status(), msg)
}

func New(code int32, status int, msg string) Error {
	return &bizError{
		code:   code,
		status: status,
		msg:    msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success     = New(0, http.StatusOK, "success")
	ServerError = New(1_0001, http.StatusInternalServerError, "internal server error")
	ParamError  = New(1_0002, http.StatusBadRequest, "param error")

	MissingField     = ParamError.SetMsg("missing field")
	PasswordTooShort = ParamError.SetMsg("password too short")
	InvalidBody      = ParamError.SetMsg("invalid request body")

	StoreReadFailure  = New(1_0101, http.StatusInternalServerError, ServerError.Msg())
	StoreWriteFailure = New(1_0102, http.StatusInternalServerError, ServerError.Msg())
	CorruptStore      = New(1_0103, http.StatusInternalServerError, ServerError.Msg())

	InvalidCredentials = New(2_0001, http.StatusUnauthorized, "invalid credentials")
	EmailRegistered    = New(2_0003, http.StatusBadRequest, "email already registered")
)
