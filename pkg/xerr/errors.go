package xerr

import (
	"errors"
	"fmt"
)

// 常用错误码定义
const (
	OK                = 200
	InvalidArgument   = 400
	RecordNotFound    = 404
	ServerCommonError = 500
	IOError           = 502
)

type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	err  error
}

// Error 只返回消息本身，main 里统一打印 "Error: <msg>"
func (e *CodeError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.err)
	}
	return e.Msg
}

func (e *CodeError) Unwrap() error { return e.err }

func New(code int, msg string) error {
	return &CodeError{Code: code, Msg: msg}
}

func Newf(code int, format string, args ...any) error {
	return &CodeError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func NewErrCode(code int) error {
	return &CodeError{Code: code, Msg: MapErrMsg(code)}
}

// Wrap 保留底层错误，errors.Is / errors.As 仍然可用
func Wrap(err error, code int, msg string) error {
	if err == nil {
		return nil
	}
	return &CodeError{Code: code, Msg: msg, err: err}
}

// Code 取出错误码，非 CodeError 返回 ServerCommonError，nil 返回 OK
func Code(err error) int {
	if err == nil {
		return OK
	}
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ServerCommonError
}

func Is(err error, code int) bool {
	return err != nil && Code(err) == code
}

func MapErrMsg(code int) string {
	switch code {
	case InvalidArgument:
		return "invalid argument"
	case RecordNotFound:
		return "record not found"
	case IOError:
		return "i/o failure"
	case ServerCommonError:
		return "internal error"
	default:
		return "unknown error"
	}
}
