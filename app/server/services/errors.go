package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")   // 表单字段缺失或无效，不写入任何数据
	ErrAuth       = errors.New("invalid credentials") // 不区分邮箱不存在和密码错误
	ErrConstraint = errors.New("constraint violation")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// Error 携带展示给用户的信息
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Message 返回错误中给用户看的信息，没有则返回空字符串
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// IOWarning 图片读写失败：不中断所在的操作，只提示用户
type IOWarning struct {
	Err error
}

func (w *IOWarning) Error() string {
	return w.Err.Error()
}

func (w *IOWarning) Unwrap() error {
	return w.Err
}
