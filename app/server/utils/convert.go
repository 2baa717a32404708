package utils

import (
	"fmt"
	"strconv"
)

func P[T any](v T) *T {
	return &v
}

// ParseID 解析路径中的实体 ID ，0 不是有效的 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

// FormInt 解析表单中的整数，空字符串返回 nil
func FormInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return &v, nil
}

// V 返回指针指向的值，nil 时返回零值
func V[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
