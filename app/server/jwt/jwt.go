package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWT struct {
	key []byte
}

// Session 是会话 cookie 中携带的内容，导航状态本身保存在 session.Store 中
type Session struct {
	ID      uuid.UUID
	Expires int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Key 供 echo-jwt 中间件校验签名
func (j *JWT) Key() []byte {
	return j.key
}

func (j *JWT) ParseSession(tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	return SessionFromToken(token)
}

// SessionFromToken 从已经校验过的 token 中提取会话
func SessionFromToken(token *jwt.Token) (*Session, error) {
	if token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// 映射字段
	sidStr, ok := claims["sid"].(string)
	if !ok {
		return nil, fmt.Errorf("missing session id")
	}
	sid, err := uuid.Parse(sidStr)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing expiry")
	}

	return &Session{
		ID:      sid,
		Expires: int64(exp),
	}, nil
}

func (j *JWT) SignToken(session *Session) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sid": session.ID.String(),
		"exp": session.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
