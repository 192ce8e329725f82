package service

import "errors"

// 业务哨兵错误，处理层据此映射状态码。
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("record not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrLastSuperadmin     = errors.New("cannot remove the last superadmin")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidCapability  = errors.New("unknown capability")
	ErrInvalidRole        = errors.New("unknown role")
	ErrSlugExists         = errors.New("slug already exists")
	ErrInvalidParam       = errors.New("invalid parameter")
	ErrCaptchaInvalid     = errors.New("captcha verification failed")
	ErrDuplicateSignup    = errors.New("volunteer already signed up for this event")
)
