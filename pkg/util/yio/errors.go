package yio

import "errors"

var (
	// ErrLimitExceeded 表示输入长度超过调用方给定的上限。
	ErrLimitExceeded = errors.New("yio: read limit exceeded")

	// ErrNegativeLimit 表示上限参数为负。
	ErrNegativeLimit = errors.New("yio: negative limit")
)
