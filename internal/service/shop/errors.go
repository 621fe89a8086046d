package shop

import "errors"

var (
	ErrInvalidShopID = errors.New("invalid shop id")
	ErrShopNotFound  = errors.New("shop not found")
)
