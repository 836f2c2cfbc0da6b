package storage

import "errors"

var (
	ErrUnknownDriver    = errors.New("unknown sql driver")
	ErrUnprocessedItems = errors.New("dynamodb left batch items unprocessed")
)
