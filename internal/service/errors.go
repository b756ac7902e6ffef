package service

import "errors"

var (
	ErrDocumentNotFound = errors.New("schedule document not found")
	ErrPanic            = errors.New("process panicked")
)
