package service

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNoDownload     = errors.New("volume has no downloadable formats")
	ErrEmailNotLinked = errors.New("no email linked for chat")
)
