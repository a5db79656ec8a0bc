package domain

import "errors"

var (
	ErrEmptyContent    = errors.New("content is empty")
	ErrSectionNotFound = errors.New("section not found")
	ErrMemoryLimit     = errors.New("memory limit could not be raised")
)
