// Package common holds errors shared between the storage and service layers.
package common

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
