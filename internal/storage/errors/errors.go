// Package errors provides custom errors for types implementing storage interfaces.
package errors

import (
	"fmt"
)

type (
	NotFoundError struct {
		Entity string
		ID     string
		Err    error
	}
	AlreadyExistsError struct {
		Entity string
		Key    string
		Err    error
	}
	ContextTimeoutExceededError struct {
		Err error
	}
	ExecutionSQLiteError struct {
		Err error
	}
	ExecutionPSQLError struct {
		Err error
	}
	FileWriteError struct {
		Path string
		Err  error
	}
	UploadError struct {
		Object   string
		Attempts int
		Err      error
	}
)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: not found in storage", e.Entity, e.ID)
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %s: already exists in storage", e.Entity, e.Key)
}

func (e *ContextTimeoutExceededError) Error() string {
	return fmt.Sprintf("%s: context timeout exceeded", e.Err.Error())
}

func (e *ExecutionSQLiteError) Error() string {
	return fmt.Sprintf("%s: could not query sqlite", e.Err.Error())
}

func (e *ExecutionPSQLError) Error() string {
	return fmt.Sprintf("%s: could not query", e.Err.Error())
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s: could not write to %s", e.Err.Error(), e.Path)
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%s: could not upload %s after %d attempts", e.Err.Error(), e.Object, e.Attempts)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *AlreadyExistsError) Unwrap() error {
	return e.Err
}

func (e *ContextTimeoutExceededError) Unwrap() error {
	return e.Err
}

func (e *ExecutionSQLiteError) Unwrap() error {
	return e.Err
}

func (e *ExecutionPSQLError) Unwrap() error {
	return e.Err
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
