// Package errors provides custom errors for types implementing service interfaces.
package errors

import "fmt"

type (
	ServiceInitHashError struct {
		Msg string
	}
	ServiceEncodingHashError struct {
		Msg string
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceFoundNilSecretary struct {
		Msg string
	}
	ServiceIncorrectInput struct {
		Msg string
		Err error
	}
	ServiceForbidden struct {
		Msg string
	}
	ServiceNotPending struct {
		WishID int64
	}
	ServiceMissingCredentials struct {
		Msg string
	}
	ServiceFetchError struct {
		URL string
		Err error
	}
	ServiceUpstreamError struct {
		Status int
		Body   string
	}
)

func (e *ServiceInitHashError) Error() string {
	return e.Msg
}

func (e *ServiceEncodingHashError) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceFoundNilSecretary) Error() string {
	return e.Msg
}

func (e *ServiceIncorrectInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *ServiceIncorrectInput) Unwrap() error {
	return e.Err
}

func (e *ServiceForbidden) Error() string {
	return e.Msg
}

func (e *ServiceNotPending) Error() string {
	return fmt.Sprintf("wish %d: no pending deletion", e.WishID)
}

func (e *ServiceMissingCredentials) Error() string {
	return e.Msg
}

func (e *ServiceFetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Err.Error())
}

func (e *ServiceFetchError) Unwrap() error {
	return e.Err
}

func (e *ServiceUpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.Status, e.Body)
}
