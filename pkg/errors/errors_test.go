package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewHTTPError(http.StatusConflict, "conflict"))

	he, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected HTTPError")
	}
	if he.Code != http.StatusConflict || he.Message != "conflict" {
		t.Errorf("unexpected error: %+v", he)
	}

	if _, ok := AsHTTPError(errors.New("plain")); ok {
		t.Error("plain error should not be an HTTPError")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	if Wrap(nil, "x") != nil {
		t.Error("wrapping nil must return nil")
	}
	err := Wrap(base, "load")
	if !errors.Is(err, base) {
		t.Error("wrapped error lost its cause")
	}
	if err.Error() != "load: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
