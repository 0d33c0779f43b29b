package errors

import (
	"errors"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "screen not found")
		if err.Error() != "[NOT_FOUND] screen not found" {
			t.Errorf("expected [NOT_FOUND] screen not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("unexpected token")
		err := Wrap(original, CodeParseError, "route table parse failed")
		expected := "[PARSE_ERROR] route table parse failed: unexpected token"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "dangling screen reference")
		if !IsCode(err, CodeValidationError) {
			t.Error("expected IsCode to return true for CodeValidationError")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
	})

	t.Run("IsCodeWithWrapped", func(t *testing.T) {
		original := errors.New("read error")
		err := Wrap(original, CodeParseError, "cannot read route file")
		if !IsCode(err, CodeParseError) {
			t.Error("expected IsCode to return true for wrapped CodeParseError")
		}
	})

	t.Run("AddContext", func(t *testing.T) {
		err := New(CodeParseError, "dynamic path value")
		err = AddContext(err, CtxPath, "src/routes.tsx")
		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatal("expected DomainError")
		}
		if de.Context[CtxPath] != "src/routes.tsx" {
			t.Errorf("expected path context, got %v", de.Context)
		}
	})
}
