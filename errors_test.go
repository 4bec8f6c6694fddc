package sheets

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigurationErrors(t *testing.T) {
	for _, sentinel := range []error{ErrNotFound, ErrNoConditionMatched, ErrUndefinedSheet,
		ErrUnknownField, ErrMalformedSheet} {
		err := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("expected %v to be a configuration error", sentinel)
		}
		if !errors.Is(err, sentinel) {
			t.Errorf("expected wrapped error to match %v", sentinel)
		}
	}
	if errors.Is(ErrUnknownField, ErrUndefinedSheet) {
		t.Error("sentinels must be distinct")
	}
	if errors.Is(ErrSheetRedefined, ErrConfiguration) {
		t.Error("redefinition is a warning, not a configuration error")
	}
}

func TestMalformedSheetError(t *testing.T) {
	err := fmt.Errorf("sheet %q: %w", "x", Malformed(4, "key %q", "a"))
	if !errors.Is(err, ErrMalformedSheet) || !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected malformed sheet error, is %v", err)
	}
	var m *MalformedSheetError
	if !errors.As(err, &m) || m.Depth != 4 {
		t.Fatalf("expected depth 4, have %v", m)
	}
	expected := `malformed sheet: depth of 2 or 3 expected, actual depth was 4: key "a"`
	if m.Error() != expected {
		t.Errorf("unexpected message %q", m.Error())
	}
}
