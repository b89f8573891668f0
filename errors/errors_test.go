package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDegenerateAngle, "shadow angle %v", 0.0)
	if err.Error() != "DEGENERATE_ANGLE: shadow angle 0" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !Is(err, ErrCodeDegenerateAngle) {
		t.Error("Is should match its own code")
	}
	if Is(err, ErrCodeOutOfRangeTime) {
		t.Error("Is should not match a different code")
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrCodeInvalidConfig, io.ErrUnexpectedEOF, "reading %s", "config.yaml")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("wrapped cause should be reachable")
	}
	if UserMessage(err) != "reading config.yaml" {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}

	outer := fmt.Errorf("load: %w", err)
	if GetCode(outer) != ErrCodeInvalidConfig {
		t.Errorf("GetCode through wrapping = %q", GetCode(outer))
	}
}

func TestPlainErrors(t *testing.T) {
	plain := errors.New("boom")
	if GetCode(plain) != "" {
		t.Error("plain errors carry no code")
	}
	if UserMessage(plain) != "boom" {
		t.Errorf("UserMessage = %q", UserMessage(plain))
	}
}
