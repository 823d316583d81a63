package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantMsg  string
		wantCode Code
	}{
		{
			name:     "WithoutCause",
			err:      New(ErrCodeInvalidDocument, "unknown property type: %s", "Blob"),
			wantMsg:  "INVALID_DOCUMENT: unknown property type: Blob",
			wantCode: ErrCodeInvalidDocument,
		},
		{
			name:     "WithCause",
			err:      Wrap(ErrCodeInternal, stderrors.New("boom"), "render %s", "svg"),
			wantMsg:  "INTERNAL_ERROR: render svg: boom",
			wantCode: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !Is(tt.err, tt.wantCode) {
				t.Errorf("Is(%v) = false", tt.wantCode)
			}
			if Is(tt.err, ErrCodeNotFound) {
				t.Error("Is matched the wrong code")
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeFileNotFound, cause, "open scene.json")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidStyle, "unknown style %q", "neon")
	if got := UserMessage(err); strings.Contains(got, "INVALID_STYLE") {
		t.Errorf("UserMessage leaked the code prefix: %q", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
	if got := GetCode(plain); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}
