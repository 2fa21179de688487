package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/cascade/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid setting",
			wantStr: "[INVALID_INPUT] invalid setting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnsupportedFormat, "no parser for %q files", ".ini")
	if err.Message != `no parser for ".ini" files` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("unexpected end of JSON input")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigParse, "cannot read configuration file %s", "/p/.cascaderc")

		if err.Wrapped != baseErr {
			t.Error("Wrapf() should preserve wrapped error")
		}

		wantStr := "[CONFIG_PARSE] cannot read configuration file /p/.cascaderc: unexpected end of JSON input"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})

	t.Run("unwrap_reaches_sentinel", func(t *testing.T) {
		err := errors.Wrap(fs.ErrNotExist, errors.ErrFileNotFound, "missing")
		if !stderrors.Is(err, fs.ErrNotExist) {
			t.Error("errors.Is should see through CascadeError")
		}
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrDiscoveryIO, "walk failed")

	if !stderrors.Is(err, errors.New(errors.ErrDiscoveryIO, "other message")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrOverrideLoad, "walk failed")) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	inner := errors.Wrap(stderrors.New("bad token"), errors.ErrConfigParse, "cannot read configuration file a.json")
	outer := errors.Wrap(inner, errors.ErrDiscoveredFileLoad, "discovery failed")

	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
		want bool
	}{
		{"outer_code", outer, errors.ErrDiscoveredFileLoad, true},
		{"inner_code", outer, errors.ErrConfigParse, true},
		{"absent_code", outer, errors.ErrOverrideLoad, false},
		{"fmt_wrapped", fmt.Errorf("context: %w", inner), errors.ErrConfigParse, true},
		{"plain_error", stderrors.New("plain"), errors.ErrConfigParse, false},
		{"nil_error", nil, errors.ErrConfigParse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrOverrideLoad, "cannot load").
		WithDetail("path", "/tmp/rc.json")

	if got := errors.GetErrorCode(err); got != errors.ErrOverrideLoad {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}

	details := errors.GetErrorDetails(err)
	if details["path"] != "/tmp/rc.json" {
		t.Errorf("GetErrorDetails() = %v", details)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails(plain) should be nil")
	}
}
