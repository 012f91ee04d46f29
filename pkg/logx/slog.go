package logx

import (
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Code logs a stable error code under its canonical field name.
func Code(code failure.ErrorCode) slog.Attr {
	return slog.String(FieldErrorCode, code.String())
}
