package errs

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorMessageIncludesPath(t *testing.T) {
	err := Access("read order file", "orders.xlsx", fs.ErrNotExist)
	msg := err.Error()

	if !strings.Contains(msg, "file access error") {
		t.Errorf("Expected kind in message, got %q", msg)
	}
	if !strings.Contains(msg, "orders.xlsx") {
		t.Errorf("Expected path in message, got %q", msg)
	}
	if !strings.Contains(msg, "read order file") {
		t.Errorf("Expected op in message, got %q", msg)
	}
}

func TestErrorMessageWithoutPath(t *testing.T) {
	err := Schema("align rows", "", errors.New("duplicate key"))
	msg := err.Error()

	if strings.Contains(msg, "()") {
		t.Errorf("Empty path should be omitted, got %q", msg)
	}
	if !strings.Contains(msg, "schema error") {
		t.Errorf("Expected kind in message, got %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	base := fs.ErrNotExist
	err := Access("open", "missing.pdf", base)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Expected errors.Is to find the wrapped error")
	}
}

func TestIsKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{"parse error matches parse", Parse("decode", "bad.pdf", errors.New("xref")), KindParse, true},
		{"parse error is not schema", Parse("decode", "bad.pdf", errors.New("xref")), KindSchema, false},
		{"schema error matches schema", Schemaf("read header", "inv.csv", "missing field %q", "kod"), KindSchema, true},
		{"write error matches write", Write("save report", "out.xlsx", errors.New("permission denied")), KindWrite, true},
		{"plain error matches nothing", errors.New("plain"), KindParse, false},
		{"nil matches nothing", nil, KindFileAccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKind(tt.err, tt.kind); got != tt.want {
				t.Errorf("IsKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := Parse("decode page", "doc.pdf", errors.New("bad stream"))
	outer := errors.Join(errors.New("context"), inner)

	if !IsKind(outer, KindParse) {
		t.Error("Expected IsKind to see through wrapped chains")
	}
}

func TestKindString(t *testing.T) {
	if got := KindWrite.String(); got != "write error" {
		t.Errorf("KindWrite.String() = %q, want %q", got, "write error")
	}
	if got := Kind(99).String(); got != "error" {
		t.Errorf("Unknown kind should fall back to %q, got %q", "error", got)
	}
}
