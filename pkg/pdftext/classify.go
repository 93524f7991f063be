package pdftext

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// classifyOpenFailure turns a failed open into the right error kind: a
// missing or unreadable path is a file access error, everything else a
// parse error. pdfcpu's reader gives a more precise reason than the
// extraction backends when the file itself is damaged.
func classifyOpenFailure(path string, openErr error) error {
	if _, statErr := os.Stat(path); statErr != nil {
		return errs.Access("open pdf", path, statErr)
	}

	ctx, readErr := api.ReadContextFile(path)
	if readErr != nil {
		return errs.Parse("read pdf", path, readErr)
	}
	if valErr := api.ValidateContext(ctx); valErr != nil {
		return errs.Parse("validate pdf", path, valErr)
	}

	return errs.Parse("extract pdf text", path, openErr)
}
