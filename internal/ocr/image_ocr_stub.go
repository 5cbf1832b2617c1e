//go:build !ocr

package ocr

import (
	"context"

	"github.com/coursekit/roadmap-parser/internal/common"
)

// ImageOCR is the stub used when the "ocr" build tag is not set. It always
// returns common.ErrOCRNotEnabled; rebuild with -tags ocr and a system
// tesseract installation to enable recognition.
func (e *Extractor) ImageOCR(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", common.ErrOCRNotEnabled
}
