package extractor

import (
	"fmt"
	"strings"

	"virtual-interviewer/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Get().Warn("skipping unreadable PDF page", zap.String("path", path), zap.Int("page", i), zap.Error(err))
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return b.String(), nil
}
