package extractor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"virtual-interviewer/internal/logger"

	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
	"go.uber.org/zap"
)

func setUniofficeLicense(key string) error {
	if key == "" {
		return nil
	}
	return license.SetMeteredKey(key)
}

// readDOCX reads paragraphs with unioffice and falls back to scanning
// word/document.xml when unioffice refuses the file (unlicensed or malformed package).
func readDOCX(path string) (string, error) {
	text, err := readDOCXUnioffice(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	logger.Get().Debug("unioffice could not read document, scanning XML", zap.String("path", path), zap.Error(err))
	return readDOCXXML(path)
}

func readDOCXUnioffice(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var b strings.Builder
	for _, p := range doc.Paragraphs() {
		for _, r := range p.Runs() {
			b.WriteString(r.Text())
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func readDOCXXML(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("error opening docx file: %w", err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("error opening document.xml: %w", err)
		}
		defer rc.Close()
		return paragraphsFromXML(rc)
	}
	return "", fmt.Errorf("document.xml not found")
}

// paragraphsFromXML collects <w:t> text, one line per <w:p>.
func paragraphsFromXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error reading document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
