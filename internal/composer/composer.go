// Package composer renders a journal entry, a date followed by free text, into
// a paginated A4 PDF.
//
// The text is wrapped to the printable width and laid out as one tall column.
// The column is cut into fixed-height page bands; page n shows the column
// shifted up by n band heights.
package composer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres. The margin matches 40px of padding at 96dpi and the
// line height is 1.6 times the 14pt body size.
const (
	pageMargin = 10.6
	fontFamily = "Helvetica"
	fontSize   = 14.0
	lineHeight = fontSize * 1.6 * 25.4 / 72
)

// Compose validates the entry and returns the rendered PDF bytes. The document
// starts with a blank line and the date, then a blank line and the text.
func Compose(date, text string) ([]byte, error) {
	pdf, err := render(date, text)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports the first problem with an entry, in the order the journal UI
// checks them.
func Validate(date, text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.NewValidationError(apperrors.MsgEmptyText)
	}
	if !domain.MatchesEntryDatePattern(date) {
		return apperrors.NewValidationError(apperrors.MsgEntryDateFormat)
	}
	return nil
}

// PageOffsets returns the vertical offset of every page for content of the given
// height: 0, -pageHeight, -2*pageHeight and so on, one entry per page. Content no
// taller than a page gives a single page.
func PageOffsets(contentHeight, pageHeight float64) []float64 {
	offsets := []float64{0}
	if pageHeight <= 0 {
		return offsets
	}
	// tolerate float error when the content is an exact multiple of the page
	for left := contentHeight - pageHeight; left > 1e-9; left -= pageHeight {
		offsets = append(offsets, -pageHeight*float64(len(offsets)))
	}
	return offsets
}

func render(date, text string) (*fpdf.Fpdf, error) {
	if err := Validate(date, text); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(fontFamily, "", fontSize)

	pageWidth, pageHeight := pdf.GetPageSize()
	textWidth := pageWidth - 2*pageMargin
	linesPerPage := int(math.Floor((pageHeight - 2*pageMargin) / lineHeight))
	band := float64(linesPerPage) * lineHeight

	lines := wrapLines(pdf, fmt.Sprintf("\n%s\n\n%s", date, text), textWidth)

	for _, offset := range PageOffsets(float64(len(lines))*lineHeight, band) {
		pdf.AddPage()
		first := int(math.Round(-offset / lineHeight))
		last := min(first+linesPerPage, len(lines))
		for i := first; i < last; i++ {
			pdf.SetXY(pageMargin, pageMargin+float64(i)*lineHeight+offset)
			pdf.CellFormat(textWidth, lineHeight, lines[i], "", 0, "L", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return pdf, nil
}

// wrapLines splits text into paragraphs and wraps each one to width. Empty
// paragraphs are kept as blank lines.
func wrapLines(pdf *fpdf.Fpdf, text string, width float64) []string {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.ReplaceAll(tr(paragraph), "\t", "    ")
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		for _, line := range pdf.SplitLines([]byte(paragraph), width) {
			lines = append(lines, string(line))
		}
	}
	return lines
}
