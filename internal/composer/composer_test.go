package composer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageOffsets(t *testing.T) {
	tests := []struct {
		name          string
		contentHeight float64
		pageHeight    float64
		want          []float64
	}{
		{name: "short content", contentHeight: 100, pageHeight: 297, want: []float64{0}},
		{name: "empty content", contentHeight: 0, pageHeight: 297, want: []float64{0}},
		{name: "exactly one page", contentHeight: 297, pageHeight: 297, want: []float64{0}},
		{name: "just over one page", contentHeight: 298, pageHeight: 297, want: []float64{0, -297}},
		{name: "three pages", contentHeight: 700, pageHeight: 297, want: []float64{0, -297, -594}},
		{name: "exact multiple", contentHeight: 3 * 7.9, pageHeight: 7.9, want: []float64{0, -7.9, -15.8}},
		{name: "no page height", contentHeight: 500, pageHeight: 0, want: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageOffsets(tt.contentHeight, tt.pageHeight)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		text    string
		wantMsg string
	}{
		{name: "ok", date: "07 July 2025", text: "Dear diary"},
		{name: "empty text", date: "07 July 2025", text: "", wantMsg: apperrors.MsgEmptyText},
		{name: "whitespace text", date: "07 July 2025", text: " \n\t ", wantMsg: apperrors.MsgEmptyText},
		{name: "iso date", date: "2025-07-07", text: "Dear diary", wantMsg: apperrors.MsgEntryDateFormat},
		{name: "empty text wins over bad date", date: "July 7", text: "", wantMsg: apperrors.MsgEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.date, tt.text)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestCompose_SinglePage(t *testing.T) {
	out, err := Compose("07 July 2025", "Walked to the lake.\nSaw a heron.")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	pdf, err := render("07 July 2025", "Walked to the lake.\nSaw a heron.")
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())
}

func TestCompose_Paginates(t *testing.T) {
	text := strings.Repeat("Another line of the entry.\n", 80)

	pdf, err := render("07 July 2025", text)
	require.NoError(t, err)

	// 84 lines at 34 lines per page
	assert.Equal(t, 3, pdf.PageCount())
}

func TestCompose_WrapsLongParagraphs(t *testing.T) {
	pdf, err := render("07 July 2025", strings.Repeat("word ", 2000))
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestCompose_Rejects(t *testing.T) {
	_, err := Compose("07 July 2025", "   ")
	assert.EqualError(t, err, apperrors.MsgEmptyText)

	_, err = Compose("7/7/2025", "text")
	assert.EqualError(t, err, apperrors.MsgEntryDateFormat)
}
