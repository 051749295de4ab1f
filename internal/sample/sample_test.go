package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"distplot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "data.txt", "1 2.5\n\t-3e2\n\n  4  \n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []float64{1, 2.5, -300, 4}, s.Values())
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "  \n\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.True(t, errors.IsFileError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.IsFileError(err))
}

func TestLoadRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name    string
		content string
		token   string
		line    string
	}{
		{"word", "1 2 foo 4", `"foo"`, ":1:"},
		{"second line", "1 2\n3 4x", `"4x"`, ":2:"},
		{"nan", "1 NaN", `"NaN"`, ":1:"},
		{"inf", "1\n\n-Inf", `"-Inf"`, ":3:"},
		{"comma", "1,2", `"1,2"`, ":1:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.txt", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))
			assert.Contains(t, err.Error(), tt.token)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestLoadSingleLineOverSixteenMiB(t *testing.T) {
	const count = 4 << 20 // 5 bytes each, 20 MiB on one line
	path := writeFile(t, "long.txt", strings.Repeat("1.25 ", count))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, count, s.Len())
	assert.Equal(t, 1.25, s.Values()[count-1])
}

func TestParseTextCRLF(t *testing.T) {
	values, err := parseText("crlf", strings.NewReader("1 2\r\n3\r\nx"))

	require.Error(t, err)
	assert.Nil(t, values)
	assert.Contains(t, err.Error(), `crlf:3: invalid number "x"`)
}

func TestValuesIsACopy(t *testing.T) {
	in := []float64{1, 2, 3}
	s := New(in)
	in[0] = 99

	out := s.Values()
	out[1] = 42

	assert.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestLoadExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 1.5))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 2))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", -4))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, -4}, s.Values())
}

func TestLoadExcelIgnoresNumberFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.xlsx")
	f := excelize.NewFile()
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	require.NoError(t, err)
	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Sheet1", "A1", 12345))
	require.NoError(t, f.SetCellStyle("Sheet1", "A1", "A1", thousands))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 0.125))
	require.NoError(t, f.SetCellStyle("Sheet1", "A2", "A2", percent))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{12345, 0.125}, s.Values())
}

func TestLoadExcelBadCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 1))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "oops"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), ":2:")
}
