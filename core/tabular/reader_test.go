package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := `"record_no","sent_at","org_code"
30879,2026-01-12 23:56:36.000,"11100338"
30878,2026-01-12 23:56:25.000,"11100338"
`

	ds, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"record_no", "sent_at", "org_code"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "30879", ds.Rows[0]["record_no"])
	assert.Equal(t, "11100338", ds.Rows[1]["org_code"])
}

func TestReadCSV_RaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4\n"

	ds, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)

	// Short rows leave trailing columns absent; extra cells are dropped.
	_, present := ds.Rows[0]["c"]
	assert.False(t, present)
	assert.Equal(t, "3", ds.Rows[1]["c"])
}

func TestReadCSV_HeaderValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"BlankHeaderName", "a,,c\n1,2,3\n"},
		{"DuplicateHeaderName", "a,b,a\n1,2,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReadFile_Dispatch(t *testing.T) {
	_, err := ReadFile("data.parquet", strings.NewReader(""))
	assert.ErrorContains(t, err, "unsupported file type")

	ds, err := ReadFile("data.TXT", strings.NewReader("id\n1\n"))
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 1)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"id", "name"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "alpha"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{2, "beta"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	ds, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "1", ds.Rows[0]["id"])
	assert.Equal(t, "beta", ds.Rows[1]["name"])
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("plain text"))
	assert.Error(t, err)
}
