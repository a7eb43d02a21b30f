package csvio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAllCoercesCells(t *testing.T) {
	path := writeCSV(t, "region,amount\nnorth,100\nsouth,\nwest,12.5\n")

	rows, headers, err := ReadAll(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "amount"}, headers)
	require.Len(t, rows, 3)

	assert.Equal(t, "north", rows[0]["region"])
	assert.Equal(t, float64(100), rows[0]["amount"])
	assert.Nil(t, rows[1]["amount"])
	assert.Equal(t, 12.5, rows[2]["amount"])
}

func TestReadAllKeepsNonNumericStrings(t *testing.T) {
	path := writeCSV(t, "code\n007x\nNaN\nInf\n")

	rows, _, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "007x", rows[0]["code"])
	// NaN and Inf parse as floats but are not finite, so they stay strings.
	assert.Equal(t, "NaN", rows[1]["code"])
	assert.Equal(t, "Inf", rows[2]["code"])
}

func TestReadAllShortRecordFillsNil(t *testing.T) {
	path := writeCSV(t, "a,b,c\n1,2\n")

	rows, _, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0]["a"])
	assert.Nil(t, rows[0]["c"])
}

func TestReadAllMissingFile(t *testing.T) {
	_, _, err := ReadAll(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadAllDirectoryIsNotFound(t *testing.T) {
	_, _, err := ReadAll(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadColumns(t *testing.T) {
	path := writeCSV(t, "region,amount,notes\nnorth,100,ok\n")

	rows, err := ReadColumns(path, []string{"amount", "missing"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, float64(100), rows[0]["amount"])
	_, hasRegion := rows[0]["region"]
	assert.False(t, hasRegion)
	_, hasMissing := rows[0]["missing"]
	assert.False(t, hasMissing)
}

func buildRows(n int) string {
	var sb strings.Builder
	sb.WriteString("id,value\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "%d,v%d\n", i, i)
	}
	return sb.String()
}

func TestReadPageMiddleWindow(t *testing.T) {
	path := writeCSV(t, buildRows(25))

	result, err := ReadPage(path, 2, 10)
	require.NoError(t, err)

	assert.Len(t, result.Rows, 10)
	assert.Equal(t, 25, result.Pagination.TotalRows)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
	assert.Equal(t, 11, result.Pagination.StartRow)
	assert.Equal(t, 20, result.Pagination.EndRow)
	assert.Equal(t, float64(11), result.Rows[0]["id"])
}

func TestReadPageLastPartialPage(t *testing.T) {
	path := writeCSV(t, buildRows(25))

	result, err := ReadPage(path, 3, 10)
	require.NoError(t, err)

	assert.Len(t, result.Rows, 5)
	assert.False(t, result.Pagination.HasNext)
	assert.Equal(t, 21, result.Pagination.StartRow)
	assert.Equal(t, 25, result.Pagination.EndRow)
}

func TestReadPageBeyondRange(t *testing.T) {
	path := writeCSV(t, buildRows(5))

	result, err := ReadPage(path, 4, 10)
	require.NoError(t, err)

	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.Pagination.StartRow)
	assert.Equal(t, 0, result.Pagination.EndRow)
	assert.False(t, result.Pagination.HasNext)
}

func TestReadPageRejectsBadArguments(t *testing.T) {
	path := writeCSV(t, buildRows(5))

	_, err := ReadPage(path, 0, 10)
	assert.Error(t, err)

	_, err = ReadPage(path, 1, 0)
	assert.Error(t, err)

	_, err = ReadPage(path, 1, MaxPageSize+1)
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	path := writeCSV(t, "region,amount\nnorth,100\nsouth,200\n")

	info, err := Info(path)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", info.FileName)
	assert.Equal(t, 2, info.RowCount)
	assert.Equal(t, 2, info.ColumnCount)
	assert.Equal(t, []string{"region", "amount"}, info.Headers)
	assert.Greater(t, info.FileSize, int64(0))
	assert.False(t, info.LastModified.IsZero())
}

func TestStats(t *testing.T) {
	path := writeCSV(t, "region,amount\nnorth,100\nsouth,\neast,300\nwest,250\ncenter,10\nextra,20\n")

	stats, err := Stats(path)
	require.NoError(t, err)
	require.Len(t, stats.Columns, 2)

	region := stats.Columns[0]
	assert.Equal(t, "region", region.Name)
	assert.Equal(t, "string", region.Type)
	assert.Equal(t, 0, region.NullCount)
	assert.Len(t, region.SampleValues, 5)

	amount := stats.Columns[1]
	assert.Equal(t, "number", amount.Type)
	assert.Equal(t, 1, amount.NullCount)
	assert.Equal(t, float64(100), amount.SampleValues[0])
}

func TestEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	rows, headers, err := ReadAll(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, headers)

	info, err := Info(path)
	require.NoError(t, err)
	assert.Equal(t, 0, info.RowCount)
	assert.Equal(t, 0, info.ColumnCount)
}
