package marketplace

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "\ufeffАртикул;Ozon Product ID;Название\n" +
		"A-1;101;\"Кружка \"\"большая\"\"\"\n" +
		"A-2;102\n"

	records, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Артикул", records[0][0])
	assert.Equal(t, []string{"A-1", "101", "Кружка \"большая\""}, records[1])
	assert.Len(t, records[2], 2)
}

func TestCSVDownloader_DownloadCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a;b\n1;2\n"))
	}))
	defer server.Close()

	dir := t.TempDir()
	downloader := NewCSVDownloader(dir, time.Second)

	records, err := downloader.DownloadCSV(context.Background(), server.URL+"/report.csv")

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, records)

	// O arquivo temporário é removido depois da leitura
	leftovers, _ := filepath.Glob(filepath.Join(dir, ScratchFilePattern))
	assert.Empty(t, leftovers)
}

func TestCSVDownloader_DownloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("expired"))
	}))
	defer server.Close()

	downloader := NewCSVDownloader(os.TempDir(), time.Second)
	_, err := downloader.DownloadCSV(context.Background(), server.URL)

	var downloadErr *ReportDownloadError
	require.True(t, errors.As(err, &downloadErr))

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
}

func TestCSVDownloader_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	fileURL := server.URL + "/report.csv"
	server.Close()

	downloader := NewCSVDownloader(t.TempDir(), time.Second)
	_, err := downloader.DownloadCSV(context.Background(), fileURL)

	var downloadErr *ReportDownloadError
	require.True(t, errors.As(err, &downloadErr))
	assert.Equal(t, fileURL, downloadErr.URL)
}
