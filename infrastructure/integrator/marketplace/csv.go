package marketplace

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	ScratchFilePattern = "report-*.csv"
	utf8BOM            = "\ufeff"
)

// CSVDownloader baixa relatórios para um arquivo temporário antes de interpretá-los
type CSVDownloader struct {
	httpClient *http.Client
	scratchDir string
}

func NewCSVDownloader(scratchDir string, timeout time.Duration) *CSVDownloader {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &CSVDownloader{
		httpClient: &http.Client{Timeout: timeout},
		scratchDir: scratchDir,
	}
}

func (d *CSVDownloader) DownloadCSV(ctx context.Context, fileURL string) ([][]string, error) {
	path, err := d.download(ctx, fileURL)
	if err != nil {
		return nil, &ReportDownloadError{URL: fileURL, Err: err}
	}
	defer os.Remove(path)

	records, err := parseCSVFile(path)
	if err != nil {
		return nil, &ReportDownloadError{URL: fileURL, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"url":  fileURL,
		"rows": len(records),
	}).Debug("Relatório CSV baixado")

	return records, nil
}

func (d *CSVDownloader) download(ctx context.Context, fileURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{
			Method:     http.MethodGet,
			URL:        fileURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	file, err := os.CreateTemp(d.scratchDir, ScratchFilePattern)
	if err != nil {
		return "", fmt.Errorf("erro ao criar arquivo temporário: %w", err)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", err
	}

	return file.Name(), nil
}

func parseCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV lê o formato dos relatórios: UTF-8, separado por ponto e vírgula
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}

	return records, nil
}
