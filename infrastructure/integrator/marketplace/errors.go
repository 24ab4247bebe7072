package marketplace

import (
	"errors"
	"fmt"
)

var (
	ErrReportFailed    = errors.New("geração do relatório falhou no marketplace")
	ErrEmptyReportFile = errors.New("relatório pronto sem arquivo")

	// ErrGeneratorSkipped indica que o relatório não se aplica à conta
	ErrGeneratorSkipped = errors.New("relatório ignorado")
)

// UpstreamError representa uma resposta com status >= 400 de um marketplace
type UpstreamError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s falhou com status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// ReportDownloadError indica falha ao baixar ou interpretar um CSV
type ReportDownloadError struct {
	URL string
	Err error
}

func (e *ReportDownloadError) Error() string {
	return fmt.Sprintf("erro ao baixar relatório %s: %v", e.URL, e.Err)
}

func (e *ReportDownloadError) Unwrap() error {
	return e.Err
}

// ReportTimeoutError indica que o relatório assíncrono não ficou pronto dentro do limite
type ReportTimeoutError struct {
	Attempts int
}

func (e *ReportTimeoutError) Error() string {
	return fmt.Sprintf("relatório não ficou pronto após %d tentativas", e.Attempts)
}
