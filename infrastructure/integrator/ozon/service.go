package ozon

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
)

const (
	SheetAvailability = "Доступность товаров"
	SheetPlacement    = "Размещение"
	SheetAds          = "Реклама"
	SheetIncomes      = "Начисления по товарам"
	SheetProducts     = "Товары"
	SheetReturns      = "Возвраты"
	SheetSales        = "Продажи"
	SheetSupplyOrders = "Заявки на поставку"
	SheetLocalization = "Индекс локализации"
	SheetForecast     = "Прогноз поставки"
)

const defaultPageLimit = 100

var ErrAdsNotConfigured = fmt.Errorf("%w: credenciais da API de anúncios não configuradas", marketplace.ErrGeneratorSkipped)

type OzonIntegrator struct {
	seller      marketplace.Client
	performance marketplace.Client
	downloader  marketplace.Downloader
	poller      *marketplace.Poller
	pageLimit   int
}

// New monta o integrador. performance pode ser nil quando a loja não tem acesso à API de anúncios.
func New(seller, performance marketplace.Client, downloader marketplace.Downloader, poller *marketplace.Poller, pageLimit int) *OzonIntegrator {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}
	return &OzonIntegrator{
		seller:      seller,
		performance: performance,
		downloader:  downloader,
		poller:      poller,
		pageLimit:   pageLimit,
	}
}

func (s *OzonIntegrator) Generators() []marketplace.Generator {
	return []marketplace.Generator{
		{Name: SheetAvailability, Produce: s.ProductsAvailability},
		{Name: SheetPlacement, Produce: s.Placement},
		{Name: SheetAds, Produce: s.Ads},
		{Name: SheetIncomes, Produce: s.OrderIncomes},
		{Name: SheetProducts, Produce: s.Products},
		{Name: SheetReturns, Produce: s.Returns},
		{Name: SheetSales, Produce: s.Sales},
		{Name: SheetSupplyOrders, Produce: s.SupplyOrders},
		{Name: SheetLocalization, Produce: s.LocalizationIndex},
		{Name: SheetForecast, Produce: s.SupplyForecast},
	}
}

// downloadReport espera o relatório assíncrono da Seller API ficar pronto e baixa o CSV
func (s *OzonIntegrator) downloadReport(ctx context.Context, code string) ([][]string, error) {
	fileURL, err := s.poller.Poll(ctx, func(ctx context.Context) (bool, string, error) {
		var resp ozondomain.ReportInfoResponse
		if err := s.seller.Post(ctx, "/v1/report/info", ozondomain.ReportInfoRequest{Code: code}, &resp); err != nil {
			return false, "", err
		}

		switch resp.Result.Status {
		case ozondomain.ReportStatusProcessing, ozondomain.ReportStatusWaiting:
			return false, "", nil
		case ozondomain.ReportStatusFailed:
			return false, "", fmt.Errorf("%w: %s", marketplace.ErrReportFailed, resp.Result.Error)
		}

		if resp.Result.File == "" {
			return false, "", marketplace.ErrEmptyReportFile
		}
		return true, resp.Result.File, nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"code": code,
		"file": fileURL,
	}).Debug("Relatório do Ozon pronto para download")

	return s.downloader.DownloadCSV(ctx, fileURL)
}

// csvTable usa a primeira linha do CSV como cabeçalho e ajusta as demais à largura dele
func csvTable(name string, records [][]string, maxColumns int) *domain.Table {
	if len(records) == 0 {
		return domain.NewTable(name, nil)
	}

	header := records[0]
	if maxColumns > 0 && len(header) > maxColumns {
		header = header[:maxColumns]
	}

	table := domain.NewTable(name, header)
	for _, record := range records[1:] {
		table.Append(stringsRow(record, len(header)))
	}
	return table
}

func stringsRow(record []string, width int) domain.Row {
	if len(record) > width {
		record = record[:width]
	}
	row := make(domain.Row, len(record))
	for i, cell := range record {
		row[i] = cell
	}
	return row
}

// flag converte presença em "+" / "-"
func flag(present bool) string {
	if present {
		return "+"
	}
	return domain.Dash
}

// amountOrDash repete o valor quando ele é diferente de zero
func amountOrDash(value float64) any {
	if value == 0 {
		return domain.Dash
	}
	return value
}
