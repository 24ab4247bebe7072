package sheets

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw          = "RAW"
	valueRenderUnformatted = "UNFORMATTED_VALUE"
)

type googleBackend struct {
	sheets *gsheets.Service
	drive  *drive.Service
}

// NewGoogleBackend autentica com a conta de serviço do arquivo de credenciais
func NewGoogleBackend(ctx context.Context, credentialsFile string) (Backend, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler credenciais do Google")
	}

	conf, err := google.JWTConfigFromJSON(data, gsheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, errors.Wrap(err, "credenciais do Google inválidas")
	}

	tokenSource := option.WithTokenSource(conf.TokenSource(ctx))

	sheetsService, err := gsheets.NewService(ctx, tokenSource)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Sheets")
	}

	driveService, err := drive.NewService(ctx, tokenSource)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Drive")
	}

	logrus.WithField("service_account", conf.Email).Info("Conta de serviço do Google configurada")

	return &googleBackend{
		sheets: sheetsService,
		drive:  driveService,
	}, nil
}

func (b *googleBackend) CreateSpreadsheet(ctx context.Context, title string) (string, string, error) {
	resp, err := b.sheets.Spreadsheets.Create(&gsheets.Spreadsheet{
		Properties: &gsheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", "", errors.Wrap(err, "erro ao criar planilha")
	}
	return resp.SpreadsheetId, resp.SpreadsheetUrl, nil
}

func (b *googleBackend) Share(ctx context.Context, spreadsheetID, email string) error {
	_, err := b.drive.Permissions.Create(spreadsheetID, &drive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	}).Fields("id").Context(ctx).Do()
	return errors.Wrap(err, "erro ao compartilhar planilha")
}

func (b *googleBackend) ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error) {
	resp, err := b.sheets.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar abas")
	}

	result := make([]SheetInfo, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		result = append(result, sheetInfo(sheet.Properties))
	}
	return result, nil
}

func (b *googleBackend) AddSheet(ctx context.Context, spreadsheetID, title string, rows, columns int64) (SheetInfo, error) {
	resp, err := b.batchUpdate(ctx, spreadsheetID, &gsheets.Request{
		AddSheet: &gsheets.AddSheetRequest{
			Properties: &gsheets.SheetProperties{
				Title: title,
				GridProperties: &gsheets.GridProperties{
					RowCount:    rows,
					ColumnCount: columns,
				},
			},
		},
	})
	if err != nil {
		return SheetInfo{}, errors.Wrap(err, "erro ao criar aba")
	}

	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return SheetInfo{}, errors.New("resposta sem a aba criada")
	}
	return sheetInfo(resp.Replies[0].AddSheet.Properties), nil
}

func (b *googleBackend) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	_, err := b.batchUpdate(ctx, spreadsheetID, &gsheets.Request{
		DeleteSheet: &gsheets.DeleteSheetRequest{
			SheetId:         sheetID,
			ForceSendFields: []string{"SheetId"},
		},
	})
	return errors.Wrap(err, "erro ao remover aba")
}

func (b *googleBackend) ExpandGrid(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error {
	requests := make([]*gsheets.Request, 0, 2)
	if rows > 0 {
		requests = append(requests, appendDimension(sheetID, "ROWS", rows))
	}
	if columns > 0 {
		requests = append(requests, appendDimension(sheetID, "COLUMNS", columns))
	}
	if len(requests) == 0 {
		return nil
	}

	_, err := b.batchUpdate(ctx, spreadsheetID, requests...)
	return errors.Wrap(err, "erro ao aumentar a aba")
}

func (b *googleBackend) Clear(ctx context.Context, spreadsheetID, rng string) error {
	_, err := b.sheets.Spreadsheets.Values.Clear(spreadsheetID, rng, &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	return errors.Wrap(err, "erro ao limpar aba")
}

func (b *googleBackend) Update(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	_, err := b.sheets.Spreadsheets.Values.Update(spreadsheetID, rng, &gsheets.ValueRange{
		Values: values,
	}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	return errors.Wrap(err, "erro ao escrever valores")
}

func (b *googleBackend) Read(ctx context.Context, spreadsheetID, rng string) ([][]any, error) {
	resp, err := b.sheets.Spreadsheets.Values.Get(spreadsheetID, rng).
		ValueRenderOption(valueRenderUnformatted).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler valores")
	}

	return resp.Values, nil
}

func (b *googleBackend) FormatBold(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error {
	_, err := b.batchUpdate(ctx, spreadsheetID, &gsheets.Request{
		RepeatCell: &gsheets.RepeatCellRequest{
			Range: gridRange(sheetID, rows, columns),
			Cell: &gsheets.CellData{
				UserEnteredFormat: &gsheets.CellFormat{
					TextFormat: &gsheets.TextFormat{Bold: true},
				},
			},
			Fields: "userEnteredFormat.textFormat.bold",
		},
	})
	return errors.Wrap(err, "erro ao formatar cabeçalho")
}

func (b *googleBackend) AutoResize(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error {
	_, err := b.batchUpdate(ctx, spreadsheetID,
		&gsheets.Request{AutoResizeDimensions: &gsheets.AutoResizeDimensionsRequest{
			Dimensions: dimensionRange(sheetID, "ROWS", rows),
		}},
		&gsheets.Request{AutoResizeDimensions: &gsheets.AutoResizeDimensionsRequest{
			Dimensions: dimensionRange(sheetID, "COLUMNS", columns),
		}},
	)
	return errors.Wrap(err, "erro ao redimensionar aba")
}

func (b *googleBackend) batchUpdate(ctx context.Context, spreadsheetID string, requests ...*gsheets.Request) (*gsheets.BatchUpdateSpreadsheetResponse, error) {
	return b.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
}

func sheetInfo(properties *gsheets.SheetProperties) SheetInfo {
	info := SheetInfo{
		ID:    properties.SheetId,
		Title: properties.Title,
	}
	if properties.GridProperties != nil {
		info.Rows = properties.GridProperties.RowCount
		info.Columns = properties.GridProperties.ColumnCount
	}
	return info
}

// a aba padrão tem id 0, que seria omitido no JSON sem ForceSendFields
func gridRange(sheetID, rows, columns int64) *gsheets.GridRange {
	return &gsheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    0,
		EndRowIndex:      rows,
		StartColumnIndex: 0,
		EndColumnIndex:   columns,
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}
}

func dimensionRange(sheetID int64, dimension string, end int64) *gsheets.DimensionRange {
	return &gsheets.DimensionRange{
		SheetId:         sheetID,
		Dimension:       dimension,
		StartIndex:      0,
		EndIndex:        end,
		ForceSendFields: []string{"SheetId", "StartIndex"},
	}
}

func appendDimension(sheetID int64, dimension string, length int64) *gsheets.Request {
	return &gsheets.Request{AppendDimension: &gsheets.AppendDimensionRequest{
		SheetId:         sheetID,
		Dimension:       dimension,
		Length:          length,
		ForceSendFields: []string{"SheetId"},
	}}
}
