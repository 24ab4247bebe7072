package sheets

import "context"

// SheetInfo são as propriedades de uma aba necessárias para publicar
type SheetInfo struct {
	ID      int64
	Title   string
	Rows    int64
	Columns int64
}

// Backend isola as chamadas às APIs do Google Sheets e do Drive
type Backend interface {
	CreateSpreadsheet(ctx context.Context, title string) (id string, url string, err error)
	Share(ctx context.Context, spreadsheetID, email string) error
	ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error)
	AddSheet(ctx context.Context, spreadsheetID, title string, rows, columns int64) (SheetInfo, error)
	DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error
	// ExpandGrid acrescenta linhas e colunas ao final da aba
	ExpandGrid(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error
	Clear(ctx context.Context, spreadsheetID, rng string) error
	Update(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	Read(ctx context.Context, spreadsheetID, rng string) ([][]any, error)
	FormatBold(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error
	AutoResize(ctx context.Context, spreadsheetID string, sheetID int64, rows, columns int64) error
}
