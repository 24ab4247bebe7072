package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
)

const (
	// margem de linhas e colunas além do tamanho dos dados ao criar uma aba
	gridMargin = 1000
	// linhas 1 a 3 com datas e a linha 4 com o cabeçalho da tabela
	headerBlockRows = 3
	boldRows        = 4

	actualizedAtLayout = "02.01.2006 15:04"
	windowLayout       = "02.01.2006"
)

var defaultSheetTitles = []string{"Sheet1", "Лист1"}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

type Publisher interface {
	CreateDocument(ctx context.Context, name string, window domain.DateWindow) (Document, error)
	OpenDocument(ctx context.Context, urlOrID string, window domain.DateWindow) (Document, error)
}

type Document interface {
	ID() string
	URL() string
	CreateSheet(ctx context.Context, name string, rowHint, colHint int) error
	WriteTable(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error
	PutIncremental(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error
	RemoveColumns(ctx context.Context, sheet string, start, end int) error
}

type Service struct {
	backend    Backend
	shareEmail string
	now        func() time.Time
}

func NewService(backend Backend, shareEmail string) *Service {
	return &Service{
		backend:    backend,
		shareEmail: shareEmail,
		now:        time.Now,
	}
}

// WithClock troca o relógio usado no carimbo de atualização
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CreateDocument(ctx context.Context, name string, window domain.DateWindow) (Document, error) {
	id, url, err := s.backend.CreateSpreadsheet(ctx, name)
	if err != nil {
		return nil, &PublishError{Sheet: name, Op: "create_document", Err: err}
	}

	if s.shareEmail != "" {
		if err := s.backend.Share(ctx, id, s.shareEmail); err != nil {
			return nil, &PublishError{Sheet: name, Op: "share", Err: err}
		}
	}

	if url == "" {
		url = documentURL(id)
	}

	logrus.WithFields(logrus.Fields{
		"document": name,
		"url":      url,
	}).Info("Planilha criada")

	return s.newDocument(id, url, window), nil
}

// OpenDocument aceita a URL completa da planilha ou apenas o ID
func (s *Service) OpenDocument(ctx context.Context, urlOrID string, window domain.DateWindow) (Document, error) {
	id := ParseDocumentID(urlOrID)
	if id == "" {
		return nil, &PublishError{Op: "open_document", Err: fmt.Errorf("planilha inválida: %q", urlOrID)}
	}

	doc := s.newDocument(id, documentURL(id), window)
	if _, err := doc.loadSheets(ctx); err != nil {
		return nil, &PublishError{Op: "open_document", Err: err}
	}
	return doc, nil
}

func (s *Service) newDocument(id, url string, window domain.DateWindow) *document {
	return &document{
		backend: s.backend,
		id:      id,
		url:     url,
		window:  window,
		now:     s.now,
	}
}

func ParseDocumentID(urlOrID string) string {
	value := strings.TrimSpace(urlOrID)
	if match := spreadsheetIDPattern.FindStringSubmatch(value); match != nil {
		return match[1]
	}
	if strings.Contains(value, "/") {
		return ""
	}
	return value
}

func documentURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", id)
}

type document struct {
	backend Backend
	id      string
	url     string
	window  domain.DateWindow
	now     func() time.Time

	mutex  sync.Mutex
	sheets map[string]SheetInfo
}

func (d *document) ID() string {
	return d.id
}

func (d *document) URL() string {
	return d.url
}

func (d *document) loadSheets(ctx context.Context) (map[string]SheetInfo, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.sheets != nil {
		return d.sheets, nil
	}

	list, err := d.backend.ListSheets(ctx, d.id)
	if err != nil {
		return nil, err
	}

	d.sheets = make(map[string]SheetInfo, len(list))
	for _, sheet := range list {
		d.sheets[sheet.Title] = sheet
	}
	return d.sheets, nil
}

func (d *document) sheet(ctx context.Context, name string) (SheetInfo, bool, error) {
	sheets, err := d.loadSheets(ctx)
	if err != nil {
		return SheetInfo{}, false, err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	info, ok := sheets[name]
	return info, ok, nil
}

// CreateSheet cria a aba com folga de linhas e colunas ou limpa a existente
func (d *document) CreateSheet(ctx context.Context, name string, rowHint, colHint int) error {
	if _, err := d.createSheet(ctx, name, rowHint, colHint); err != nil {
		return &PublishError{Sheet: name, Op: "create_sheet", Err: err}
	}
	return nil
}

func (d *document) createSheet(ctx context.Context, name string, rowHint, colHint int) (SheetInfo, error) {
	info, exists, err := d.sheet(ctx, name)
	if err != nil {
		return SheetInfo{}, err
	}

	if exists {
		if err := d.backend.Clear(ctx, d.id, sheetRange(name, "")); err != nil {
			return SheetInfo{}, err
		}
		return info, nil
	}

	info, err = d.backend.AddSheet(ctx, d.id, name, int64(rowHint+gridMargin), int64(colHint+gridMargin))
	if err != nil {
		return SheetInfo{}, err
	}

	d.mutex.Lock()
	d.sheets[name] = info
	d.mutex.Unlock()

	logrus.WithField("sheet", name).Info("Aba criada")

	d.removeDefaultSheet(ctx, name)
	return info, nil
}

// removeDefaultSheet apaga a aba padrão que o Google cria com a planilha
func (d *document) removeDefaultSheet(ctx context.Context, created string) {
	for _, title := range defaultSheetTitles {
		if title == created {
			continue
		}

		d.mutex.Lock()
		info, ok := d.sheets[title]
		d.mutex.Unlock()
		if !ok {
			continue
		}

		if err := d.backend.DeleteSheet(ctx, d.id, info.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"sheet": title,
				"error": err.Error(),
			}).Warn("Não foi possível remover a aba padrão")
			continue
		}

		d.mutex.Lock()
		delete(d.sheets, title)
		d.mutex.Unlock()
	}
}

func (d *document) WriteTable(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error {
	if err := d.writeTable(ctx, table, actualizedAt); err != nil {
		return &PublishError{Sheet: table.Name, Op: "write_table", Err: err}
	}
	return nil
}

func (d *document) writeTable(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error {
	data := append(d.headerBlock(actualizedAt), table.Values()...)
	width := max(table.Width(), 2)

	info, exists, err := d.sheet(ctx, table.Name)
	if err != nil {
		return err
	}

	if exists {
		if err := d.backend.Clear(ctx, d.id, sheetRange(table.Name, "")); err != nil {
			return err
		}
	} else {
		info, err = d.createSheet(ctx, table.Name, len(data), width)
		if err != nil {
			return err
		}
	}

	rows := make([][]any, len(data))
	for i, row := range data {
		rows[i] = domain.PadRow(row, width)
	}

	if info, err = d.ensureGrid(ctx, info, len(rows), width); err != nil {
		return err
	}

	if err := d.backend.Update(ctx, d.id, sheetRange(table.Name, extent(1, len(rows), width)), rows); err != nil {
		return err
	}

	if err := d.backend.FormatBold(ctx, d.id, info.ID, boldRows, int64(width)); err != nil {
		return err
	}

	if err := d.backend.AutoResize(ctx, d.id, info.ID, int64(len(rows)), int64(width)); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sheet": table.Name,
		"rows":  len(table.Rows),
	}).Info("Aba publicada")

	return nil
}

// PutIncremental acrescenta apenas as linhas que ainda não estão na aba
func (d *document) PutIncremental(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error {
	if err := d.putIncremental(ctx, table, actualizedAt); err != nil {
		return &PublishError{Sheet: table.Name, Op: "put_incremental", Err: err}
	}
	return nil
}

func (d *document) putIncremental(ctx context.Context, table *domain.Table, actualizedAt *time.Time) error {
	info, exists, err := d.sheet(ctx, table.Name)
	if err != nil {
		return err
	}
	if !exists {
		return d.writeTable(ctx, table, actualizedAt)
	}

	existing, err := d.backend.Read(ctx, d.id, sheetRange(table.Name, ""))
	if err != nil {
		return err
	}
	if len(existing) <= headerBlockRows+1 {
		return d.writeTable(ctx, table, actualizedAt)
	}

	width := table.Width()
	for _, row := range existing {
		width = max(width, len(row))
	}

	present := make(map[string]struct{}, len(existing))
	for _, row := range existing[headerBlockRows+1:] {
		present[rowKey(domain.PadRow(row, width))] = struct{}{}
	}

	delta := make([][]any, 0)
	for _, row := range table.Rows {
		padded := domain.PadRow(row, width)
		key := rowKey(padded)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		delta = append(delta, padded)
	}

	if len(delta) > 0 {
		start := len(existing) + 1
		if _, err := d.ensureGrid(ctx, info, len(existing)+len(delta), width); err != nil {
			return err
		}
		if err := d.backend.Update(ctx, d.id, sheetRange(table.Name, extent(start, len(delta), width)), delta); err != nil {
			return err
		}
	}

	if err := d.backend.Update(ctx, d.id, sheetRange(table.Name, "B1"), [][]any{{d.actualizedAt(actualizedAt)}}); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"sheet":    table.Name,
		"incoming": len(table.Rows),
		"appended": len(delta),
	}).Info("Aba atualizada de forma incremental")

	return nil
}

// ensureGrid aumenta a aba quando os dados passam do tamanho atual.
// As linhas ganham a mesma folga usada na criação, as colunas só o que falta.
func (d *document) ensureGrid(ctx context.Context, info SheetInfo, rows, columns int) (SheetInfo, error) {
	var addRows, addColumns int64
	if missing := int64(rows) - info.Rows; missing > 0 {
		addRows = missing + gridMargin
	}
	if missing := int64(columns) - info.Columns; missing > 0 {
		addColumns = missing
	}
	if addRows == 0 && addColumns == 0 {
		return info, nil
	}

	if err := d.backend.ExpandGrid(ctx, d.id, info.ID, addRows, addColumns); err != nil {
		return info, err
	}

	info.Rows += addRows
	info.Columns += addColumns

	d.mutex.Lock()
	d.sheets[info.Title] = info
	d.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"sheet":   info.Title,
		"rows":    info.Rows,
		"columns": info.Columns,
	}).Debug("Aba aumentada")

	return info, nil
}

// RemoveColumns remove as colunas de start até end (base 1, inclusivo). end = 0 vai até o fim da aba.
func (d *document) RemoveColumns(ctx context.Context, sheet string, start, end int) error {
	if err := d.removeColumns(ctx, sheet, start, end); err != nil {
		return &PublishError{Sheet: sheet, Op: "remove_columns", Err: err}
	}
	return nil
}

func (d *document) removeColumns(ctx context.Context, sheet string, start, end int) error {
	if start < 1 || (end != 0 && end < start) {
		return ErrInvalidColumnRange
	}

	info, exists, err := d.sheet(ctx, sheet)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSheetNotFound
	}

	if end == 0 {
		end = int(info.Columns)
	}

	values, err := d.backend.Read(ctx, d.id, sheetRange(sheet, ""))
	if err != nil {
		return err
	}

	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}

	cleaned := make([][]any, len(values))
	newWidth := 0
	for i, row := range values {
		padded := domain.PadRow(row, width)
		kept := make([]any, 0, len(padded))
		kept = append(kept, padded[:min(start-1, len(padded))]...)
		if end < len(padded) {
			kept = append(kept, padded[end:]...)
		}
		cleaned[i] = kept
		newWidth = max(newWidth, len(kept))
	}

	if err := d.backend.Clear(ctx, d.id, sheetRange(sheet, "")); err != nil {
		return err
	}

	if len(cleaned) == 0 || newWidth == 0 {
		return nil
	}

	return d.backend.Update(ctx, d.id, sheetRange(sheet, extent(1, len(cleaned), newWidth)), cleaned)
}

func (d *document) headerBlock(actualizedAt *time.Time) [][]any {
	return [][]any{
		{"Актуальность данных:", d.actualizedAt(actualizedAt)},
		{"Дата начала выгрузки", d.window.Start.Format(windowLayout)},
		{"Дата конца выгрузки", d.window.End.Format(windowLayout)},
	}
}

func (d *document) actualizedAt(at *time.Time) string {
	if at != nil {
		return at.Format(actualizedAtLayout)
	}
	return d.now().Format(actualizedAtLayout)
}

// rowKey compara linhas pela forma textual das células
func rowKey(row []any) string {
	parts := make([]string, len(row))
	for i, cell := range row {
		parts[i] = cellText(cell)
	}
	return strings.Join(parts, "\x1f")
}

// cellText normaliza números para o mesmo texto. A leitura da planilha devolve
// todo número como float64, enquanto as linhas novas trazem int ou int64.
func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
