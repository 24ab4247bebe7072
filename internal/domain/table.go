package domain

const (
	// NoData marca um valor que deveria existir mas não foi retornado
	NoData = "Нет данных"
	// Dash marca uma coluna que o relatório nunca preenche
	Dash = "-"
)

type Row []any

type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

func NewTable(name string, header []string) *Table {
	return &Table{
		Name:   name,
		Header: header,
		Rows:   make([]Row, 0),
	}
}

// Append adiciona uma linha completando as colunas que faltam com vazio
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, PadRow(row, len(t.Header)))
}

func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// Width é a maior quantidade de colunas entre cabeçalho e linhas
func (t *Table) Width() int {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Values retorna cabeçalho e linhas com a mesma largura
func (t *Table) Values() [][]any {
	width := t.Width()
	values := make([][]any, 0, len(t.Rows)+1)

	header := make(Row, len(t.Header))
	for i, name := range t.Header {
		header[i] = name
	}
	values = append(values, PadRow(header, width))

	for _, row := range t.Rows {
		values = append(values, PadRow(row, width))
	}

	return values
}

func PadRow(row Row, width int) Row {
	if len(row) >= width {
		return row
	}
	padded := make(Row, width)
	copy(padded, row)
	for i := len(row); i < width; i++ {
		padded[i] = ""
	}
	return padded
}

// Repeat gera n células com o mesmo valor
func Repeat(value any, n int) Row {
	row := make(Row, n)
	for i := range row {
		row[i] = value
	}
	return row
}
