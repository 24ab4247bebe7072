package sheets

import (
	"fmt"
	"strings"
)

// ColumnName converte o número da coluna (1 = A) na letra usada pela notação A1
func ColumnName(n int) string {
	if n < 1 {
		return ""
	}

	var sb strings.Builder
	letters := make([]byte, 0, 3)
	for n > 0 {
		n--
		letters = append(letters, byte('A'+n%26))
		n /= 26
	}
	for i := len(letters) - 1; i >= 0; i-- {
		sb.WriteByte(letters[i])
	}
	return sb.String()
}

// sheetRange monta o intervalo A1 com o título entre aspas simples
func sheetRange(title, cells string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if cells == "" {
		return quoted
	}
	return quoted + "!" + cells
}

func extent(startRow, rows, columns int) string {
	return fmt.Sprintf("A%d:%s%d", startRow, ColumnName(columns), startRow+rows-1)
}
