// Package spreadsheet читает табличные файлы (CSV, XLSX) в строки с именованными колонками.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/normalize"
	"github.com/xuri/excelize/v2"
)

// headerScanLimit сколько строк просматривать в поисках заголовка
const headerScanLimit = 30

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sheet первый лист файла как есть: числовые ячейки XLSX приходят float64, остальные string
type Sheet struct {
	Name string
	Rows [][]any
	// Lines номер строки файла (с единицы) для каждой строки Rows
	Lines []int
}

// Table лист с заголовком: колонки в нижнем регистре
type Table struct {
	Headers []string
	Records []models.RawRecord
	// Lines номер строки файла для каждой записи Records, пустые строки учтены
	Lines []int
}

// Reader читает загружаемые файлы инцидентов
type Reader struct{}

// Read читает файл и строит таблицу по первой строке
func (Reader) Read(filename string, content []byte) (*Table, error) {
	return Read(filename, content)
}

// Read читает файл и строит таблицу по первой строке
func Read(filename string, content []byte) (*Table, error) {
	sheet, err := Load(filename, content)
	if err != nil {
		return nil, err
	}
	return sheet.Table(0), nil
}

// Load разбирает файл по расширению. Неизвестное расширение или нечитаемый
// файл дают models.ErrUnsupportedFormat.
func Load(filename string, content []byte) (*Sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return loadCSV(content)
	case ".xlsx", ".xls":
		// .xls в старом бинарном формате excelize не откроет
		return loadWorkbook(content)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, ext)
	}
}

func loadCSV(content []byte) (*Sheet, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.Comma = detectDelimiter(content)

	sheet := &Sheet{Name: "csv"}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", models.ErrUnsupportedFormat, err)
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		// csv.Reader пропускает пустые строки, номер берется из позиции первого поля
		line, _ := r.FieldPos(0)
		sheet.Rows = append(sheet.Rows, row)
		sheet.Lines = append(sheet.Lines, line)
	}
	return sheet, nil
}

// detectDelimiter выбирает ';' для выгрузок из Excel с запятой как десятичным разделителем
func detectDelimiter(content []byte) rune {
	firstLine, _, _ := bytes.Cut(content, []byte("\n"))
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

func loadWorkbook(content []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: workbook: %v", models.ErrUnsupportedFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", models.ErrUnsupportedFormat)
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	sheet := &Sheet{Name: name, Rows: make([][]any, 0, len(rows)), Lines: make([]int, 0, len(rows))}
	for r, cells := range rows {
		row := make([]any, len(cells))
		for c, cell := range cells {
			row[c] = cellValue(f, name, r, c, cell)
		}
		sheet.Rows = append(sheet.Rows, row)
		sheet.Lines = append(sheet.Lines, r+1)
	}
	return sheet, nil
}

// cellValue возвращает float64 для числовых ячеек (даты и время Excel хранит числами),
// строки оставляет как есть, чтобы не терять ведущие нули в идентификаторах.
func cellValue(f *excelize.File, sheet string, r, c int, raw string) any {
	if raw == "" {
		return raw
	}
	axis, err := excelize.CoordinatesToCellName(c+1, r+1)
	if err != nil {
		return raw
	}
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return raw
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// FindHeaderRow ищет первую строку, где одна из ячеек совпадает с маркером
// (без учета регистра и диакритики). -1 если не найдено.
func (s *Sheet) FindHeaderRow(markers ...string) int {
	want := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		want[normalize.Text(m)] = struct{}{}
	}
	for i, row := range s.Rows {
		if i >= headerScanLimit {
			break
		}
		for _, cell := range row {
			str, ok := cell.(string)
			if !ok {
				continue
			}
			if _, hit := want[normalize.Text(str)]; hit {
				return i
			}
		}
	}
	return -1
}

// Table строит таблицу, считая строку headerRow заголовком. Полностью пустые строки пропускаются.
func (s *Sheet) Table(headerRow int) *Table {
	t := &Table{}
	if headerRow < 0 || headerRow >= len(s.Rows) {
		return t
	}

	for _, cell := range s.Rows[headerRow] {
		t.Headers = append(t.Headers, strings.ToLower(strings.TrimSpace(fmt.Sprint(cell))))
	}

	for j := headerRow + 1; j < len(s.Rows); j++ {
		row := s.Rows[j]
		if isEmptyRow(row) {
			continue
		}
		rec := make(models.RawRecord, len(t.Headers))
		for i, h := range t.Headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = nil
			}
		}
		t.Records = append(t.Records, rec)
		t.Lines = append(t.Lines, s.line(j))
	}
	return t
}

// line номер строки файла; для листов, собранных вручную, - позиция в Rows
func (s *Sheet) line(i int) int {
	if i < len(s.Lines) {
		return s.Lines[i]
	}
	return i + 1
}

// Missing возвращает обязательные колонки, которых нет в заголовке
func (t *Table) Missing(required ...string) []string {
	have := make(map[string]struct{}, len(t.Headers))
	for _, h := range t.Headers {
		have[h] = struct{}{}
	}
	var missing []string
	for _, col := range required {
		if _, ok := have[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func isEmptyRow(row []any) bool {
	for _, cell := range row {
		switch v := cell.(type) {
		case nil:
		case string:
			if strings.TrimSpace(v) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}
