package source

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/crime_observatory/internal/fieldparse"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/normalize"
	"github.com/shenikar/crime_observatory/internal/spreadsheet"
)

var (
	ErrNoHeader = errors.New("header row not found")

	yearPattern = regexp.MustCompile(`20\d{2}`)

	dateColumns     = []string{"FECHA HECHO", "FECHA"}
	quantityColumns = []string{"TOTAL", "CANTIDAD"}
	modalityColumns = []string{"ARMAS MEDIOS", "ARMA MEDIO", "MODALIDAD"}
)

// Result разобранные строки файла
type Result struct {
	Records []models.NationalCrimeStat
	// Skipped строки без муниципалитета, итоговые или с нечитаемой датой
	Skipped int
}

// Processor разбирает таблицу Минобороны. Заголовок ищется по колонке MUNICIPIO,
// вид преступления выводится из имени файла той же таблицей правил, что и для инцидентов.
type Processor struct {
	now func() time.Time
}

func NewProcessor() *Processor {
	return &Processor{now: time.Now}
}

// Process разбирает содержимое файла filename
func (p *Processor) Process(filename string, content []byte) (*Result, error) {
	loadName := filename
	if filepath.Ext(loadName) == "" {
		loadName += ".xlsx"
	}
	sheet, err := spreadsheet.Load(loadName, content)
	if err != nil {
		return nil, err
	}

	headerRow := sheet.FindHeaderRow("MUNICIPIO")
	if headerRow < 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoHeader)
	}
	table := sheet.Table(headerRow)
	cols := columnIndex(table.Headers)

	municipalityCol, okM := cols["MUNICIPIO"]
	departmentCol, okD := cols["DEPARTAMENTO"]
	if !okM || !okD {
		return nil, fmt.Errorf("%s: %w: MUNICIPIO, DEPARTAMENTO", filename, models.ErrMissingColumns)
	}
	dateCol, hasDate := pick(cols, dateColumns)
	quantityCol, hasQuantity := pick(cols, quantityColumns)
	modalityCol, hasModality := pick(cols, modalityColumns)

	crimeType := CrimeType(filename)
	fallbackDate := time.Date(p.fileYear(filename), time.January, 1, 0, 0, 0, 0, time.UTC)
	ingestedAt := p.now().UTC()

	res := &Result{}
	for _, rec := range table.Records {
		municipality := fieldparse.Text(rec.Get(municipalityCol), "")
		normMunicipality := normalize.Text(municipality)
		if normMunicipality == "" || normMunicipality == "TOTAL" {
			res.Skipped++
			continue
		}

		date := fallbackDate
		if hasDate {
			// нулевое "сейчас" отличает нечитаемую дату от реальной
			date = fieldparse.Date(rec.Get(dateCol), time.Time{})
			if date.IsZero() {
				res.Skipped++
				continue
			}
		}

		quantity := 1
		if hasQuantity {
			quantity = toInt(rec.Get(quantityCol))
		}
		modality := ""
		if hasModality {
			modality = fieldparse.Text(rec.Get(modalityCol), "")
		}
		department := fieldparse.Text(rec.Get(departmentCol), "")

		stat := models.NationalCrimeStat{
			Department:             department,
			Municipality:           municipality,
			NormalizedMunicipality: normMunicipality,
			OccurrenceDate:         date,
			Year:                   date.Year(),
			Month:                  int(date.Month()),
			CrimeType:              crimeType,
			Modality:               modality,
			Quantity:               quantity,
			SourceFile:             filename,
			IngestedAt:             ingestedAt,
		}
		stat.DedupKey = DedupKey(stat)
		res.Records = append(res.Records, stat)
	}
	return res, nil
}

// CrimeType вид преступления по имени файла
func CrimeType(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return normalize.Category(base)
}

// DedupKey sha256 от нормализованных полей строки; повторная загрузка того же файла дает те же ключи
func DedupKey(s models.NationalCrimeStat) string {
	parts := []string{
		normalize.Text(s.Department),
		s.NormalizedMunicipality,
		s.OccurrenceDate.Format(time.DateOnly),
		s.CrimeType,
		normalize.Text(s.Modality),
		strconv.Itoa(s.Quantity),
		s.SourceFile,
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func (p *Processor) fileYear(filename string) int {
	if m := yearPattern.FindString(filename); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			return y
		}
	}
	return p.now().Year()
}

// columnIndex нормализованное имя колонки -> ключ записи
func columnIndex(headers []string) map[string]string {
	out := make(map[string]string, len(headers))
	for _, h := range headers {
		if h == "" {
			continue
		}
		key := normalize.Text(h)
		if _, dup := out[key]; !dup {
			out[key] = h
		}
	}
	return out
}

func pick(cols map[string]string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if key, ok := cols[c]; ok {
			return key, true
		}
	}
	return "", false
}

func toInt(v any) int {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0
		}
		return int(math.Round(val))
	case int:
		return val
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(val, ".", ""))
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			return int(math.Round(f))
		}
	}
	return 0
}
