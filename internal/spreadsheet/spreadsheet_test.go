package spreadsheet

import (
	"testing"
	"time"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRead_CSV(t *testing.T) {
	content := []byte("\xEF\xBB\xBFFecha, Hora ,DELITO,Latitud,Longitud,Barrio\n" +
		"2024-01-15,22:30,H.PERSONA,3.26,-76.53,Centro\n" +
		",,,,,\n" +
		"2024-01-16,08:00,HOMICIDIO,3.27,-76.54\n")

	table, err := Read("carga.CSV", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"fecha", "hora", "delito", "latitud", "longitud", "barrio"}, table.Headers)
	require.Len(t, table.Records, 2) // пустая строка пропущена
	assert.Equal(t, "H.PERSONA", table.Records[0]["delito"])
	assert.Equal(t, "Centro", table.Records[0]["barrio"])
	assert.Nil(t, table.Records[1]["barrio"])
	assert.Empty(t, table.Missing("fecha", "hora", "delito", "latitud", "longitud"))
}

func TestRead_LinesKeepFilePositions(t *testing.T) {
	content := []byte("fecha,delito\n2024-01-15,HURTO\n\n,,\n2024-01-16,HOMICIDIO\n")

	table, err := Read("carga.csv", content)
	require.NoError(t, err)

	require.Len(t, table.Records, 2)
	assert.Equal(t, []int{2, 5}, table.Lines)
}

func TestRead_XLSXLinesKeepBlankRows(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"Fecha", "Delito"},
		{"2024-01-15", "HURTO"},
		{},
		{"2024-01-16", "HOMICIDIO"},
	})

	table, err := Read("incidentes.xlsx", content)
	require.NoError(t, err)

	require.Len(t, table.Records, 2)
	assert.Equal(t, []int{2, 4}, table.Lines)
}

func TestRead_CSVSemicolon(t *testing.T) {
	content := []byte("fecha;hora;delito;latitud;longitud\n15/01/2024;22:30;HURTO;3,26;-76,53\n")

	table, err := Read("carga.csv", content)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "3,26", table.Records[0]["latitud"])
}

func TestRead_XLSX(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"Fecha", "Hora", "Delito", "Latitud", "Longitud", "Id_Externo"},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "22:30", "H.PERSONA", 3.26, -76.53, "00123"},
	})

	table, err := Read("incidentes.xlsx", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"fecha", "hora", "delito", "latitud", "longitud", "id_externo"}, table.Headers)
	require.Len(t, table.Records, 1)
	rec := table.Records[0]
	assert.Equal(t, float64(45306), rec["fecha"])
	assert.Equal(t, "22:30", rec["hora"])
	assert.Equal(t, 3.26, rec["latitud"])
	assert.Equal(t, "00123", rec["id_externo"])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("report.pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}

func TestLoad_LegacyBinaryXLS(t *testing.T) {
	_, err := Load("old.xls", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}

func TestTable_Missing(t *testing.T) {
	table, err := Read("carga.csv", []byte("fecha,delito\n2024-01-15,HURTO\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"hora", "latitud", "longitud"}, table.Missing("fecha", "hora", "delito", "latitud", "longitud"))
}

func TestSheet_FindHeaderRow(t *testing.T) {
	content := buildWorkbook(t, [][]any{
		{"MINISTERIO DE DEFENSA NACIONAL"},
		{"Fuente: SIEDCO"},
		{"DEPARTAMENTO", "Municipio", "FECHA HECHO", "CANTIDAD"},
		{"VALLE", "JAMUNDÍ", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2},
	})

	sheet, err := Load("homicidios.xlsx", content)
	require.NoError(t, err)

	idx := sheet.FindHeaderRow("MUNICIPIO")
	require.Equal(t, 2, idx)

	table := sheet.Table(idx)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "JAMUNDÍ", table.Records[0]["municipio"])
	assert.Equal(t, float64(2), table.Records[0]["cantidad"])
	assert.Equal(t, -1, sheet.FindHeaderRow("NO EXISTE"))
}
