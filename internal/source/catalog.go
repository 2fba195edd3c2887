// Package source скачивает и разбирает национальную статистику преступности (таблицы Минобороны).
package source

import (
	"net/url"
	"path"
	"strings"
)

// File файл статистики с адресом загрузки
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

const publishedAssets = "https://www.mindefensa.gov.co/sites/web/content/published/api/v1.1/assets/"

// DefaultFiles опубликованные таблицы по видам преступлений
var DefaultFiles = []File{
	{Name: "HOMICIDIO INTENCIONAL.xlsx", URL: publishedAssets + "CONTD2155DC1726D4A21B0B8267F91325AB5/native/HOMICIDIO%20INTENCIONAL.xlsx"},
	{Name: "HOMICIDIO ACCIDENTES DE TRANSITO.xlsx", URL: publishedAssets + "CONTD456E9301E634D93ACBCF54B70942138/native/HOMICIDIO%20ACCIDENTES%20DE%20TR%C3%81NSITO.xlsx"},
	{Name: "LESIONES COMUNES.xlsx", URL: publishedAssets + "CONT53C09FE87BE14ACE904069DB6848C811/native/LESIONES%20COMUNES.xlsx"},
	{Name: "HURTO PERSONAS.xlsx", URL: publishedAssets + "CONTEBDF030F568F49A4A73563ADB8DBA8AB/native/HURTO%20PERSONAS.xlsx"},
	{Name: "HURTO A COMERCIO.xlsx", URL: publishedAssets + "CONT1F6023E051B746DAA1F3E4075209A882/native/HURTO%20A%20COMERCIO.xlsx"},
	{Name: "HURTO A RESIDENCIAS.xlsx", URL: publishedAssets + "CONT278B01DD860B435DB5ECC2AB6ABC3EDB/native/HURTO%20A%20RESIDENCIAS.xlsx"},
	{Name: "EXTORSION.xlsx", URL: publishedAssets + "CONT7154F2FB1B264CDCAD9A48A3BEE58A77/native/EXTORSI%C3%93N.xlsx"},
	{Name: "SECUESTRO.xlsx", URL: publishedAssets + "CONTDC54E523A2BA492AA1C57065A0D3C6D8/native/SECUESTRO.xlsx"},
	{Name: "DELITOS SEXUALES.xlsx", URL: publishedAssets + "CONTEBEA4A10A270484195D139CF815742F3/native/DELITOS%20SEXUALES.xlsx"},
	{Name: "VIOLENCIA INTRAFAMILIAR.xlsx", URL: publishedAssets + "CONT93A3E06E0C134EF197783385D56AABBF/native/VIOLENCIA%20INTRAFAMILIAR.xlsx"},
	{Name: "MASACRES.xlsx", URL: publishedAssets + "CONT7B88CCACEDD441E3984D326E3696DB5E/native/MASACRES.xlsx"},
}

// Catalog список файлов из настроек; пустой список дает DefaultFiles
func Catalog(urls []string) []File {
	if len(urls) == 0 {
		out := make([]File, len(DefaultFiles))
		copy(out, DefaultFiles)
		return out
	}
	files := make([]File, 0, len(urls))
	for _, raw := range urls {
		files = append(files, File{Name: FileName(raw), URL: raw})
	}
	return files
}

// FileName имя файла из последнего сегмента пути URL
func FileName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	name := path.Base(u.Path)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if name == "." || name == "/" || strings.TrimSpace(name) == "" {
		return u.Host
	}
	return name
}
