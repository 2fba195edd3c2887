package normalize

import "strings"

// Text нормализует название населенного пункта: без тильд, в верхнем регистре, без "D.C." и точек.
// "BOGOTÁ, D.C." -> "BOGOTA"
func Text(s string) string {
	s = strings.ToUpper(strings.TrimSpace(stripDiacritics(s)))
	s = strings.ReplaceAll(s, ", D.C.", "")
	s = strings.ReplaceAll(s, " D.C.", "")
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}
