package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackCategory категория для меток, не подошедших ни под одно правило
const FallbackCategory = "DELITO GENERAL"

type rule struct {
	patterns []string
	label    string
}

// rules проверяются по порядку: специфичные шаблоны раньше общих.
// Порядок - часть контракта, см. тесты.
var rules = []rule{
	{[]string{"HOMICIDIO ACCIDENTE", "HOMICIDIO EN ACCIDENTE", "HOMICIDIO (TRANSITO)"}, "HOMICIDIO (TRANSITO)"},
	{[]string{"LESIONES ACCIDENTE", "LESIONES EN ACCIDENTE", "LESIONES (TRANSITO)"}, "LESIONES (TRANSITO)"},
	{[]string{"H.PERSONA", "HURTO PERSONA", "HURTO A PERSONA"}, "HURTO A PERSONAS"},
	{[]string{"H.COMERCIO", "HURTO COMERCIO", "HURTO A COMERCIO"}, "HURTO A COMERCIO"},
	{[]string{"H.RESIDENCIA", "HURTO RESIDENCIA", "HURTO A RESIDENCIA"}, "HURTO A RESIDENCIAS"},
	{[]string{"H.MOTO", "HURTO MOTO", "HURTO DE MOTO", "HURTO A MOTO"}, "HURTO A MOTOCICLETAS"},
	{[]string{"H.AUTOMO", "HURTO AUTOMO", "HURTO A AUTOMO", "HURTO DE VEHICULO", "HURTO VEHICULO"}, "HURTO A AUTOMOTORES"},
	{[]string{"L.PERSONALES", "LESIONES"}, "LESIONES PERSONALES"},
	{[]string{"MASACRE"}, "MASACRES"},
	{[]string{"HOMICI"}, "HOMICIDIO"},
	{[]string{"SEXUAL"}, "DELITOS SEXUALES"},
	{[]string{"INTRAFAMILIAR", "VIOLENCIA", "VIF"}, "VIOLENCIA INTRAFAMILIAR"},
	{[]string{"EXTORSION"}, "EXTORSION"},
	{[]string{"SECUESTRO"}, "SECUESTRO"},
	{[]string{"TERRORISMO"}, "TERRORISMO"},
	{[]string{"INFORMATICO"}, "DELITOS INFORMATICOS"},
	{[]string{"MEDIO AMBIENTE", "AMBIENTAL"}, "DELITOS AMBIENTALES"},
	{[]string{"HURTO"}, "HURTO (OTROS)"},
}

// Category приводит произвольную метку типа преступления к канонической категории.
// Никогда не возвращает пустую строку.
func Category(raw string) string {
	key := prepare(raw)
	if key == "" {
		return FallbackCategory
	}
	for _, r := range rules {
		for _, p := range r.patterns {
			if strings.Contains(key, p) {
				return r.label
			}
		}
	}
	return FallbackCategory
}

// Labels возвращает все канонические категории в порядке правил
func Labels() []string {
	labels := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		labels = append(labels, r.label)
	}
	return append(labels, FallbackCategory)
}

// prepare убирает диакритику, переводит в верхний регистр и склеивает "H. PERSONAS" в "H.PERSONAS"
func prepare(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(stripDiacritics(raw)))
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, ". ", ".")
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsCrime признак "преступление" для канонической категории.
// Таблица правил выдает только уголовные категории, включая запасную.
func IsCrime(label string) bool {
	return strings.TrimSpace(label) != ""
}
