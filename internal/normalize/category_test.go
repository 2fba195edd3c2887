package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_KnownLabels(t *testing.T) {
	cases := map[string]string{
		"H.PERSONA":                        "HURTO A PERSONAS",
		"h. personas":                      "HURTO A PERSONAS",
		"Hurto a personas":                 "HURTO A PERSONAS",
		"H.COMERCIO raw text":              "HURTO A COMERCIO",
		"H.RESIDENCIA":                     "HURTO A RESIDENCIAS",
		"H.MOTOS":                          "HURTO A MOTOCICLETAS",
		"H.AUTOMOTORES":                    "HURTO A AUTOMOTORES",
		"HURTO DE VEHÍCULOS":               "HURTO A AUTOMOTORES",
		"L.PERSONALES":                     "LESIONES PERSONALES",
		"HOMICIDIO":                        "HOMICIDIO",
		"homicidio intencional":            "HOMICIDIO",
		"VIF":                              "VIOLENCIA INTRAFAMILIAR",
		"EXTORSIÓN":                        "EXTORSION",
		"DELITOS INFORMÁTICOS":             "DELITOS INFORMATICOS",
		"DELITOS CONTRA EL MEDIO AMBIENTE": "DELITOS AMBIENTALES",
		"MASACRES":                         "MASACRES",
	}
	for raw, want := range cases {
		assert.Equal(t, want, Category(raw), "raw=%q", raw)
	}
}

func TestCategory_SpecificBeforeGeneric(t *testing.T) {
	// Все эти метки содержат "HURTO", но не должны попасть в общий бакет
	assert.Equal(t, "HURTO A RESIDENCIAS", Category("HURTO A RESIDENCIAS"))
	assert.Equal(t, "HURTO A COMERCIO", Category("HURTO COMERCIO"))
	assert.Equal(t, "HURTO (OTROS)", Category("HURTO"))

	// Содержат "HOMICI"/"LESIONES", но есть более узкое правило
	assert.Equal(t, "HOMICIDIO (TRANSITO)", Category("HOMICIDIO ACCIDENTES DE TRÁNSITO"))
	assert.Equal(t, "LESIONES (TRANSITO)", Category("LESIONES ACCIDENTES DE TRANSITO"))

	assert.Equal(t, "DELITOS SEXUALES", Category("VIOLENCIA SEXUAL"))
	assert.Equal(t, "VIOLENCIA INTRAFAMILIAR", Category("VIOLENCIA"))
}

func TestCategory_SexualBeforeDomesticViolence(t *testing.T) {
	// SEXUAL проверяется раньше правила с голым VIOLENCIA
	assert.Equal(t, "DELITOS SEXUALES", Category("violencia sexual intrafamiliar"))
	assert.Equal(t, "VIOLENCIA INTRAFAMILIAR", Category("Violencia Intrafamiliar"))
	assert.Equal(t, "VIOLENCIA INTRAFAMILIAR", Category("VIF"))
	// любая метка с VIOLENCIA без SEXUAL уходит в VIOLENCIA INTRAFAMILIAR
	assert.Equal(t, "VIOLENCIA INTRAFAMILIAR", Category("violencia contra servidor publico"))
}

func TestCategory_Fallback(t *testing.T) {
	for _, raw := range []string{"", "   ", "undefined", "riña", "???"} {
		got := Category(raw)
		assert.Equal(t, FallbackCategory, got, "raw=%q", raw)
		assert.NotEmpty(t, got)
	}
}

func TestLabels_EndWithFallback(t *testing.T) {
	labels := Labels()
	assert.Equal(t, FallbackCategory, labels[len(labels)-1])
	for _, l := range labels {
		assert.Equal(t, l, Category(l), "canonical label must map onto itself")
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "BOGOTA", Text("BOGOTÁ, D.C."))
	assert.Equal(t, "JAMUNDI", Text(" Jamundí "))
	assert.Equal(t, "SAN JOSE DE CUCUTA", Text("San José  de Cúcuta"))
}
