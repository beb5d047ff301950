// Package geo maps Belo Horizonte neighborhoods to their administrative
// regions. The table is hand-curated configuration data; lookups expect the
// upper-cased, trimmed neighborhood names produced by the normalizer.
package geo

// RegionUnknown is returned for every neighborhood absent from the table,
// including the "N/A" placeholder.
const RegionUnknown = "Não Identificada"

// RegionOf returns the administrative region of a neighborhood. Total: it
// never fails, unmapped names get RegionUnknown.
func RegionOf(neighborhood string) string {
	if r, ok := neighborhoodRegion[neighborhood]; ok {
		return r
	}
	return RegionUnknown
}

var neighborhoodRegion = map[string]string{
	"ALTO BARROCA":           "Oeste",
	"ALTO DOS PINHEIROS":     "Noroeste",
	"ANCHIETA":               "Centro-Sul",
	"ANDYARA":                "Venda Nova",
	"BARREIRO":               "Barreiro",
	"BARRO PRETO":            "Centro-Sul",
	"BARROCA":                "Oeste",
	"BELVEDERE":              "Centro-Sul",
	"BETANIA":                "Oeste",
	"BOA VIAGEM":             "Centro-Sul",
	"BOA VISTA":              "Leste",
	"BONFIM":                 "Noroeste",
	"BRASIL INDUSTRIAL":      "Barreiro",
	"BURITIS":                "Oeste",
	"CACHOEIRINHA":           "Noroeste",
	"CAICARA":                "Noroeste",
	"CALAFATE":               "Oeste",
	"CARLOS PRATES":          "Noroeste",
	"CASTELO":                "Pampulha",
	"CENTRO":                 "Centro-Sul",
	"CIDADE JARDIM":          "Centro-Sul",
	"CIDADE NOVA":            "Nordeste",
	"CINQUENTENARIO":         "Oeste",
	"COLEGIO BATISTA":        "Leste",
	"CONCORDIA":              "Nordeste",
	"CONJUNTO CALIFÓRNIA":    "Noroeste",
	"CORACAO DE JESUS":       "Centro-Sul",
	"CORACAO EUCARISTICO":    "Noroeste",
	"CRUZEIRO":               "Centro-Sul",
	"DIAMANTE":               "Barreiro",
	"DOM BOSCO":              "Noroeste",
	"DOM CABRAL":             "Noroeste",
	"DONA CLARA":             "Pampulha",
	"ENGENHO NOGUEIRA":       "Pampulha",
	"ESTORIL":                "Oeste",
	"FLORESTA":               "Leste",
	"FLORAMAR":               "Norte",
	"FUNCIONARIOS":           "Centro-Sul",
	"GAMELEIRA":              "Oeste",
	"GLORIA":                 "Noroeste",
	"GRAJAU":                 "Oeste",
	"GUARANI":                "Norte",
	"GUTIERREZ":              "Oeste",
	"HAVAI":                  "Oeste",
	"HORTA":                  "Leste",
	"HORTA FLORESTAL":        "Leste",
	"INCONFIDENCIA":          "Noroeste",
	"IPIRANGA":               "Nordeste",
	"ITAPOA":                 "Pampulha",
	"JARAGUA":                "Pampulha",
	"JARDIM AMERICA":         "Oeste",
	"JARDIM MONTANHES":       "Noroeste",
	"LAGOA":                  "Venda Nova",
	"LAGOA DA PAMPULHA":      "Pampulha",
	"LAGOA SANTA":            "Venda Nova",
	"LOURDES":                "Centro-Sul",
	"LUXEMBURGO":             "Centro-Sul",
	"MADRE GERTRUDES":        "Oeste",
	"MANGABEIRAS":            "Centro-Sul",
	"MINAS BRASIL":           "Noroeste",
	"MINASLANDIA":            "Norte",
	"MONSENHOR MESSIAS":      "Noroeste",
	"NOVA BARROCA":           "Oeste",
	"NOVA CINTRA":            "Oeste",
	"NOVA FLORESTA":          "Nordeste",
	"NOVA GRANADA":           "Oeste",
	"NOVA SUICA":             "Oeste",
	"NOVO AARAO REIS":        "Norte",
	"NOVO GLORIA":            "Noroeste",
	"OURO PRETO":             "Pampulha",
	"PADRE EUSTAQUIO":        "Noroeste",
	"PALMARES":               "Nordeste",
	"PAMPULHA":               "Pampulha",
	"PARAISO":                "Leste",
	"PARQUE DAS MANGABEIRAS": "Centro-Sul",
	"PLANALTO":               "Norte",
	"POMPEIA":                "Leste",
	"PRADO":                  "Oeste",
	"PROVIDENCIA":            "Norte",
	"RENASCENCA":             "Nordeste",
	"RIACHO DAS PEDRAS":      "Barreiro",
	"SAGRADA FAMILIA":        "Leste",
	"SALGADO FILHO":          "Oeste",
	"SANTA AMELIA":           "Pampulha",
	"SANTA BRANCA":           "Pampulha",
	"SANTA CRUZ":             "Nordeste",
	"SANTA EFIGENIA":         "Leste",
	"SANTA INES":             "Leste",
	"SANTA LUCIA":            "Centro-Sul",
	"SANTA MONICA":           "Venda Nova",
	"SANTA TEREZA":           "Leste",
	"SANTA TEREZINHA":        "Pampulha",
	"SANTO AGOSTINHO":        "Centro-Sul",
	"SANTO ANDRE":            "Noroeste",
	"SANTO ANTONIO":          "Centro-Sul",
	"SAO BENTO":              "Centro-Sul",
	"SAO BERNARDO":           "Norte",
	"SAO CRISTOVAO":          "Nordeste",
	"SAO FRANCISCO":          "Pampulha",
	"SAO GABRIEL":            "Norte",
	"SAO GERALDO":            "Leste",
	"SAO JOAO BATISTA":       "Venda Nova",
	"SAO LUCAS":              "Centro-Sul",
	"SAO LUIZ":               "Pampulha",
	"SAO PEDRO":              "Centro-Sul",
	"SAVASSI":                "Centro-Sul",
	"SERRA":                  "Centro-Sul",
	"SERRANO":                "Pampulha",
	"SILVEIRA":               "Nordeste",
	"SION":                   "Centro-Sul",
	"UNIAO":                  "Nordeste",
	"UNIVERSITARIO":          "Pampulha",
	"VENDA NOVA":             "Venda Nova",
	"VILA CLORIS":            "Norte",
	"VILA DA SERRA":          "Centro-Sul",
	"VILA PARIS":             "Centro-Sul",
	"VILA TIRADENTES":        "Oeste",
}
