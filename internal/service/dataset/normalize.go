package dataset

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
	"github.com/gcouto/combustiveis-bh/internal/pkg/geo"
	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
)

// RawRow is one parsed CSV line keyed by the source header names.
type RawRow map[string]string

// RejectReason classifies why the normalizer dropped a row. The loader
// aggregates these into the LoadReport so data-quality problems stay
// observable instead of being silently swallowed.
type RejectReason string

const (
	RejectOtherCity    RejectReason = "other_city"
	RejectOtherProduct RejectReason = "other_product"
	RejectEmptyValue   RejectReason = "empty_value"
	RejectBadValue     RejectReason = "bad_value"
	RejectPanic        RejectReason = "row_panic"
)

// Normalized column names the domain-validation stage consumes. Everything
// else is carried through untouched in FuelRecord.Extra.
const (
	colMunicipality = "municipio"
	colProduct      = "produto"
	colSaleValue    = "valorDeVenda"
	colSaleDate     = "dataDaColeta"
	colNeighborhood = "bairro"
	colBrand        = "bandeira"
	colStationID    = "cnpjDaRevenda"
)

const saleDateLayout = "02/01/2006"

// renameKeys is the generic first stage: every header key is camel-cased so
// downstream code never depends on the survey's exact header spelling.
func renameKeys(row RawRow) RawRow {
	out := make(RawRow, len(row))
	for k, v := range row {
		out[camelKey(k)] = v
	}
	return out
}

// camelKey collapses " - " separators into spaces and converts the result to
// camelCase ("Valor de Venda" becomes "valorDeVenda").
func camelKey(key string) string {
	key = strings.ReplaceAll(key, " - ", " ")
	words := strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		if i == 0 {
			b.WriteString(w)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// normalizeRow converts one raw CSV row into a FuelRecord or rejects it with
// a reason. A panic while processing a row is contained to that row.
func normalizeRow(ctx context.Context, row RawRow, semester domain.Semester) (rec *domain.FuelRecord, reason RejectReason) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf(ctx, "linha descartada após pânico: %v", r)
			rec, reason = nil, RejectPanic
		}
	}()

	clean := renameKeys(row)

	if clean[colMunicipality] != constants.TargetCity {
		return nil, RejectOtherCity
	}
	if clean[colProduct] != constants.TargetFuel {
		return nil, RejectOtherProduct
	}

	valStr := strings.TrimSpace(clean[colSaleValue])
	if valStr == "" {
		return nil, RejectEmptyValue
	}
	// the survey uses comma as the decimal separator
	val, err := strconv.ParseFloat(strings.ReplaceAll(valStr, ",", "."), 64)
	if err != nil {
		return nil, RejectBadValue
	}

	neighborhood := strings.ToUpper(strings.TrimSpace(clean[colNeighborhood]))
	if neighborhood == "" {
		neighborhood = "N/A"
	}

	// a malformed date only nils the field, the row survives
	var saleDate *time.Time
	if t, dateErr := time.Parse(saleDateLayout, strings.TrimSpace(clean[colSaleDate])); dateErr == nil {
		saleDate = &t
	}

	extra := make(map[string]string, len(clean))
	for k, v := range clean {
		switch k {
		case colMunicipality, colProduct, colSaleValue, colSaleDate, colNeighborhood, colBrand, colStationID:
		default:
			extra[k] = v
		}
	}

	return &domain.FuelRecord{
		SaleDate:     saleDate,
		SaleValue:    val,
		Product:      clean[colProduct],
		Brand:        strings.TrimSpace(clean[colBrand]),
		StationID:    strings.TrimSpace(clean[colStationID]),
		Neighborhood: neighborhood,
		Region:       geo.RegionOf(neighborhood),
		Semester:     semester,
		Extra:        extra,
	}, ""
}
