package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "Municipio;Produto;Valor de Venda;Data da Coleta;Bairro;Bandeira;CNPJ da Revenda\n"

func writeCSV(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(csvHeader+body), 0o644))
}

func TestSemesterFromFile(t *testing.T) {
	sem, err := SemesterFromFile("combustiveis_2023_s1 - Gasolina.csv")
	require.NoError(t, err)
	assert.Equal(t, "2023/S1", sem)

	sem, err = SemesterFromFile("data/combustiveis_2025_s2 - Gasolina.csv")
	require.NoError(t, err)
	assert.Equal(t, "2025/S2", sem)

	_, err = SemesterFromFile("gasolina.csv")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "combustiveis_2023_s1 - Gasolina.csv",
		"BELO HORIZONTE;GASOLINA;5,49;10/02/2023;CENTRO;IPIRANGA;111\n"+
			"BELO HORIZONTE;GASOLINA;5,59;11/02/2023;SAVASSI;SHELL;222\n"+
			"CONTAGEM;GASOLINA;5,10;11/02/2023;CENTRO;SHELL;333\n")
	writeCSV(t, dir, "combustiveis_2023_s2 - Gasolina.csv",
		"BELO HORIZONTE;GASOLINA;5,79;10/08/2023;CENTRO;IPIRANGA;111\n"+
			"BELO HORIZONTE;GASOLINA;;11/08/2023;CENTRO;SHELL;222\n")

	svc := NewService(dir, []string{
		"combustiveis_2023_s1 - Gasolina.csv",
		"combustiveis_2023_s2 - Gasolina.csv",
	})

	records, report, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// concatenation preserves file order
	assert.Equal(t, "2023/S1", records[0].Semester)
	assert.Equal(t, "2023/S1", records[1].Semester)
	assert.Equal(t, "2023/S2", records[2].Semester)
	assert.InDelta(t, 5.49, records[0].SaleValue, 1e-9)

	assert.Equal(t, 3, report.Accepted)
	assert.Equal(t, 1, report.Rejected[RejectOtherCity])
	assert.Equal(t, 1, report.Rejected[RejectEmptyValue])
	assert.Equal(t, 2, report.TotalRejected())
	require.Len(t, report.Files, 2)
	assert.Equal(t, 3, report.Files[0].Rows)
	assert.Equal(t, 2, report.Files[0].Accepted)
}

func TestLoadAllMissingFileFails(t *testing.T) {
	svc := NewService(t.TempDir(), []string{"combustiveis_2023_s1 - Gasolina.csv"})

	_, _, err := svc.LoadAll(context.Background())
	assert.Error(t, err)
}

func TestLoadAllEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "combustiveis_2023_s1 - Gasolina.csv",
		"CONTAGEM;GASOLINA;5,10;11/02/2023;CENTRO;SHELL;333\n")

	svc := NewService(dir, []string{"combustiveis_2023_s1 - Gasolina.csv"})

	_, report, err := svc.LoadAll(context.Background())
	assert.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Accepted)
	assert.Equal(t, 1, report.Rejected[RejectOtherCity])
}

func TestReadRowsCommaDelimiter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comma.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"\ufeffMunicipio,Produto,Valor de Venda\n"+
			"BELO HORIZONTE,GASOLINA,\"5,49\"\n"+
			",,\n"), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BELO HORIZONTE", rows[0]["Municipio"])
	assert.Equal(t, "5,49", rows[0]["Valor de Venda"])
}
