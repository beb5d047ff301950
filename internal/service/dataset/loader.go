// Package dataset loads the semester CSV files and consolidates them into
// the canonical FuelRecord dataset. Transport failures are fatal for the
// whole load; row-level data-quality failures only drop the row.
package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gcouto/combustiveis-bh/internal/domain"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
)

type Service struct {
	dir   string
	files []string
}

func NewService(dir string, files []string) *Service {
	return &Service{dir: dir, files: files}
}

var semesterPattern = regexp.MustCompile(`(\d{4})_s([12])`)

// SemesterFromFile derives the semester tag from a source file name
// ("combustiveis_2023_s1 - Gasolina.csv" becomes "2023/S1").
func SemesterFromFile(name string) (domain.Semester, error) {
	m := semesterPattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", fmt.Errorf("arquivo %q não carrega o padrão de semestre yyyy_s1/yyyy_s2", name)
	}
	return fmt.Sprintf("%s/S%s", m[1], m[2]), nil
}

// LoadAll reads every configured file concurrently, normalizes the rows and
// concatenates the survivors preserving file order. Any transport-level
// failure aborts the whole load.
func (s *Service) LoadAll(ctx context.Context) ([]*domain.FuelRecord, *LoadReport, error) {
	semesters := make([]domain.Semester, len(s.files))
	for i, f := range s.files {
		sem, err := SemesterFromFile(f)
		if err != nil {
			return nil, nil, fmt.Errorf("SemesterFromFile: %w", err)
		}
		semesters[i] = sem
	}

	perFile := make([][]*domain.FuelRecord, len(s.files))
	fileReports := make([]FileReport, len(s.files))
	fileRejects := make([]map[RejectReason]int, len(s.files))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, f := range s.files {
		i, f := i, f
		eg.Go(func() error {
			rows, err := readRows(filepath.Join(s.dir, f))
			if err != nil {
				return fmt.Errorf("readRows %s: %w", f, err)
			}
			if len(rows) == 0 {
				logger.Warnf(egCtx, "nenhuma linha retornada para o arquivo %s", f)
			}

			records := make([]*domain.FuelRecord, 0, len(rows))
			rejects := make(map[RejectReason]int)
			for _, row := range rows {
				rec, reason := normalizeRow(egCtx, row, semesters[i])
				if rec == nil {
					rejects[reason]++
					continue
				}
				records = append(records, rec)
			}

			perFile[i] = records
			fileRejects[i] = rejects
			fileReports[i] = FileReport{File: f, Semester: semesters[i], Rows: len(rows), Accepted: len(records)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("carga abortada: %w", err)
	}

	report := &LoadReport{Rejected: make(map[RejectReason]int)}
	var all []*domain.FuelRecord
	for i := range s.files {
		all = append(all, perFile[i]...)
		report.Files = append(report.Files, fileReports[i])
		report.Accepted += fileReports[i].Accepted
		for reason, n := range fileRejects[i] {
			report.Rejected[reason] += n
		}
	}

	if len(all) == 0 {
		return nil, report, constants.ErrEmptyDataset
	}
	return all, report, nil
}

// readRows parses one CSV file into header-keyed rows, skipping fully empty
// lines. The delimiter is sniffed from the first line.
func readRows(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	r := csv.NewReader(br)
	r.Comma = detectDelimiter(br)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []RawRow
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read: %w", err)
		}

		empty := true
		row := make(RawRow, len(header))
		for j, h := range header {
			if j >= len(fields) {
				break
			}
			row[h] = fields[j]
			if strings.TrimSpace(fields[j]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// detectDelimiter sniffs the first line for the survey's separator. Exported
// ANP sheets show up both comma and semicolon separated.
func detectDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
