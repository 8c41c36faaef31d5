package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"esaj-lookup/internal/record"
)

const (
	SheetResults      = "Resultados"
	SheetErrors       = "Erros ou não processados"
	SheetInconclusive = "Inconclusivos"
)

// Excel renders the batch as a three-sheet workbook.
func Excel(b record.Batch) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetResults); err != nil {
		return nil, fmt.Errorf("rename results sheet: %w", err)
	}
	for _, name := range []string{SheetErrors, SheetInconclusive} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeSheet(f, SheetResults, ResultColumns, resultCells(b)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetErrors, ErrorColumns, errorCells(b)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetInconclusive, InconclusiveColumns, inconclusiveCells(b)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]string) error {
	if err := setRow(f, sheet, 1, columns); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func resultCells(b record.Batch) [][]string {
	rows := make([][]string, 0, len(b.Results))
	for _, r := range b.Results {
		rows = append(rows, resultValues(r))
	}
	return rows
}

func errorCells(b record.Batch) [][]string {
	rows := make([][]string, 0, len(b.Errors))
	for _, e := range b.Errors {
		rows = append(rows, []string{e.Number, e.Reason})
	}
	return rows
}

func inconclusiveCells(b record.Batch) [][]string {
	rows := make([][]string, 0, len(b.Inconclusive))
	for _, e := range b.Inconclusive {
		rows = append(rows, []string{e.Number, e.Note})
	}
	return rows
}
