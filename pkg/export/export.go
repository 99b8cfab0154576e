// Package export renders report tables as CSV files or Excel workbooks.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Table is one named grid of string cells
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteCSV writes the header followed by every row
func WriteCSV(w io.Writer, table Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// WriteXLSX writes a workbook with one sheet per table, in order
func WriteXLSX(w io.Writer, tables ...Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, table := range tables {
		var (
			idx int
			err error
		)
		if i == 0 {
			if err = f.SetSheetName(defaultSheet, table.Name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", table.Name, err)
			}
			idx, err = f.GetSheetIndex(table.Name)
		} else {
			idx, err = f.NewSheet(table.Name)
		}
		if err != nil {
			return fmt.Errorf("create sheet %q: %w", table.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}

		if err := setRow(f, table.Name, 1, table.Header); err != nil {
			return err
		}
		for r, row := range table.Rows {
			if err := setRow(f, table.Name, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d of %q: %w", row, sheet, err)
	}
	return nil
}
