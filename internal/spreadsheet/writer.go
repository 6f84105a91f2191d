package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leads"

// Write encodes a single-sheet workbook with a header row followed by rows
func Write(w io.Writer, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, number int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, number)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", number, err)
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d: %w", number, err)
	}
	return nil
}
