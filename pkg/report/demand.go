// Package report renders downloadable workbooks for the community head.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"farmlink/entities"
	"farmlink/pkg/community/service"
)

const demandSheet = "Demand Summary"

// DemandWorkbook builds the pending-demand spreadsheet: one row per crop with
// its aggregated quantity, headed by the community name and export date.
func DemandWorkbook(profile entities.CommunityProfile, lines []service.DemandLine) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(demandSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	set := func(cell string, v any) error {
		return f.SetCellValue(demandSheet, cell, v)
	}
	if err := set("A1", profile.Name); err != nil {
		return nil, err
	}
	if err := set("A2", "Exported "+time.Now().Format(entities.DisplayDate)); err != nil {
		return nil, err
	}
	if err := set("A4", "Crop"); err != nil {
		return nil, err
	}
	if err := set("B4", "Pending Quantity"); err != nil {
		return nil, err
	}

	row := 5
	for _, line := range lines {
		if err := set(fmt.Sprintf("A%d", row), line.Crop); err != nil {
			return nil, err
		}
		if err := set(fmt.Sprintf("B%d", row), line.Quantity); err != nil {
			return nil, err
		}
		row++
	}
	return f, nil
}
