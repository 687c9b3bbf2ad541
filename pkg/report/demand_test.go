package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmlink/pkg/community/service"
	"farmlink/seed"
)

func TestDemandWorkbook(t *testing.T) {
	lines := []service.DemandLine{
		{Crop: "Tomato", Quantity: "8 kg"},
		{Crop: "Onion", Quantity: "4 kg"},
	}
	f, err := DemandWorkbook(seed.CommunityProfile(), lines)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(demandSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Village B Farmers Collective", got)

	header, _ := f.GetCellValue(demandSheet, "A4")
	assert.Equal(t, "Crop", header)

	crop, _ := f.GetCellValue(demandSheet, "A5")
	qty, _ := f.GetCellValue(demandSheet, "B5")
	assert.Equal(t, "Tomato", crop)
	assert.Equal(t, "8 kg", qty)

	crop, _ = f.GetCellValue(demandSheet, "A6")
	assert.Equal(t, "Onion", crop)
}

func TestDemandWorkbookEmpty(t *testing.T) {
	f, err := DemandWorkbook(seed.CommunityProfile(), nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(demandSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4) // title, date, blank, header
}
