package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

func TestGenerateRevenueWorkbook(t *testing.T) {
	paidAt := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
	report := model.RevenueReport{
		From:         time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		TotalRevenue: 750,
		PaymentCount: 3,
		Average:      250,
		Monthly: []model.MonthlyRevenue{
			{Month: "2025-01", Total: 250, Count: 1, Average: 250},
			{Month: "2025-03", Total: 500, Count: 2, Average: 250},
		},
		Payments: []model.Payment{
			{CustomerName: "Tariro Moyo", Amount: 250, Method: "ecocash", Reference: "EC-1001", PaidAt: paidAt},
		},
	}

	content, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	total, err := file.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "750", total)

	month, err := file.GetCellValue("Summary", "A9")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", month)

	customer, err := file.GetCellValue("Payments", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Tariro Moyo", customer)

	amount, err := file.GetCellValue("Payments", "C2")
	require.NoError(t, err)
	assert.Equal(t, "250", amount)
}
