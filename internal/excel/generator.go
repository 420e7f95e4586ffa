package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Talent5/zimscholar-projects-sub000/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the revenue workbook: a summary sheet with the monthly
// roll-up and a detail sheet listing every payment in the period.
func (g *Generator) Generate(report model.RevenueReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	detailSheet := "Payments"
	file.NewSheet(detailSheet)
	if err := g.writeDetail(file, detailSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.RevenueReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", formatDate(report.From))
	set("A2", "Period end")
	set("B2", formatDate(report.To))
	set("A3", "Total revenue")
	set("B3", report.TotalRevenue)
	set("A4", "Payments")
	set("B4", report.PaymentCount)
	set("A5", "Average payment")
	set("B5", report.Average)

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Month")
	set(fmt.Sprintf("B%d", tableRow), "Revenue")
	set(fmt.Sprintf("C%d", tableRow), "Payments")
	set(fmt.Sprintf("D%d", tableRow), "Average")

	for i, month := range report.Monthly {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), month.Month)
		set(fmt.Sprintf("B%d", row), month.Total)
		set(fmt.Sprintf("C%d", row), month.Count)
		set(fmt.Sprintf("D%d", row), month.Average)
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "D", 14)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, report model.RevenueReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Paid at", "Customer", "Amount", "Method", "Reference", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, payment := range report.Payments {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(payment.PaidAt))
		set(fmt.Sprintf("B%d", row), payment.CustomerName)
		set(fmt.Sprintf("C%d", row), payment.Amount)
		set(fmt.Sprintf("D%d", row), payment.Method)
		set(fmt.Sprintf("E%d", row), payment.Reference)
		set(fmt.Sprintf("F%d", row), payment.Notes)
	}

	_ = file.SetColWidth(sheet, "A", "B", 22)
	_ = file.SetColWidth(sheet, "C", "E", 14)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
