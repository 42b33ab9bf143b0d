package infra

// pdf.go — Platform report export using go-pdf/fpdf.
// Renders the global operations report as a single A4 document:
//   - Title header with generation timestamp
//   - Sales summary block (revenue, orders, growth)
//   - Top vendors table
//   - Inventory health block
//   - Low stock table
//
// The output file is saved to storagePath/report_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/raghav2811/VendorConnect/internal/dto"
)

// GenerateReportPDF writes the global report to disk and returns the
// absolute path of the generated file. storagePath is created if needed.
func GenerateReportPDF(report *dto.GlobalReportResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%s.pdf", time.Now().UTC().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "VendorConnect Operations Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Generated "+report.GeneratedAt, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Sales summary ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Sales", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	half := contentW / 2
	rows := []struct{ label, value string }{
		{"Total revenue", "$" + report.Sales.TotalRevenue.StringFixed(2)},
		{"This month revenue", "$" + report.Sales.ThisMonthRevenue.StringFixed(2)},
		{"Revenue growth", fmt.Sprintf("%.1f%%", report.Sales.RevenueGrowthPct)},
		{"Total orders", fmt.Sprintf("%d", report.Sales.TotalOrders)},
		{"This month orders", fmt.Sprintf("%d", report.Sales.ThisMonthOrders)},
		{"Average order value", "$" + report.Sales.AverageOrderValue.StringFixed(2)},
	}
	for _, r := range rows {
		pdf.CellFormat(half, 5, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, r.value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Top vendors ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Top Vendors", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	col1 := contentW * 0.50 // vendor name
	col2 := contentW * 0.20 // orders
	col3 := contentW * 0.30 // revenue

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Vendor", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Orders", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Revenue", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, v := range report.TopVendors {
		name := v.Name
		if len(name) > 40 {
			name = name[:39] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("%d", v.Orders), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+v.Revenue.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if len(report.TopVendors) == 0 {
		pdf.CellFormat(contentW, 5, "No vendor activity in this period", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Inventory health ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Inventory", "B", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 9)
	inv := []struct{ label, value string }{
		{"Stock items", fmt.Sprintf("%d", report.Inventory.TotalItems)},
		{"Total stock value", "$" + report.Inventory.TotalValue.StringFixed(2)},
		{"Low stock items", fmt.Sprintf("%d", report.Inventory.LowStockCount)},
		{"Out of stock items", fmt.Sprintf("%d", report.Inventory.CriticalCount)},
		{"Stock efficiency", fmt.Sprintf("%.1f%%", report.Inventory.EfficiencyPct)},
	}
	for _, r := range inv {
		pdf.CellFormat(half, 5, r.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5, r.value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Low stock detail ──────────────────────────────────────────────────────
	if len(report.LowStock) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Items Needing Restock", "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "Item", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "Current", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "Reorder level", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, item := range report.LowStock {
			name := item.ItemName
			if len(name) > 40 {
				name = name[:39] + "…"
			}
			pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("%d", item.CurrentStock), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, fmt.Sprintf("%d", item.ReorderLevel), "", 1, "R", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
