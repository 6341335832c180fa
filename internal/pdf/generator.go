package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rental-contracts/internal/model"
)

// Generator renders a rental contract as a single A4 document using the
// core Helvetica font, with UTF-8 text translated to cp1252.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(doc model.ContractDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Rental contract", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	contract := doc.Contract

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr("Vehicle rental contract"), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("No. %s, issued %s", contract.ID, formatDate(doc.GeneratedAt))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section(pdf, g.fontName, tr("Driver"))
	if contract.Driver != nil {
		lines(pdf, tr,
			contract.Driver.FullName(),
			fmt.Sprintf("Document: %s", safeValue(contract.Driver.DocumentNumber)),
			fmt.Sprintf("Phone: %s", safeValue(contract.Driver.Phone)),
			fmt.Sprintf("Email: %s", safeValue(contract.Driver.Email)),
		)
	} else {
		lines(pdf, tr, contract.DriverID.String())
	}
	pdf.Ln(2)

	section(pdf, g.fontName, tr("Vehicle"))
	if contract.Vehicle != nil {
		lines(pdf, tr,
			fmt.Sprintf("%s %s (%d)", contract.Vehicle.Brand, contract.Vehicle.Model, contract.Vehicle.Year),
			fmt.Sprintf("Plate: %s", safeValue(contract.Vehicle.Plate)),
		)
	} else {
		lines(pdf, tr, contract.VehicleID.String())
	}
	pdf.Ln(2)

	section(pdf, g.fontName, tr("Terms"))
	widths := []float64{70, 110}
	drawTableRow(pdf, g.fontName, tr, []string{"Item", "Value"}, widths, true)
	for _, row := range [][]string{
		{"Type", string(contract.Type)},
		{"Status", statusLabel(contract)},
		{"Period", formatPeriod(contract)},
		{"Base price", formatNullAmount(contract.BasePrice)},
		{"Daily price", formatNullAmount(contract.DailyPrice)},
		{"Monthly price", formatNullAmount(contract.MonthlyPrice)},
		{"Total amount", formatNullAmount(contract.TotalAmount)},
		{"Deposit", formatNullAmount(contract.Deposit)},
		{"Penalty rate", contract.PenaltyRate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "% per day"},
		{"Grace period", fmt.Sprintf("%d days", contract.AllowedDelayDays)},
		{"Automatic renewal", yesNo(contract.AutomaticRenewal)},
	} {
		drawTableRow(pdf, g.fontName, tr, row, widths, false)
	}
	pdf.Ln(2)

	if strings.TrimSpace(contract.Terms) != "" {
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, tr(contract.Terms), "", "L", false)
		pdf.Ln(2)
	}

	section(pdf, g.fontName, tr("Payments"))
	if len(contract.Payments) == 0 {
		lines(pdf, tr, "No payments recorded.")
	} else {
		paymentWidths := []float64{30, 30, 30, 40, 50}
		drawTableRow(pdf, g.fontName, tr, []string{"Date", "Type", "Status", "Amount", "Reference"}, paymentWidths, true)
		for _, p := range contract.Payments {
			drawTableRow(pdf, g.fontName, tr, []string{
				formatDate(p.Date),
				string(p.Type),
				string(p.Status),
				p.Amount.StringFixed(2),
				safeValue(p.Reference),
			}, paymentWidths, false)
		}
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Contract value: %s", doc.Balance.TotalValue.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Penalties: %s", doc.Balance.Penalties.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Paid: %s", doc.Balance.TotalPaid.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Balance due: %s", doc.Balance.Balance.StringFixed(2))), "", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont(g.fontName, "", 11)
	driverName := ""
	if contract.Driver != nil {
		driverName = contract.Driver.FullName()
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Driver: ______________________ /%s/", safeValue(driverName))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Lessor: ______________________"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func lines(pdf *gofpdf.Fpdf, tr func(string) string, values ...string) {
	for _, line := range values {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if !header && i == len(cols)-1 && len(cols) > 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func statusLabel(contract model.Contract) string {
	if contract.StatusLookup != nil && contract.StatusLookup.Name != "" {
		return contract.StatusLookup.Name
	}
	return string(contract.Status)
}

func formatPeriod(contract model.Contract) string {
	if contract.EndDate == nil {
		return fmt.Sprintf("from %s, open-ended", formatDate(contract.StartDate))
	}
	return fmt.Sprintf("%s to %s", formatDate(contract.StartDate), formatDate(*contract.EndDate))
}

func formatNullAmount(value decimal.NullDecimal) string {
	if !value.Valid {
		return "-"
	}
	return value.Decimal.StringFixed(2)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
