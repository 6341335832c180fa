package excel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/rental-contracts/internal/model"
)

const summarySheet = "Summary"

var contractHeaders = []string{
	"Contract",
	"Driver",
	"Document",
	"Vehicle",
	"Type",
	"Status",
	"Start",
	"End",
	"Value",
	"Paid",
	"Penalties",
	"Balance",
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes a summary sheet followed by one sheet per contract status.
func (g *Generator) Generate(sheet model.ContractSheet) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	groups := groupByStatus(sheet.Rows)
	if err := g.writeSummary(file, summarySheet, sheet, groups); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, status := range sortedStatuses(groups) {
		name := buildSheetName(string(status), usedNames)
		usedNames[name] = struct{}{}

		if _, err := file.NewSheet(name); err != nil {
			return nil, err
		}
		if err := g.writeContracts(file, name, groups[status]); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.ContractSheet, groups map[model.ContractStatus][]model.ContractSheetRow) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	totals := sumBalances(report.Rows)
	set("A1", "Generated at")
	set("B1", formatDateTime(report.GeneratedAt))
	set("A2", "Contracts")
	set("B2", len(report.Rows))
	set("A3", "Contract value")
	set("B3", totals.TotalValue.StringFixed(2))
	set("A4", "Paid")
	set("B4", totals.TotalPaid.StringFixed(2))
	set("A5", "Outstanding")
	set("B5", totals.Balance.StringFixed(2))

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Status")
	set(fmt.Sprintf("B%d", tableRow), "Contracts")
	set(fmt.Sprintf("C%d", tableRow), "Balance")
	for i, status := range sortedStatuses(groups) {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), string(status))
		set(fmt.Sprintf("B%d", row), len(groups[status]))
		set(fmt.Sprintf("C%d", row), sumBalances(groups[status]).Balance.StringFixed(2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	return nil
}

func (g *Generator) writeContracts(file *excelize.File, sheet string, rows []model.ContractSheetRow) error {
	for i, header := range contractHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		_ = file.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		c := row.Contract
		values := []interface{}{
			c.ID.String(),
			driverName(c),
			driverDocument(c),
			vehiclePlate(c),
			string(c.Type),
			string(c.Status),
			formatDate(c.StartDate),
			formatOptionalDate(c.EndDate),
			row.Balance.TotalValue.StringFixed(2),
			row.Balance.TotalPaid.StringFixed(2),
			row.Balance.Penalties.StringFixed(2),
			row.Balance.Balance.StringFixed(2),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 38)
	_ = file.SetColWidth(sheet, "B", "B", 28)
	_ = file.SetColWidth(sheet, "C", "H", 14)
	_ = file.SetColWidth(sheet, "I", "L", 12)
	return nil
}

func groupByStatus(rows []model.ContractSheetRow) map[model.ContractStatus][]model.ContractSheetRow {
	groups := make(map[model.ContractStatus][]model.ContractSheetRow)
	for _, row := range rows {
		groups[row.Contract.Status] = append(groups[row.Contract.Status], row)
	}
	return groups
}

func sortedStatuses(groups map[model.ContractStatus][]model.ContractSheetRow) []model.ContractStatus {
	statuses := make([]model.ContractStatus, 0, len(groups))
	for status := range groups {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

func sumBalances(rows []model.ContractSheetRow) model.Balance {
	total := model.Balance{
		TotalValue: decimal.Zero,
		TotalPaid:  decimal.Zero,
		Penalties:  decimal.Zero,
		Balance:    decimal.Zero,
	}
	for _, row := range rows {
		total.TotalValue = total.TotalValue.Add(row.Balance.TotalValue)
		total.TotalPaid = total.TotalPaid.Add(row.Balance.TotalPaid)
		total.Penalties = total.Penalties.Add(row.Balance.Penalties)
		total.Balance = total.Balance.Add(row.Balance.Balance)
	}
	return total
}

func buildSheetName(name string, used map[string]struct{}) string {
	base := sanitizeSheetName(name)
	if len(base) > 31 {
		base = base[:31]
	}

	candidate := base
	for counter := 2; ; counter++ {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Contracts"
	}
	return value
}

func driverName(c model.Contract) string {
	if c.Driver == nil {
		return c.DriverID.String()
	}
	return c.Driver.FullName()
}

func driverDocument(c model.Contract) string {
	if c.Driver == nil {
		return ""
	}
	return c.Driver.DocumentNumber
}

func vehiclePlate(c model.Contract) string {
	if c.Vehicle == nil {
		return c.VehicleID.String()
	}
	return c.Vehicle.Plate
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
