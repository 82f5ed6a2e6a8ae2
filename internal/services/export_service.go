package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

const platformAttributionNote = "Platform revenue counts the full amount of every booking touching the range; monthly revenue is pro-rated by nights."

type ExportService struct {
	currencySymbol string
}

func NewExportService(currencySymbol string) *ExportService {
	return &ExportService{currencySymbol: currencySymbol}
}

// Export renders the report in the requested format and returns the file
// contents, a download filename and its content type
func (s *ExportService) Export(ctx context.Context, format string, report *models.AnalyticsReport) ([]byte, string, string, error) {
	var data []byte
	var err error
	var contentType string

	switch format {
	case FormatCSV:
		data, err = s.ExportCSV(ctx, report)
		contentType = "text/csv"
	case FormatXLSX:
		data, err = s.ExportXLSX(ctx, report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		data, err = s.ExportPDF(ctx, report)
		contentType = "application/pdf"
	default:
		return nil, "", "", ErrUnsupportedFormat
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("generate %s: %w", format, err)
	}
	return data, exportFilename(report, format), contentType, nil
}

func exportFilename(report *models.AnalyticsReport, ext string) string {
	return fmt.Sprintf("occupancy_report_%s_%s.%s",
		report.Range.Start.Format("2006-01-02"),
		report.Range.End.Format("2006-01-02"),
		ext,
	)
}

func (s *ExportService) ExportCSV(ctx context.Context, report *models.AnalyticsReport) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	rows := [][]string{
		{"Occupancy Report", report.Range.Start.Format("2006-01-02"), report.Range.End.Format("2006-01-02")},
		{""},
		{"Revenue"},
		{"Metric", "Value"},
		{"Total Revenue", money(report.Revenue.TotalRevenue)},
		{"RevPAR", money(report.Revenue.RevPAR)},
		{"ADR", money(report.Revenue.ADR)},
		{"Average Stay (nights)", fmt.Sprintf("%.1f", report.Revenue.AvgStayDuration)},
		{"Active Properties", strconv.Itoa(report.Revenue.ActivePropertyCount)},
		{"Occupied Nights", strconv.Itoa(report.Revenue.OccupiedNights)},
		{"Bookings", strconv.Itoa(report.Revenue.BookingCount)},
		{""},
		{"Occupancy by Property"},
		{"Property", "Occupied Nights", "Available Nights", "Occupancy %", "Revenue"},
	}
	for _, p := range report.Properties {
		rows = append(rows, []string{
			p.PropertyName,
			strconv.Itoa(p.OccupiedNights),
			strconv.Itoa(p.AvailableNights),
			strconv.Itoa(p.OccupationRate),
			money(p.Revenue),
		})
	}

	rows = append(rows, []string{""}, []string{"Occupancy by Month"},
		[]string{"Month", "Label", "Occupied Nights", "Total Nights", "Occupancy %", "Revenue"})
	for _, m := range report.Months {
		rows = append(rows, []string{
			m.Month,
			m.Label,
			strconv.Itoa(m.OccupiedNights),
			strconv.Itoa(m.TotalNights),
			strconv.Itoa(m.OccupationRate),
			fmt.Sprintf("%.0f", m.Revenue),
		})
	}

	rows = append(rows, []string{""}, []string{"Revenue by Platform"},
		[]string{"Platform", "Bookings", "Total Amount", "Share %"})
	for _, p := range report.Platforms {
		rows = append(rows, []string{
			string(p.Platform),
			strconv.Itoa(p.Count),
			money(p.TotalAmount),
			strconv.Itoa(p.Percentage),
		})
	}
	rows = append(rows, []string{""}, []string{platformAttributionNote})

	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ExportXLSX(ctx context.Context, report *models.AnalyticsReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	summary := "Revenue"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Period", report.Range.Start.Format("2006-01-02") + " - " + report.Range.End.Format("2006-01-02")},
		{"Total Revenue", report.Revenue.TotalRevenue},
		{"RevPAR", report.Revenue.RevPAR},
		{"ADR", report.Revenue.ADR},
		{"Average Stay (nights)", report.Revenue.AvgStayDuration},
		{"Active Properties", report.Revenue.ActivePropertyCount},
		{"Occupied Nights", report.Revenue.OccupiedNights},
		{"Bookings", report.Revenue.BookingCount},
		{"Currency", s.currencySymbol},
	}
	if err := writeSheet(f, summary, summaryRows, headerStyle); err != nil {
		return nil, err
	}

	propertyRows := [][]interface{}{{"Property", "Occupied Nights", "Available Nights", "Occupancy %", "Revenue"}}
	for _, p := range report.Properties {
		propertyRows = append(propertyRows, []interface{}{p.PropertyName, p.OccupiedNights, p.AvailableNights, p.OccupationRate, p.Revenue})
	}
	if err := writeSheet(f, "Properties", propertyRows, headerStyle); err != nil {
		return nil, err
	}

	monthRows := [][]interface{}{{"Month", "Label", "Occupied Nights", "Total Nights", "Occupancy %", "Revenue"}}
	for _, m := range report.Months {
		monthRows = append(monthRows, []interface{}{m.Month, m.Label, m.OccupiedNights, m.TotalNights, m.OccupationRate, m.Revenue})
	}
	if err := writeSheet(f, "Months", monthRows, headerStyle); err != nil {
		return nil, err
	}

	platformRows := [][]interface{}{{"Platform", "Bookings", "Total Amount", "Share %"}}
	for _, p := range report.Platforms {
		platformRows = append(platformRows, []interface{}{string(p.Platform), p.Count, p.TotalAmount, p.Percentage})
	}
	platformRows = append(platformRows, []interface{}{}, []interface{}{platformAttributionNote})
	if err := writeSheet(f, "Platforms", platformRows, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeSheet creates the sheet when missing, writes rows from A1 and styles the first row
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func (s *ExportService) ExportPDF(ctx context.Context, report *models.AnalyticsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Occupancy Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(40, 10, fmt.Sprintf("%s - %s",
		report.Range.Start.Format("2006-01-02"), report.Range.End.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Revenue")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, kv := range [][2]string{
		{"Total Revenue:", s.withCurrency(report.Revenue.TotalRevenue)},
		{"RevPAR:", s.withCurrency(report.Revenue.RevPAR)},
		{"ADR:", s.withCurrency(report.Revenue.ADR)},
		{"Average Stay:", fmt.Sprintf("%.1f nights", report.Revenue.AvgStayDuration)},
		{"Active Properties:", strconv.Itoa(report.Revenue.ActivePropertyCount)},
	} {
		pdf.Cell(60, 10, kv[0])
		pdf.Cell(40, 10, tr(kv[1]))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdfTable(pdf, tr, "Occupancy by Property",
		[]string{"Property", "Nights", "Available", "Rate", "Revenue"},
		[]float64{70, 25, 25, 20, 40},
		func(add func(...string)) {
			for _, p := range report.Properties {
				add(p.PropertyName, strconv.Itoa(p.OccupiedNights), strconv.Itoa(p.AvailableNights),
					fmt.Sprintf("%d%%", p.OccupationRate), money(p.Revenue))
			}
		})

	pdfTable(pdf, tr, "Occupancy by Month",
		[]string{"Month", "Nights", "Total", "Rate", "Revenue"},
		[]float64{70, 25, 25, 20, 40},
		func(add func(...string)) {
			for _, m := range report.Months {
				add(m.Label, strconv.Itoa(m.OccupiedNights), strconv.Itoa(m.TotalNights),
					fmt.Sprintf("%d%%", m.OccupationRate), fmt.Sprintf("%.0f", m.Revenue))
			}
		})

	pdfTable(pdf, tr, "Revenue by Platform",
		[]string{"Platform", "Bookings", "Amount", "Share"},
		[]float64{70, 25, 45, 20},
		func(add func(...string)) {
			for _, p := range report.Platforms {
				add(string(p.Platform), strconv.Itoa(p.Count), money(p.TotalAmount), fmt.Sprintf("%d%%", p.Percentage))
			}
		})

	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 5, platformAttributionNote, "", "L", false)

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfTable(pdf *gofpdf.Fpdf, tr func(string) string, title string, header []string, widths []float64, rows func(add func(...string))) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	rows(func(cols ...string) {
		for i, c := range cols {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.Ln(6)
}

func (s *ExportService) withCurrency(v float64) string {
	if s.currencySymbol == "" {
		return money(v)
	}
	return money(v) + " " + s.currencySymbol
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
