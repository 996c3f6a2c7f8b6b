package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

type Generator struct {
	fontName string
	fontData []byte
}

// NewGenerator загружает TTF-шрифт с кириллицей. Без шрифта паспорт ППЭ
// сгенерировать нельзя.
func NewGenerator(fontPath string) (*Generator, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", fontPath, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font file %s is empty", fontPath)
	}
	return &Generator{fontName: "Body", fontData: data}, nil
}

// Generate формирует печатный паспорт ППЭ.
func (g *Generator) Generate(card model.FacilityCard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.AddUTF8FontFromBytes(g.fontName, "", g.fontData)
	pdf.AddUTF8FontFromBytes(g.fontName, "B", g.fontData)

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Паспорт ППЭ № %d", card.Facility.Number), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Адрес: %s", card.Facility.AddressFact), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("ГИА: %s", card.Facility.ExamType), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Аудиторий: %d", card.Facility.AuditoryCount), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Организация", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	orgLines := []string{
		card.Organization.FullName,
		fmt.Sprintf("ИНН: %s  КПП: %s", safeValue(card.Organization.INN), safeValue(card.Organization.KPP)),
		fmt.Sprintf("ОГРН: %s  ОКПО: %s", safeValue(card.Organization.OGRN), safeValue(card.Organization.OKPO)),
		fmt.Sprintf("Адрес: %s", safeValue(card.Organization.Address)),
	}
	for _, line := range orgLines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Ответственный", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	responsible := card.Responsible.FullName()
	if responsible == "" {
		responsible = "—"
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %s", safeValue(card.Responsible.JobTitle), responsible), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Оборудование", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Тип", "Марка", "Модель", "Год", "Кол-во"}
	widths := []float64{50, 40, 50, 20, 20}
	drawTableRow(pdf, g.fontName, headers, widths, true)
	for _, row := range card.Equipment {
		year := ""
		if row.ReleaseYear > 0 {
			year = fmt.Sprintf("%d", row.ReleaseYear)
		}
		drawTableRow(pdf, g.fontName, []string{
			row.EquipType,
			row.EquipMark,
			row.EquipMod,
			year,
			fmt.Sprintf("%d", row.Amount),
		}, widths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i >= 3 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
