package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate собирает книгу со сводкой ППЭ: лист реквизитов и лист
// оборудования.
func (g *Generator) Generate(card model.FacilityCard) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Сводка"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, card); err != nil {
		return nil, err
	}

	equipmentSheet := "Оборудование"
	if _, err := file.NewSheet(equipmentSheet); err != nil {
		return nil, err
	}
	if err := g.writeEquipment(file, equipmentSheet, card); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, card model.FacilityCard) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "№ ППЭ")
	set("B1", card.Facility.Number)
	set("A2", "Адрес")
	set("B2", card.Facility.AddressFact)
	set("A3", "ГИА")
	set("B3", card.Facility.ExamType)
	set("A4", "Количество аудиторий")
	set("B4", card.Facility.AuditoryCount)
	set("A5", "Организация")
	set("B5", card.Organization.FullName)
	set("A6", "ИНН")
	set("B6", card.Organization.INN)
	set("A7", "КПП")
	set("B7", card.Organization.KPP)
	set("A8", "ОГРН")
	set("B8", card.Organization.OGRN)
	set("A9", "Ответственный")
	set("B9", card.Responsible.SurnameWithInitials())
	set("A10", "Должность")
	set("B10", card.Responsible.JobTitle)

	tableRow := 12
	set(fmt.Sprintf("A%d", tableRow), "Договор")
	set(fmt.Sprintf("B%d", tableRow), "Дата")
	set(fmt.Sprintf("C%d", tableRow), "Поставщик")
	set(fmt.Sprintf("D%d", tableRow), "Описание")
	for i, contract := range card.Contracts {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), contract.Number)
		if !contract.Date.IsZero() {
			set(fmt.Sprintf("B%d", row), contract.Date.Format("02.01.2006"))
		}
		set(fmt.Sprintf("C%d", row), contract.Supplier)
		set(fmt.Sprintf("D%d", row), contract.Name)
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 45)
	_ = file.SetColWidth(sheet, "C", "D", 32)
	return nil
}

func (g *Generator) writeEquipment(file *excelize.File, sheet string, card model.FacilityCard) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Тип", "Марка", "Модель", "Год выпуска", "Количество"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range card.Equipment {
		set(fmt.Sprintf("A%d", i+2), row.EquipType)
		set(fmt.Sprintf("B%d", i+2), row.EquipMark)
		set(fmt.Sprintf("C%d", i+2), row.EquipMod)
		if row.ReleaseYear > 0 {
			set(fmt.Sprintf("D%d", i+2), row.ReleaseYear)
		}
		set(fmt.Sprintf("E%d", i+2), row.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "C", 24)
	_ = file.SetColWidth(sheet, "D", "E", 14)
	return nil
}
