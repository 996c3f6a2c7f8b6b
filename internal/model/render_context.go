package model

import (
	"reflect"
	"strconv"
)

// RenderContext — типизированный набор полей для шаблона договора.
// Имена плейсхолдеров в шаблоне заданы тегами docx; переименование тега
// ломает внешний контракт с автором шаблона, поэтому теги должны совпадать
// с шаблоном побайтово. Контекст живёт один вызов генерации.
type RenderContext struct {
	CodeContract string `docx:"code_contract"`
	Day          int    `docx:"day"`
	MonthName    string `docx:"month_name"`
	Year         int    `docx:"year"`
	YearNext     int    `docx:"year_next"`

	NumContract  string `docx:"num_contract"`
	DateContract string `docx:"date_contract"`
	NameContract string `docx:"name_contract"`

	SchoolFullname string `docx:"school_fullname"`
	SchoolAddress  string `docx:"school_address"`
	INN            string `docx:"INN"`
	KPP            string `docx:"KPP"`
	OKPO           string `docx:"OKPO"`
	OGRN           string `docx:"OGRN"`
	CurAcc         string `docx:"cur_acc"`
	BankAcc        string `docx:"bank_acc"`
	PersAcc        string `docx:"pers_acc"`

	JobTitle   string `docx:"job_title"`
	Surname    string `docx:"surname"`
	Name       string `docx:"name"`
	SecondName string `docx:"second_name"`
	SurnameIO  string `docx:"surname_io"`
	FullName   string `docx:"fullname"`

	// Варианты в родительном падеже. При сбое склонения заполняются
	// именительным падежом, но не остаются пустыми.
	JobTitleGen     string `docx:"job_title_rp"`
	SurnameGen      string `docx:"surname_rp"`
	NameGen         string `docx:"name_rp"`
	SecondNameGen   string `docx:"second_name_rp"`
	FullNameGen     string `docx:"fullname_rp"`
	SurnameIOGen    string `docx:"surname_io_rp"`
	JobFullNameGen  string `docx:"job_fullname_rp"`
	JobSurnameIOGen string `docx:"job_surname_io_rp"`

	Total          string `docx:"total"`
	TotalPriceText string `docx:"total_price_text"`

	Equipment []EquipmentGroup `docx:"-"`
}

// Fields разворачивает контекст в плоскую карту плейсхолдер → значение.
// Список оборудования не входит: его подставляет построчное размножение
// таблицы в рендерере.
func (c RenderContext) Fields() map[string]string {
	fields := make(map[string]string)
	v := reflect.ValueOf(c)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("docx")
		if tag == "" || tag == "-" {
			continue
		}
		switch value := v.Field(i).Interface().(type) {
		case string:
			fields[tag] = value
		case int:
			fields[tag] = strconv.Itoa(value)
		}
	}
	return fields
}

// EquipmentRowFields возвращает карту плейсхолдеров для одной строки таблицы
// оборудования.
func EquipmentRowFields(g EquipmentGroup) map[string]string {
	return map[string]string{
		"row_number":  strconv.Itoa(g.RowNumber),
		"equip_name":  g.Name,
		"count_equip": strconv.Itoa(g.Count),
		"inv_numbers": g.InvNumbers,
		"equip_price": g.Price,
		"total_price": g.TotalPrice,
	}
}

// EquipmentPlaceholders — плейсхолдеры, по которым рендерер находит строку
// шаблона, подлежащую размножению.
func EquipmentPlaceholders() []string {
	return []string{"row_number", "equip_name", "count_equip", "inv_numbers", "equip_price", "total_price"}
}
