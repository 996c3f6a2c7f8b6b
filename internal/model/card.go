package model

// FacilityCard — карточка ППЭ для реестра и экспортов: сам пункт, реквизиты
// организации, ответственное лицо, сводка оборудования и связанные договоры.
type FacilityCard struct {
	Facility     Facility
	Organization Organization
	Responsible  ResponsiblePerson
	Equipment    []EquipmentOverviewRow
	Contracts    []Contract
}
