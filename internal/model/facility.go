package model

// Facility — пункт проведения экзаменов (ППЭ).
// Записи создаются импортом данных и в обычной работе только читаются.
type Facility struct {
	ID            int
	Number        int
	AddressFact   string
	ExamType      string
	AuditoryCount int
	SchoolID      int
	SchoolINN     string
}

// IdentifierKind определяет путь поиска организации и ответственного лица.
type IdentifierKind string

const (
	ByFacilityNumber IdentifierKind = "PPE_NUMBER"
	ByINN            IdentifierKind = "INN"
	BySchoolID       IdentifierKind = "SCHOOL_ID"
)
