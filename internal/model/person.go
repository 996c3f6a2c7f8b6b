package model

import "strings"

// ResponsiblePerson — ответственное лицо организации. Не более одной записи
// на ключ поиска; отсутствие записи даёт пустые поля, а не ошибку.
type ResponsiblePerson struct {
	JobTitle   string
	Surname    string
	FirstName  string
	SecondName string // отчество
}

func (p ResponsiblePerson) IsEmpty() bool {
	return p.JobTitle == "" && p.Surname == "" && p.FirstName == "" && p.SecondName == ""
}

// Initials возвращает "И.О." — первые буквы имени и отчества с точками.
// Обе части должны быть непустыми, иначе возвращается пустая строка.
func (p ResponsiblePerson) Initials() string {
	first := strings.TrimSpace(p.FirstName)
	second := strings.TrimSpace(p.SecondName)
	if first == "" || second == "" {
		return ""
	}
	return firstLetter(first) + "." + firstLetter(second) + "."
}

// SurnameWithInitials возвращает компактную форму "Фамилия И.О.".
// Без имени или отчества деградирует до одной фамилии.
func (p ResponsiblePerson) SurnameWithInitials() string {
	initials := p.Initials()
	if initials == "" {
		return strings.TrimSpace(p.Surname)
	}
	return strings.TrimSpace(strings.TrimSpace(p.Surname) + " " + initials)
}

// FullName возвращает "Фамилия Имя Отчество" через пробел, без пустых частей.
func (p ResponsiblePerson) FullName() string {
	if p.Initials() == "" {
		return strings.TrimSpace(p.Surname)
	}
	parts := []string{}
	for _, part := range []string{p.Surname, p.FirstName, p.SecondName} {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
