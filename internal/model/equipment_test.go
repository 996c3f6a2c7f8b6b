package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEquipment(t *testing.T) {
	rows := []EquipmentRow{
		{Name: "Принтер", Price: 300, InvNumber: "P-1"},
		{Name: "Ноутбук", Price: 500, InvNumber: "N-2"},
		{Name: "Ноутбук", Price: 500, InvNumber: "N-1"},
		{Name: "Ноутбук", Price: 500, InvNumber: "N-1"}, // дубль инвентарного номера
		{Name: "Ноутбук", Price: 700, InvNumber: "N-3"},
		{Name: "Сканер", Price: 200, InvNumber: "S-1", Agreement: "5/2024"},
	}

	groups := AggregateEquipment(rows)
	require.Len(t, groups, 3)

	// сортировка по наименованию, затем по цене
	assert.Equal(t, "Ноутбук", groups[0].Name)
	assert.Equal(t, "500.00", groups[0].Price)
	assert.Equal(t, "Ноутбук", groups[1].Name)
	assert.Equal(t, "700.00", groups[1].Price)
	assert.Equal(t, "Принтер", groups[2].Name)

	// нумерация сквозная с единицы
	assert.Equal(t, 1, groups[0].RowNumber)
	assert.Equal(t, 2, groups[1].RowNumber)
	assert.Equal(t, 3, groups[2].RowNumber)

	// дубль инвентарного номера не раздувает список, но входит в количество
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, "N-1\nN-2", groups[0].InvNumbers)
	assert.Equal(t, "1500.00", groups[0].TotalPrice)

	assert.InDelta(t, 2500.0, TotalAmount(groups), 0.001)
}

func TestAggregateEquipment_SkipsClaimed(t *testing.T) {
	rows := []EquipmentRow{
		{Name: "Сканер", Price: 200, Agreement: "5/2024"},
		{Name: "Сканер", Price: 200, Agreement: "6/2024"},
	}
	assert.Empty(t, AggregateEquipment(rows))
	assert.Empty(t, AggregateEquipment(nil))
}

func TestResponsiblePersonForms(t *testing.T) {
	full := ResponsiblePerson{JobTitle: "директор", Surname: "Иванов", FirstName: "Иван", SecondName: "Иванович"}
	assert.Equal(t, "И.И.", full.Initials())
	assert.Equal(t, "Иванов И.И.", full.SurnameWithInitials())
	assert.Equal(t, "Иванов Иван Иванович", full.FullName())
	assert.False(t, full.IsEmpty())

	// без отчества инициалы не строятся, форма деградирует до фамилии
	partial := ResponsiblePerson{Surname: "Иванов", FirstName: "Иван"}
	assert.Equal(t, "", partial.Initials())
	assert.Equal(t, "Иванов", partial.SurnameWithInitials())
	assert.Equal(t, "Иванов", partial.FullName())

	assert.True(t, ResponsiblePerson{}.IsEmpty())
}
