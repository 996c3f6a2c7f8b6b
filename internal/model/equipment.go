package model

import (
	"fmt"
	"sort"
	"strings"
)

// EquipmentRow — единица оборудования, привязанная к ППЭ.
// Agreement непустой, когда единица уже закреплена за действующим договором;
// такие строки исключаются из формирования нового договора.
type EquipmentRow struct {
	ID         int
	FacilityID int
	Name       string // наименование по каталогу (name_in_1C)
	Price      float64
	InvNumber  string
	Agreement  string
}

// EquipmentOverviewRow — строка сводки оборудования для карточки ППЭ.
type EquipmentOverviewRow struct {
	EquipType   string
	EquipMark   string
	EquipMod    string
	ReleaseYear int
	Amount      int
}

// EquipmentGroup — производный агрегат по (наименование, цена).
// Считается заново на каждый вызов генерации и нигде не хранится.
type EquipmentGroup struct {
	RowNumber  int
	Name       string
	Count      int
	InvNumbers string
	Price      string // цена за единицу, две цифры после запятой
	TotalPrice string // цена × количество, две цифры после запятой
	totalRaw   float64
}

// AggregateEquipment группирует строки оборудования по (наименование, цена),
// считает количество, склеивает различающиеся инвентарные номера и суммирует
// стоимость. Группы отсортированы по наименованию по возрастанию.
func AggregateEquipment(rows []EquipmentRow) []EquipmentGroup {
	type key struct {
		name  string
		price float64
	}

	counts := make(map[key]int)
	invSets := make(map[key]map[string]struct{})
	order := make([]key, 0)

	for _, row := range rows {
		if row.Agreement != "" {
			continue
		}
		k := key{name: row.Name, price: row.Price}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
			invSets[k] = make(map[string]struct{})
		}
		counts[k]++
		if inv := strings.TrimSpace(row.InvNumber); inv != "" {
			invSets[k][inv] = struct{}{}
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].name != order[j].name {
			return order[i].name < order[j].name
		}
		return order[i].price < order[j].price
	})

	groups := make([]EquipmentGroup, 0, len(order))
	for i, k := range order {
		invs := make([]string, 0, len(invSets[k]))
		for inv := range invSets[k] {
			invs = append(invs, inv)
		}
		sort.Strings(invs)

		count := counts[k]
		total := k.price * float64(count)
		groups = append(groups, EquipmentGroup{
			RowNumber:  i + 1,
			Name:       k.name,
			Count:      count,
			InvNumbers: strings.Join(invs, "\n"),
			Price:      fmt.Sprintf("%.2f", k.price),
			TotalPrice: fmt.Sprintf("%.2f", total),
			totalRaw:   total,
		})
	}
	return groups
}

// TotalAmount возвращает сумму по всем группам.
func TotalAmount(groups []EquipmentGroup) float64 {
	var total float64
	for _, g := range groups {
		total += g.totalRaw
	}
	return total
}
