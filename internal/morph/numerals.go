package morph

import (
	"fmt"
	"math"
	"strings"
)

var unitsMasculine = []string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

var unitsFeminine = []string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

var teens = []string{
	"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
	"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
}

var tens = []string{
	"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
	"шестьдесят", "семьдесят", "восемьдесят", "девяносто",
}

var hundreds = []string{
	"", "сто", "двести", "триста", "четыреста", "пятьсот",
	"шестьсот", "семьсот", "восемьсот", "девятьсот",
}

type scale struct {
	one, few, many string
	feminine       bool
}

var scales = []scale{
	{},
	{one: "тысяча", few: "тысячи", many: "тысяч", feminine: true},
	{one: "миллион", few: "миллиона", many: "миллионов"},
	{one: "миллиард", few: "миллиарда", many: "миллиардов"},
}

// CardinalRu возвращает число прописью по-русски в нижнем регистре.
// Отрицательные значения получают префикс "минус".
func CardinalRu(n int64) string {
	if n == 0 {
		return "ноль"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var parts []string
	groups := splitThousands(n)
	for i := len(groups) - 1; i >= 0; i-- {
		group := groups[i]
		if group == 0 {
			continue
		}
		sc := scales[i]
		parts = append(parts, tripletWords(group, sc.feminine)...)
		if i > 0 {
			parts = append(parts, pluralForm(int64(group), sc.one, sc.few, sc.many))
		}
	}

	if negative {
		parts = append([]string{"минус"}, parts...)
	}
	return strings.Join(parts, " ")
}

func splitThousands(n int64) []int {
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}
	return groups
}

func tripletWords(n int, feminine bool) []string {
	units := unitsMasculine
	if feminine {
		units = unitsFeminine
	}

	var words []string
	if h := n / 100; h > 0 {
		words = append(words, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest >= 10 && rest <= 19:
		words = append(words, teens[rest-10])
	case rest > 0:
		if t := rest / 10; t > 0 {
			words = append(words, tens[t])
		}
		if u := rest % 10; u > 0 {
			words = append(words, units[u])
		}
	}
	return words
}

// pluralForm выбирает форму существительного при числительном по стандартному
// правилу: 11–14 → many, последняя цифра 1 → one, 2–4 → few, иначе many.
func pluralForm(n int64, one, few, many string) string {
	n = n % 100
	if n < 0 {
		n = -n
	}
	if n >= 11 && n <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// RubleSuffix возвращает форму слова "рубль" для суммы n.
func RubleSuffix(n int64) string {
	return pluralForm(n, "рубль", "рубля", "рублей")
}

// AmountToWords переводит денежную сумму в текст вида
// "Одна тысяча двести рублей 05 копеек". Копейки округляются до двух знаков
// и всегда выводятся числом в форме родительного падежа множественного числа.
func AmountToWords(amount float64) string {
	rub := int64(amount)
	kop := int64(math.Round((amount - float64(rub)) * 100))

	return fmt.Sprintf("%s %s %02d копеек", Capitalize(CardinalRu(rub)), RubleSuffix(rub), kop)
}

// genitiveMonths — названия месяцев в родительном падеже, индексы 0–11
// соответствуют месяцам 1–12.
var genitiveMonths = []string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// MonthNameGenitive возвращает название месяца (1–12) в родительном падеже.
// Значение вне диапазона даёт пустую строку.
func MonthNameGenitive(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return genitiveMonths[month-1]
}
