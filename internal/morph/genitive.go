// Package morph преобразует русские имена, должности и денежные суммы в
// формы, требуемые текстом договора: родительный падеж и сумма прописью.
package morph

import (
	"strings"
	"unicode"
)

// ToGenitive переводит слово или фразу из именительного падежа в
// родительный. Сначала проверяется таблица целых фраз, затем каждое слово
// по отдельности; для первого слова фразы из двух и более слов (эвристически
// считается фамилией) применяются суффиксные правила. Слова вне таблицы и
// без подходящего суффикса возвращаются без изменений: преобразование
// заведомо неполно для имён, которых нет в таблице.
func ToGenitive(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return ""
	}

	lower := strings.ToLower(phrase)
	if mapped, ok := genitiveTable[lower]; ok {
		return matchCapital(phrase, mapped)
	}

	words := strings.Fields(phrase)
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = genitiveWord(word, i == 0 && len(words) >= 2)
	}
	return strings.Join(out, " ")
}

func genitiveWord(word string, surnamePosition bool) string {
	if mapped, ok := genitiveTable[strings.ToLower(word)]; ok {
		return matchCapital(word, mapped)
	}
	if surnamePosition {
		return applySurnameSuffix(word)
	}
	return word
}

// applySurnameSuffix склоняет фамилию по окончанию. Правила покрывают самые
// частые русские окончания; всё остальное остаётся как есть.
func applySurnameSuffix(word string) string {
	lower := strings.ToLower(word)
	switch {
	case hasAnySuffix(lower, "ов", "ев", "ин", "ын"):
		return word + "а"
	case strings.HasSuffix(lower, "ий"):
		return trimRunes(word, 2) + "ого"
	case hasAnySuffix(lower, "ый", "ой"):
		return trimRunes(word, 2) + "ого"
	case strings.HasSuffix(lower, "ь"):
		return trimRunes(word, 1) + "я"
	default:
		return word
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func trimRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		return s
	}
	return string(runes[:len(runes)-n])
}

// matchCapital повторяет регистр первой буквы исходного текста на результате
// из таблицы (таблица хранит формы в нижнем регистре).
func matchCapital(original, mapped string) string {
	originalRunes := []rune(original)
	mappedRunes := []rune(mapped)
	if len(originalRunes) == 0 || len(mappedRunes) == 0 {
		return mapped
	}
	if unicode.IsUpper(originalRunes[0]) {
		mappedRunes[0] = unicode.ToUpper(mappedRunes[0])
	}
	return string(mappedRunes)
}

// Capitalize переводит первую букву строки в верхний регистр.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
