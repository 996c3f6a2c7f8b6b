package morph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinalRu(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "ноль"},
		{1, "один"},
		{2, "два"},
		{11, "одиннадцать"},
		{21, "двадцать один"},
		{100, "сто"},
		{115, "сто пятнадцать"},
		{200, "двести"},
		{1000, "одна тысяча"},
		{2000, "две тысячи"},
		{5000, "пять тысяч"},
		{21000, "двадцать одна тысяча"},
		{1234, "одна тысяча двести тридцать четыре"},
		{1000000, "один миллион"},
		{2000001, "два миллиона один"},
		{-7, "минус семь"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CardinalRu(tt.n), "n=%d", tt.n)
	}
}

func TestRubleSuffix(t *testing.T) {
	assert.Equal(t, "рубль", RubleSuffix(1))
	assert.Equal(t, "рубля", RubleSuffix(2))
	assert.Equal(t, "рубля", RubleSuffix(3))
	assert.Equal(t, "рубля", RubleSuffix(4))
	assert.Equal(t, "рублей", RubleSuffix(5))
	assert.Equal(t, "рублей", RubleSuffix(11))
	assert.Equal(t, "рублей", RubleSuffix(12))
	assert.Equal(t, "рублей", RubleSuffix(14))
	assert.Equal(t, "рубль", RubleSuffix(21))
	assert.Equal(t, "рублей", RubleSuffix(111))
	assert.Equal(t, "рубль", RubleSuffix(101))
}

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Ноль рублей 00 копеек"},
		{1, "Один рубль 00 копеек"},
		{2, "Два рубля 00 копеек"},
		{11, "Одиннадцать рублей 00 копеек"},
		{21, "Двадцать один рубль 00 копеек"},
		{1000, "Одна тысяча рублей 00 копеек"},
		{500.05, "Пятьсот рублей 05 копеек"},
		{1234.56, "Одна тысяча двести тридцать четыре рубля 56 копеек"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountToWords(tt.amount), "amount=%v", tt.amount)
	}
}

func TestAmountToWords_KopeckSuffix(t *testing.T) {
	// двузначные копейки с ведущим нулём для любых сумм
	for _, amount := range []float64{0.01, 10.10, 99.99, 500.00} {
		kop := int64(amount*100+0.5) % 100
		assert.Contains(t, AmountToWords(amount), fmt.Sprintf("%02d копеек", kop), "amount=%v", amount)
	}
}

func TestMonthNameGenitive(t *testing.T) {
	assert.Equal(t, "января", MonthNameGenitive(1))
	assert.Equal(t, "мая", MonthNameGenitive(5))
	assert.Equal(t, "декабря", MonthNameGenitive(12))
	assert.Equal(t, "", MonthNameGenitive(0))
	assert.Equal(t, "", MonthNameGenitive(13))
}
