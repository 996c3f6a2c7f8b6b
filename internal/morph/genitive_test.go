package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGenitive_Empty(t *testing.T) {
	assert.Equal(t, "", ToGenitive(""))
	assert.Equal(t, "", ToGenitive("   "))
}

func TestToGenitive_TabledWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Иванов", "Иванова"},
		{"иванов", "иванова"},
		{"Директор", "Директора"},
		{"директор", "директора"},
		{"Ольга", "Ольги"},
		{"Сергей", "Сергея"},
		{"Петровна", "Петровны"},
		{"Иванович", "Ивановича"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGenitive(tt.in), "input %q", tt.in)
	}
}

func TestToGenitive_TabledPhrase(t *testing.T) {
	assert.Equal(t, "Заместителя директора", ToGenitive("Заместитель директора"))
	assert.Equal(t, "Главного бухгалтера", ToGenitive("Главный бухгалтер"))
}

func TestToGenitive_SurnameSuffixRules(t *testing.T) {
	// фамилии вне таблицы склоняются по окончанию, только когда стоят
	// первым словом фразы из двух и более слов
	tests := []struct {
		in   string
		want string
	}{
		{"Щербаков Иван", "Щербакова Ивана"},
		{"Зуев Пётр", "Зуева Петра"},
		{"Топилин Сергей", "Топилина Сергея"},
		{"Синицын Олег", "Синицына Олега"},
		{"Задорожний Павел", "Задорожного Павла"},
		{"Черный Андрей", "Черного Андрея"},
		{"Толстой Николай", "Толстого Николая"},
		{"Лебедь Роман", "Лебедя Романа"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGenitive(tt.in), "input %q", tt.in)
	}
}

func TestToGenitive_UnknownWordsUnchanged(t *testing.T) {
	// одиночное слово без таблицы и не на позиции фамилии не трогаем
	assert.Equal(t, "Экзотика", ToGenitive("Экзотика"))
	// слово не на первой позиции остаётся как есть
	assert.Equal(t, "Иванова Хтоническааа", ToGenitive("Иванов Хтоническааа"))
}

func TestToGenitive_FullNameFromTable(t *testing.T) {
	assert.Equal(t, "Иванова Ивана Ивановича", ToGenitive("Иванов Иван Иванович"))
	assert.Equal(t, "Петровой Марии Сергеевны", ToGenitive("Петрова Мария Сергеевна"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Одна тысяча", Capitalize("одна тысяча"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Ё", Capitalize("ё"))
}
