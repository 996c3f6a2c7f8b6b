package model

// Organization — юридическое лицо (школа), на базе которого работает ППЭ.
// Все поля строковые: отсутствующие реквизиты подставляются пустой строкой,
// шаблон договора никогда не получает nil.
type Organization struct {
	FullName string
	Address  string
	INN      string
	KPP      string
	OKPO     string
	OGRN     string
	CurAcc   string // расчётный счёт
	BankAcc  string // корреспондентский счёт
	PersAcc  string // лицевой счёт
}
