package model

import "time"

// Contract — запись о договоре поставки. Связь с оборудованием идёт через
// contract_id в equip_data; поле agreement там же служит меткой закрепления.
type Contract struct {
	ID          int
	Number      string
	Date        time.Time
	Name        string
	Supplier    string
	SupplierINN string
}

// ContractMeta — реквизиты договора в том виде, в котором они подставляются
// в шаблон. Отсутствующий договор даёт пустые строки.
type ContractMeta struct {
	Number string
	Date   string // ДД.ММ.ГГГГ
	Name   string
}
