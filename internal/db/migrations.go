package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Имена таблиц и колонок — внешний контракт с существующей базой реестра,
// менять их нельзя: по ним строятся соединения в запросах.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS dat_ppe (
		id INTEGER PRIMARY KEY,
		ppe_number INTEGER NOT NULL,
		ppe_address_fact TEXT NOT NULL DEFAULT '',
		exam_type TEXT NOT NULL DEFAULT '',
		auditory_count INTEGER NOT NULL DEFAULT 0,
		school_id INTEGER,
		school_inn TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_dat_ppe_number ON dat_ppe (ppe_number);`,
	`CREATE TABLE IF NOT EXISTS dat_ppe_details (
		id SERIAL PRIMARY KEY,
		ppe_number INTEGER,
		school_id INTEGER,
		fullname TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		inn TEXT NOT NULL DEFAULT '',
		kpp TEXT NOT NULL DEFAULT '',
		okpo TEXT NOT NULL DEFAULT '',
		ogrn TEXT NOT NULL DEFAULT '',
		cur_acc TEXT NOT NULL DEFAULT '',
		bank_acc TEXT NOT NULL DEFAULT '',
		pers_acc TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ppe_details_ppe_number ON dat_ppe_details (ppe_number);`,
	`CREATE INDEX IF NOT EXISTS idx_ppe_details_inn ON dat_ppe_details (inn);`,
	`CREATE INDEX IF NOT EXISTS idx_ppe_details_school_id ON dat_ppe_details (school_id);`,
	`CREATE TABLE IF NOT EXISTS dat_responsible (
		id SERIAL PRIMARY KEY,
		ppe_number INTEGER,
		position TEXT NOT NULL DEFAULT '',
		surname TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		second_name TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE INDEX IF NOT EXISTS idx_responsible_ppe_number ON dat_responsible (ppe_number);`,
	`CREATE TABLE IF NOT EXISTS dat_equip (
		id SERIAL PRIMARY KEY,
		"name_in_1C" TEXT NOT NULL DEFAULT '',
		equip_type TEXT NOT NULL DEFAULT '',
		equip_mark TEXT NOT NULL DEFAULT '',
		equip_mod TEXT NOT NULL DEFAULT '',
		release_year INTEGER,
		equip_price NUMERIC(18,2) NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS dat_contract (
		id SERIAL PRIMARY KEY,
		contract_number TEXT NOT NULL,
		contract_date DATE,
		contract_name TEXT NOT NULL DEFAULT '',
		supplier TEXT NOT NULL DEFAULT '',
		supplier_inn TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contract_number ON dat_contract (contract_number);`,
	`CREATE TABLE IF NOT EXISTS equip_data (
		id SERIAL PRIMARY KEY,
		ppe_id INTEGER NOT NULL,
		equip_id INTEGER NOT NULL REFERENCES dat_equip(id),
		inv_number TEXT NOT NULL DEFAULT '',
		amount INTEGER NOT NULL DEFAULT 1,
		agreement TEXT,
		contract_id INTEGER REFERENCES dat_contract(id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_equip_data_ppe_id ON equip_data (ppe_id);`,
	`CREATE INDEX IF NOT EXISTS idx_equip_data_contract_id ON equip_data (contract_id) WHERE contract_id IS NOT NULL;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
