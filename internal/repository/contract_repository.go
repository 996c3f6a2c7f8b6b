package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractRow struct {
	ID             int
	ContractNumber string
	ContractDate   *time.Time
	ContractName   string
	Supplier       string
	SupplierINN    string
}

// GetMetaByFacility возвращает реквизиты договора, связанного с
// оборудованием ППЭ. Отсутствие договора — не ошибка.
func (r *ContractRepository) GetMetaByFacility(ctx context.Context, ppeNumber int) (model.ContractMeta, bool, error) {
	var rows []contractRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.contract_number,
			c.contract_date,
			COALESCE(c.contract_name, '') AS contract_name
		FROM dat_contract c
		JOIN equip_data ed ON ed.contract_id = c.id
		WHERE ed.ppe_id = ?
		LIMIT 1
	`, ppeNumber).Scan(&rows).Error
	if err != nil {
		return model.ContractMeta{}, false, err
	}
	if len(rows) == 0 {
		return model.ContractMeta{}, false, nil
	}

	meta := model.ContractMeta{
		Number: rows[0].ContractNumber,
		Name:   rows[0].ContractName,
	}
	if rows[0].ContractDate != nil {
		meta.Date = rows[0].ContractDate.Format("02.01.2006")
	}
	return meta, true, nil
}

// ListByFacility возвращает договоры, связанные с оборудованием ППЭ,
// для карточки в реестре.
func (r *ContractRepository) ListByFacility(ctx context.Context, ppeNumber int) ([]model.Contract, error) {
	var rows []contractRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.contract_number,
			c.contract_date,
			COALESCE(c.contract_name, '') AS contract_name,
			COALESCE(c.supplier, '') AS supplier,
			COALESCE(c.supplier_inn, '') AS supplier_inn
		FROM dat_contract c
		WHERE c.id IN (SELECT contract_id FROM equip_data WHERE ppe_id = ?)
		ORDER BY c.contract_date ASC NULLS LAST
	`, ppeNumber).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contract := model.Contract{
			ID:          row.ID,
			Number:      row.ContractNumber,
			Name:        row.ContractName,
			Supplier:    row.Supplier,
			SupplierINN: row.SupplierINN,
		}
		if row.ContractDate != nil {
			contract.Date = *row.ContractDate
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

// Save создаёт договор или обновляет существующий с тем же номером и
// привязывает к нему оборудование ППЭ. Возвращает id договора.
func (r *ContractRepository) Save(ctx context.Context, ppeNumber int, number string, date time.Time, name string) (int, error) {
	var contractID int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int
		if err := tx.Raw(`
			SELECT id FROM dat_contract WHERE contract_number = ? LIMIT 1
		`, number).Scan(&ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			contractID = ids[0]
			if err := tx.Exec(`
				UPDATE dat_contract
				SET contract_date = ?, contract_name = ?
				WHERE id = ?
			`, date, name, contractID).Error; err != nil {
				return err
			}
		} else {
			var inserted []int
			if err := tx.Raw(`
				INSERT INTO dat_contract (contract_number, contract_date, contract_name)
				VALUES (?, ?, ?)
				RETURNING id
			`, number, date, name).Scan(&inserted).Error; err != nil {
				return err
			}
			contractID = inserted[0]
		}

		return tx.Exec(`
			UPDATE equip_data
			SET contract_id = ?
			WHERE ppe_id = ?
		`, contractID, ppeNumber).Error
	})
	if err != nil {
		return 0, err
	}
	return contractID, nil
}
