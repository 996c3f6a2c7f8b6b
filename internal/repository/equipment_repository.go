package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

const unclaimedSelect = `
	SELECT
		ed.id,
		ed.ppe_id AS facility_id,
		de."name_in_1C" AS name,
		de.equip_price AS price,
		COALESCE(ed.inv_number, '') AS inv_number,
		COALESCE(ed.agreement, '') AS agreement
	FROM equip_data ed
	JOIN dat_equip de ON de.id = ed.equip_id
	WHERE (ed.agreement IS NULL OR ed.agreement = '')
`

// ListUnclaimedByFacility возвращает незакреплённое оборудование ППЭ.
// Строки с непустым agreement уже принадлежат действующему договору и в
// выборку не попадают.
func (r *EquipmentRepository) ListUnclaimedByFacility(ctx context.Context, ppeNumber int) ([]model.EquipmentRow, error) {
	var rows []model.EquipmentRow
	err := r.db.WithContext(ctx).Raw(
		unclaimedSelect+` AND ed.ppe_id = ? ORDER BY name ASC`, ppeNumber,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUnclaimedByINN — тот же контракт, но путь поиска через ИНН организации.
func (r *EquipmentRepository) ListUnclaimedByINN(ctx context.Context, inn string) ([]model.EquipmentRow, error) {
	var rows []model.EquipmentRow
	err := r.db.WithContext(ctx).Raw(
		unclaimedSelect+` AND ed.ppe_id IN (
			SELECT ppe_number FROM dat_ppe_details WHERE inn = ?
		) ORDER BY name ASC`, inn,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUnclaimedBySchool — путь поиска через идентификатор организации.
func (r *EquipmentRepository) ListUnclaimedBySchool(ctx context.Context, schoolID int) ([]model.EquipmentRow, error) {
	var rows []model.EquipmentRow
	err := r.db.WithContext(ctx).Raw(
		unclaimedSelect+` AND ed.ppe_id IN (
			SELECT ppe_number FROM dat_ppe_details WHERE school_id = ?
		) ORDER BY name ASC`, schoolID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Claim закрепляет всё незакреплённое оборудование ППЭ за договором:
// записывает agreement вида "<номер>/<год>". Фильтр по пустому agreement
// входит в сам UPDATE, поэтому строку нельзя закрепить дважды даже при
// одновременных вызовах.
func (r *EquipmentRepository) Claim(ctx context.Context, ppeNumber int, agreement string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`
			UPDATE equip_data
			SET agreement = ?
			WHERE ppe_id = ? AND (agreement IS NULL OR agreement = '')
		`, agreement, ppeNumber)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

// LinkContract проставляет contract_id строкам оборудования ППЭ.
func (r *EquipmentRepository) LinkContract(ctx context.Context, ppeNumber, contractID int) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE equip_data
		SET contract_id = ?
		WHERE ppe_id = ?
	`, contractID, ppeNumber).Error
}

// ListOverviewByFacility возвращает сводку оборудования для карточки ППЭ.
func (r *EquipmentRepository) ListOverviewByFacility(ctx context.Context, ppeNumber int) ([]model.EquipmentOverviewRow, error) {
	var rows []model.EquipmentOverviewRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			de.equip_type,
			de.equip_mark,
			de.equip_mod,
			de.release_year,
			ed.amount
		FROM equip_data ed
		JOIN dat_equip de ON de.id = ed.equip_id
		WHERE ed.ppe_id = ?
		ORDER BY de.equip_type ASC, de.equip_mark ASC
	`, ppeNumber).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
