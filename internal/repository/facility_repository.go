package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) List(ctx context.Context) ([]model.Facility, error) {
	var rows []model.Facility
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ppe_number AS number,
			COALESCE(ppe_address_fact, '') AS address_fact,
			COALESCE(exam_type, '') AS exam_type,
			COALESCE(auditory_count, 0) AS auditory_count,
			COALESCE(school_id, 0) AS school_id,
			COALESCE(school_inn, '') AS school_inn
		FROM dat_ppe
		ORDER BY ppe_number ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FacilityRepository) GetByNumber(ctx context.Context, ppeNumber int) (*model.Facility, error) {
	var rows []model.Facility
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ppe_number AS number,
			COALESCE(ppe_address_fact, '') AS address_fact,
			COALESCE(exam_type, '') AS exam_type,
			COALESCE(auditory_count, 0) AS auditory_count,
			COALESCE(school_id, 0) AS school_id,
			COALESCE(school_inn, '') AS school_inn
		FROM dat_ppe
		WHERE ppe_number = ?
		LIMIT 1
	`, ppeNumber).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

const organizationSelect = `
	SELECT
		COALESCE(fullname, '') AS full_name,
		COALESCE(address, '') AS address,
		COALESCE(inn, '') AS inn,
		COALESCE(kpp, '') AS kpp,
		COALESCE(okpo, '') AS okpo,
		COALESCE(ogrn, '') AS ogrn,
		COALESCE(cur_acc, '') AS cur_acc,
		COALESCE(bank_acc, '') AS bank_acc,
		COALESCE(pers_acc, '') AS pers_acc
	FROM dat_ppe_details
`

// GetOrganizationByFacility возвращает реквизиты организации ППЭ.
// Отсутствие записи — не ошибка: возвращается found=false, и вызывающая
// сторона подставляет пустые поля.
func (r *FacilityRepository) GetOrganizationByFacility(ctx context.Context, ppeNumber int) (model.Organization, bool, error) {
	return r.scanOrganization(ctx, organizationSelect+` WHERE ppe_number = ? LIMIT 1`, ppeNumber)
}

func (r *FacilityRepository) GetOrganizationByINN(ctx context.Context, inn string) (model.Organization, bool, error) {
	return r.scanOrganization(ctx, organizationSelect+` WHERE inn = ? LIMIT 1`, inn)
}

func (r *FacilityRepository) GetOrganizationBySchool(ctx context.Context, schoolID int) (model.Organization, bool, error) {
	return r.scanOrganization(ctx, organizationSelect+` WHERE school_id = ? LIMIT 1`, schoolID)
}

func (r *FacilityRepository) scanOrganization(ctx context.Context, query string, arg interface{}) (model.Organization, bool, error) {
	var rows []model.Organization
	if err := r.db.WithContext(ctx).Raw(query, arg).Scan(&rows).Error; err != nil {
		return model.Organization{}, false, err
	}
	if len(rows) == 0 {
		return model.Organization{}, false, nil
	}
	return rows[0], true, nil
}

const responsibleSelect = `
	SELECT
		COALESCE(position, '') AS job_title,
		COALESCE(surname, '') AS surname,
		COALESCE(first_name, '') AS first_name,
		COALESCE(second_name, '') AS second_name
	FROM dat_responsible
`

// GetResponsibleByFacility возвращает ответственное лицо ППЭ; не более
// одной записи на ключ поиска.
func (r *FacilityRepository) GetResponsibleByFacility(ctx context.Context, ppeNumber int) (model.ResponsiblePerson, bool, error) {
	return r.scanResponsible(ctx, responsibleSelect+` WHERE ppe_number = ? LIMIT 1`, ppeNumber)
}

func (r *FacilityRepository) GetResponsibleByINN(ctx context.Context, inn string) (model.ResponsiblePerson, bool, error) {
	return r.scanResponsible(ctx, responsibleSelect+` WHERE ppe_number IN (
		SELECT ppe_number FROM dat_ppe_details WHERE inn = ?
	) LIMIT 1`, inn)
}

func (r *FacilityRepository) GetResponsibleBySchool(ctx context.Context, schoolID int) (model.ResponsiblePerson, bool, error) {
	return r.scanResponsible(ctx, responsibleSelect+` WHERE ppe_number IN (
		SELECT ppe_number FROM dat_ppe_details WHERE school_id = ?
	) LIMIT 1`, schoolID)
}

func (r *FacilityRepository) scanResponsible(ctx context.Context, query string, arg interface{}) (model.ResponsiblePerson, bool, error) {
	var rows []model.ResponsiblePerson
	if err := r.db.WithContext(ctx).Raw(query, arg).Scan(&rows).Error; err != nil {
		return model.ResponsiblePerson{}, false, err
	}
	if len(rows) == 0 {
		return model.ResponsiblePerson{}, false, nil
	}
	return rows[0], true, nil
}
