package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/repository"
)

type InventoryExporter interface {
	Generate(card model.FacilityCard) ([]byte, error)
}

type PassportGenerator interface {
	Generate(card model.FacilityCard) ([]byte, error)
}

type PlanLocator interface {
	Find(ppeNumber int) (string, bool)
}

// RegistryService отвечает за просмотр реестра: списки ППЭ, карточки,
// поэтажные планы и экспорт сводок.
type RegistryService struct {
	facilities *repository.FacilityRepository
	equipment  *repository.EquipmentRepository
	contracts  *repository.ContractRepository
	excel      InventoryExporter
	pdf        PassportGenerator
	plans      PlanLocator
	log        zerolog.Logger
}

func NewRegistryService(
	facilities *repository.FacilityRepository,
	equipment *repository.EquipmentRepository,
	contracts *repository.ContractRepository,
	excel InventoryExporter,
	pdf PassportGenerator,
	plans PlanLocator,
	log zerolog.Logger,
) *RegistryService {
	return &RegistryService{
		facilities: facilities,
		equipment:  equipment,
		contracts:  contracts,
		excel:      excel,
		pdf:        pdf,
		plans:      plans,
		log:        log,
	}
}

func (s *RegistryService) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	return s.facilities.List(ctx)
}

// FacilityCard собирает карточку ППЭ. Отсутствие самого ППЭ — ErrNotFound;
// отсутствие реквизитов, ответственного, оборудования или договоров даёт
// пустые разделы карточки.
func (s *RegistryService) FacilityCard(ctx context.Context, ppeNumber int) (*model.FacilityCard, error) {
	facility, err := s.facilities.GetByNumber(ctx, ppeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ppe %d", ErrNotFound, ppeNumber)
		}
		return nil, err
	}

	card := &model.FacilityCard{Facility: *facility}

	if org, found, err := s.facilities.GetOrganizationByFacility(ctx, ppeNumber); err != nil {
		s.log.Warn().Err(err).Int("ppe", ppeNumber).Msg("failed to load organization details")
	} else if found {
		card.Organization = org
	}

	if person, found, err := s.facilities.GetResponsibleByFacility(ctx, ppeNumber); err != nil {
		s.log.Warn().Err(err).Int("ppe", ppeNumber).Msg("failed to load responsible person")
	} else if found {
		card.Responsible = person
	}

	if equipment, err := s.equipment.ListOverviewByFacility(ctx, ppeNumber); err != nil {
		s.log.Warn().Err(err).Int("ppe", ppeNumber).Msg("failed to load equipment")
	} else {
		card.Equipment = equipment
	}

	if contracts, err := s.contracts.ListByFacility(ctx, ppeNumber); err != nil {
		s.log.Warn().Err(err).Int("ppe", ppeNumber).Msg("failed to load contracts")
	} else {
		card.Contracts = contracts
	}

	return card, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportInventory формирует книгу Excel со сводкой оборудования ППЭ.
func (s *RegistryService) ExportInventory(ctx context.Context, ppeNumber int) (*ExportResult, error) {
	card, err := s.FacilityCard(ctx, ppeNumber)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*card)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("ppe-%d-equipment.xlsx", ppeNumber),
		Content:  content,
	}, nil
}

// Passport формирует PDF-паспорт ППЭ.
func (s *RegistryService) Passport(ctx context.Context, ppeNumber int) (*ExportResult, error) {
	card, err := s.FacilityCard(ctx, ppeNumber)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*card)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("ppe-%d-passport.pdf", ppeNumber),
		Content:  content,
	}, nil
}

// PlanPath возвращает путь к поэтажному плану ППЭ.
func (s *RegistryService) PlanPath(ppeNumber int) (string, error) {
	path, found := s.plans.Find(ppeNumber)
	if !found {
		return "", fmt.Errorf("%w: floor plan for ppe %d", ErrNotFound, ppeNumber)
	}
	return path, nil
}
