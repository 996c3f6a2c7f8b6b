package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/config"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/docx"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/morph"
)

const (
	zeroTotal     = "0.00"
	zeroTotalText = "Ноль рублей 00 копеек"
	dateLayout    = "02.01.2006"
)

type EquipmentStore interface {
	ListUnclaimedByFacility(ctx context.Context, ppeNumber int) ([]model.EquipmentRow, error)
	ListUnclaimedByINN(ctx context.Context, inn string) ([]model.EquipmentRow, error)
	ListUnclaimedBySchool(ctx context.Context, schoolID int) ([]model.EquipmentRow, error)
	Claim(ctx context.Context, ppeNumber int, agreement string) (int64, error)
}

type OrganizationStore interface {
	GetOrganizationByFacility(ctx context.Context, ppeNumber int) (model.Organization, bool, error)
	GetOrganizationByINN(ctx context.Context, inn string) (model.Organization, bool, error)
	GetOrganizationBySchool(ctx context.Context, schoolID int) (model.Organization, bool, error)
	GetResponsibleByFacility(ctx context.Context, ppeNumber int) (model.ResponsiblePerson, bool, error)
	GetResponsibleByINN(ctx context.Context, inn string) (model.ResponsiblePerson, bool, error)
	GetResponsibleBySchool(ctx context.Context, schoolID int) (model.ResponsiblePerson, bool, error)
}

type ContractStore interface {
	GetMetaByFacility(ctx context.Context, ppeNumber int) (model.ContractMeta, bool, error)
	Save(ctx context.Context, ppeNumber int, number string, date time.Time, name string) (int, error)
}

// ContractService собирает контекст договора из реестра, склоняет текстовые
// поля и заполняет шаблон Word. Любой сбой отдельного шага, кроме отсутствия
// шаблона, заменяется безопасным значением по умолчанию: документ
// формируется всегда, когда есть шаблон.
type ContractService struct {
	equipment EquipmentStore
	orgs      OrganizationStore
	contracts ContractStore

	templatePaths []string
	templateDir   string
	outputDir     string

	now func() time.Time
	log zerolog.Logger
}

func NewContractService(
	equipment EquipmentStore,
	orgs OrganizationStore,
	contracts ContractStore,
	cfg *config.Config,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		equipment:     equipment,
		orgs:          orgs,
		contracts:     contracts,
		templatePaths: cfg.Contracts.TemplatePaths,
		templateDir:   cfg.Contracts.TemplateDir,
		outputDir:     cfg.Contracts.OutputDir,
		now:           time.Now,
		log:           log,
	}
}

type GenerateContractInput struct {
	Kind           model.IdentifierKind
	Identifier     string
	OutputPath     string // пусто — путь по умолчанию в OutputDir
	CodeContract   string
	ContractNumber string
	ContractDate   string // ДД.ММ.ГГГГ; пусто или неразборчиво — текущая дата
	ClaimEquipment bool
}

type GenerateContractResult struct {
	Path             string
	EquipmentClaimed int64
}

// GenerateContract выполняет полный конвейер генерации договора.
// Возвращает ошибку только при фатальных условиях: нет шаблона, нечитаемый
// шаблон, сбой записи результата, неподдерживаемый идентификатор.
func (s *ContractService) GenerateContract(ctx context.Context, input GenerateContractInput) (*GenerateContractResult, error) {
	if strings.TrimSpace(input.Identifier) == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}
	if err := validateIdentifier(input.Kind, input.Identifier); err != nil {
		return nil, err
	}

	templatePath, err := docx.FindTemplate(s.templatePaths, s.templateDir)
	if err != nil {
		s.log.Error().Err(err).Strs("candidates", s.templatePaths).Msg("contract template not found")
		return nil, err
	}
	template, err := docx.Open(templatePath)
	if err != nil {
		return nil, err
	}

	contractDate := s.resolveDate(input.ContractDate)

	rctx := model.RenderContext{
		CodeContract: input.CodeContract,
		Day:          contractDate.Day(),
		MonthName:    morph.MonthNameGenitive(int(contractDate.Month())),
		Year:         contractDate.Year(),
		YearNext:     contractDate.Year() + 1,
	}

	s.fillContractMeta(ctx, input, &rctx)
	s.fillEquipment(ctx, input, &rctx)
	s.fillParties(ctx, input, &rctx)

	fields := rctx.Fields()
	s.reportUnknownPlaceholders(template, fields)

	rows := make([]map[string]string, 0, len(rctx.Equipment))
	for _, group := range rctx.Equipment {
		rows = append(rows, model.EquipmentRowFields(group))
	}
	template.Render(fields, rows, model.EquipmentPlaceholders())

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(s.outputDir, defaultFileName(rctx.NumContract, input.Identifier))
	}
	if err := template.SaveTo(outputPath); err != nil {
		s.log.Error().Err(err).Str("path", outputPath).Msg("failed to save contract document")
		return nil, err
	}

	result := &GenerateContractResult{Path: outputPath}

	if input.ClaimEquipment && input.Kind == model.ByFacilityNumber {
		ppeNumber, _ := strconv.Atoi(input.Identifier)
		agreement := fmt.Sprintf("%s/%d", input.ContractNumber, contractDate.Year())
		claimed, err := s.equipment.Claim(ctx, ppeNumber, agreement)
		if err != nil {
			s.log.Error().Err(err).Int("ppe", ppeNumber).Msg("failed to claim equipment for contract")
		} else {
			result.EquipmentClaimed = claimed
		}
	}

	s.log.Info().Str("path", outputPath).Str("identifier", input.Identifier).Msg("contract generated")
	return result, nil
}

// SaveContract создаёт или обновляет запись договора и привязывает к ней
// оборудование ППЭ.
func (s *ContractService) SaveContract(ctx context.Context, ppeNumber int, number, dateRaw, name string) (int, error) {
	if strings.TrimSpace(number) == "" {
		return 0, fmt.Errorf("%w: contract number is required", ErrInvalidInput)
	}
	date, err := time.Parse(dateLayout, dateRaw)
	if err != nil {
		return 0, fmt.Errorf("%w: date must be in DD.MM.YYYY format", ErrInvalidInput)
	}
	if name == "" {
		name = fmt.Sprintf("Договор %s от %s", number, dateRaw)
	}
	return s.contracts.Save(ctx, ppeNumber, number, date, name)
}

// DefaultContractNumber возвращает стандартный номер договора для ППЭ.
func DefaultContractNumber(ppeNumber int) string {
	return fmt.Sprintf("ППЭ-%d", ppeNumber)
}

// ValidateContractDate проверяет формат даты договора.
func ValidateContractDate(raw string) bool {
	_, err := time.Parse(dateLayout, raw)
	return err == nil
}

func (s *ContractService) resolveDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now()
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		s.log.Warn().Str("date", raw).Msg("invalid contract date, falling back to current date")
		return s.now()
	}
	return parsed
}

// fillContractMeta подставляет реквизиты связанного договора; их отсутствие
// не прерывает генерацию.
func (s *ContractService) fillContractMeta(ctx context.Context, input GenerateContractInput, rctx *model.RenderContext) {
	rctx.NumContract = input.ContractNumber

	if input.Kind != model.ByFacilityNumber {
		return
	}
	ppeNumber, _ := strconv.Atoi(input.Identifier)
	meta, found, err := s.contracts.GetMetaByFacility(ctx, ppeNumber)
	if err != nil {
		s.log.Warn().Err(err).Int("ppe", ppeNumber).Msg("failed to load contract details")
		return
	}
	if !found {
		s.log.Warn().Int("ppe", ppeNumber).Msg("no contract found for ppe, fields left empty")
		return
	}
	if rctx.NumContract == "" {
		rctx.NumContract = meta.Number
	}
	rctx.DateContract = meta.Date
	rctx.NameContract = meta.Name
}

// fillEquipment агрегирует незакреплённое оборудование и считает итог.
// Сбой запроса даёт пустую таблицу и нулевую сумму.
func (s *ContractService) fillEquipment(ctx context.Context, input GenerateContractInput, rctx *model.RenderContext) {
	rctx.Total = zeroTotal
	rctx.TotalPriceText = zeroTotalText

	rows, err := s.listEquipment(ctx, input.Kind, input.Identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", input.Identifier).Msg("failed to load equipment, table will be empty")
		return
	}
	groups := model.AggregateEquipment(rows)
	if len(groups) == 0 {
		s.log.Warn().Str("identifier", input.Identifier).Msg("equipment list is empty")
		return
	}

	total := model.TotalAmount(groups)
	rctx.Equipment = groups
	rctx.Total = fmt.Sprintf("%.2f", total)
	rctx.TotalPriceText = morph.AmountToWords(total)
}

func (s *ContractService) listEquipment(ctx context.Context, kind model.IdentifierKind, identifier string) ([]model.EquipmentRow, error) {
	switch kind {
	case model.ByFacilityNumber:
		ppeNumber, _ := strconv.Atoi(identifier)
		return s.equipment.ListUnclaimedByFacility(ctx, ppeNumber)
	case model.ByINN:
		return s.equipment.ListUnclaimedByINN(ctx, identifier)
	case model.BySchoolID:
		schoolID, _ := strconv.Atoi(identifier)
		return s.equipment.ListUnclaimedBySchool(ctx, schoolID)
	default:
		return nil, fmt.Errorf("%w: unknown identifier kind %q", ErrInvalidInput, kind)
	}
}

// fillParties подставляет реквизиты организации и ответственное лицо вместе
// с падежными вариантами. Отсутствующие данные остаются пустыми строками,
// подписные строки в шаблоне выходят незаполненными.
func (s *ContractService) fillParties(ctx context.Context, input GenerateContractInput, rctx *model.RenderContext) {
	org, found, err := s.lookupOrganization(ctx, input.Kind, input.Identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", input.Identifier).Msg("failed to load organization details")
	} else if !found {
		s.log.Warn().Str("identifier", input.Identifier).Msg("organization details not found")
	}
	rctx.SchoolFullname = org.FullName
	rctx.SchoolAddress = org.Address
	rctx.INN = org.INN
	rctx.KPP = org.KPP
	rctx.OKPO = org.OKPO
	rctx.OGRN = org.OGRN
	rctx.CurAcc = org.CurAcc
	rctx.BankAcc = org.BankAcc
	rctx.PersAcc = org.PersAcc

	person, found, err := s.lookupResponsible(ctx, input.Kind, input.Identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", input.Identifier).Msg("failed to load responsible person")
	} else if !found {
		s.log.Warn().Str("identifier", input.Identifier).Msg("responsible person not found")
	}

	rctx.JobTitle = person.JobTitle
	rctx.Surname = person.Surname
	rctx.Name = person.FirstName
	rctx.SecondName = person.SecondName
	rctx.SurnameIO = person.SurnameWithInitials()
	rctx.FullName = person.FullName()

	rctx.JobTitleGen = genitiveOr(person.JobTitle)
	rctx.SurnameGen = genitiveOr(person.Surname)
	rctx.NameGen = genitiveOr(person.FirstName)
	rctx.SecondNameGen = genitiveOr(person.SecondName)
	rctx.FullNameGen = genitiveOr(person.FullName())

	if initials := person.Initials(); initials != "" {
		rctx.SurnameIOGen = strings.TrimSpace(rctx.SurnameGen + " " + initials)
	} else {
		rctx.SurnameIOGen = rctx.SurnameGen
	}
	rctx.JobFullNameGen = joinNonEmpty(rctx.JobTitleGen, rctx.FullNameGen)
	rctx.JobSurnameIOGen = joinNonEmpty(rctx.JobTitleGen, rctx.SurnameIOGen)
}

func (s *ContractService) lookupOrganization(ctx context.Context, kind model.IdentifierKind, identifier string) (model.Organization, bool, error) {
	switch kind {
	case model.ByFacilityNumber:
		ppeNumber, _ := strconv.Atoi(identifier)
		return s.orgs.GetOrganizationByFacility(ctx, ppeNumber)
	case model.ByINN:
		return s.orgs.GetOrganizationByINN(ctx, identifier)
	case model.BySchoolID:
		schoolID, _ := strconv.Atoi(identifier)
		return s.orgs.GetOrganizationBySchool(ctx, schoolID)
	default:
		return model.Organization{}, false, fmt.Errorf("%w: unknown identifier kind %q", ErrInvalidInput, kind)
	}
}

func (s *ContractService) lookupResponsible(ctx context.Context, kind model.IdentifierKind, identifier string) (model.ResponsiblePerson, bool, error) {
	switch kind {
	case model.ByFacilityNumber:
		ppeNumber, _ := strconv.Atoi(identifier)
		return s.orgs.GetResponsibleByFacility(ctx, ppeNumber)
	case model.ByINN:
		return s.orgs.GetResponsibleByINN(ctx, identifier)
	case model.BySchoolID:
		schoolID, _ := strconv.Atoi(identifier)
		return s.orgs.GetResponsibleBySchool(ctx, schoolID)
	default:
		return model.ResponsiblePerson{}, false, fmt.Errorf("%w: unknown identifier kind %q", ErrInvalidInput, kind)
	}
}

func (s *ContractService) reportUnknownPlaceholders(template *docx.Template, fields map[string]string) {
	known := make(map[string]struct{}, len(fields))
	for name := range fields {
		known[name] = struct{}{}
	}
	for _, name := range model.EquipmentPlaceholders() {
		known[name] = struct{}{}
	}

	var unknown []string
	for _, name := range template.Placeholders() {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		s.log.Warn().Strs("placeholders", unknown).Msg("template has placeholders missing from context, they will be blanked")
	}
}

func validateIdentifier(kind model.IdentifierKind, identifier string) error {
	switch kind {
	case model.ByFacilityNumber, model.BySchoolID:
		if _, err := strconv.Atoi(identifier); err != nil {
			return fmt.Errorf("%w: identifier %q must be numeric", ErrInvalidInput, identifier)
		}
	case model.ByINN:
		// ИНН хранится текстом
	default:
		return fmt.Errorf("%w: unknown identifier kind %q", ErrInvalidInput, kind)
	}
	return nil
}

// genitiveOr возвращает родительный падеж либо исходную форму, если
// склонение дало пустой результат.
func genitiveOr(nominative string) string {
	if g := morph.ToGenitive(nominative); g != "" {
		return g
	}
	return nominative
}

func joinNonEmpty(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func defaultFileName(contractNumber, identifier string) string {
	base := sanitizeFileName(contractNumber)
	if base == "" {
		base = sanitizeFileName(identifier)
	}
	return fmt.Sprintf("Договор_%s.docx", base)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			result = append(result, r)
		case r >= 'а' && r <= 'я' || r >= 'А' && r <= 'Я' || r == 'ё' || r == 'Ё':
			result = append(result, r)
		case r == '-' || r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
