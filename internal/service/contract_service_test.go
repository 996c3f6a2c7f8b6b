package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/config"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/docx"
	"github.com/iwemrn/PPEs-and-contracts-equipment/internal/model"
)

const testContractXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Договор № {{num_contract}} от {{day}} {{month_name}} {{year}} г.</w:t></w:r></w:p>
<w:p><w:r><w:t>{{school_fullname}}, в лице {{job_title_rp}} {{fullname_rp}}</w:t></w:r></w:p>
<w:tbl>
<w:tr><w:tc><w:p><w:r><w:t>{{row_number}}</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>{{equip_name}}</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>{{count_equip}}</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>{{total_price}}</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>Итого: {{total}} ({{total_price_text}})</w:t></w:r></w:p>
<w:p><w:r><w:t>ИНН {{INN}} / {{surname_io_rp}}</w:t></w:r></w:p>
</w:body>
</w:document>`

type fakeEquipmentStore struct {
	rows     []model.EquipmentRow
	listErr  error
	claimed  int64
	claimErr error

	claimPpe       int
	claimAgreement string
}

func (f *fakeEquipmentStore) ListUnclaimedByFacility(_ context.Context, _ int) ([]model.EquipmentRow, error) {
	return f.rows, f.listErr
}

func (f *fakeEquipmentStore) ListUnclaimedByINN(_ context.Context, _ string) ([]model.EquipmentRow, error) {
	return f.rows, f.listErr
}

func (f *fakeEquipmentStore) ListUnclaimedBySchool(_ context.Context, _ int) ([]model.EquipmentRow, error) {
	return f.rows, f.listErr
}

func (f *fakeEquipmentStore) Claim(_ context.Context, ppeNumber int, agreement string) (int64, error) {
	f.claimPpe = ppeNumber
	f.claimAgreement = agreement
	return f.claimed, f.claimErr
}

type fakeOrgStore struct {
	org         model.Organization
	orgFound    bool
	person      model.ResponsiblePerson
	personFound bool
}

func (f *fakeOrgStore) GetOrganizationByFacility(_ context.Context, _ int) (model.Organization, bool, error) {
	return f.org, f.orgFound, nil
}

func (f *fakeOrgStore) GetOrganizationByINN(_ context.Context, _ string) (model.Organization, bool, error) {
	return f.org, f.orgFound, nil
}

func (f *fakeOrgStore) GetOrganizationBySchool(_ context.Context, _ int) (model.Organization, bool, error) {
	return f.org, f.orgFound, nil
}

func (f *fakeOrgStore) GetResponsibleByFacility(_ context.Context, _ int) (model.ResponsiblePerson, bool, error) {
	return f.person, f.personFound, nil
}

func (f *fakeOrgStore) GetResponsibleByINN(_ context.Context, _ string) (model.ResponsiblePerson, bool, error) {
	return f.person, f.personFound, nil
}

func (f *fakeOrgStore) GetResponsibleBySchool(_ context.Context, _ int) (model.ResponsiblePerson, bool, error) {
	return f.person, f.personFound, nil
}

type fakeContractStore struct {
	meta  model.ContractMeta
	found bool

	savedPpe    int
	savedNumber string
	savedDate   time.Time
	savedName   string
}

func (f *fakeContractStore) GetMetaByFacility(_ context.Context, _ int) (model.ContractMeta, bool, error) {
	return f.meta, f.found, nil
}

func (f *fakeContractStore) Save(_ context.Context, ppeNumber int, number string, date time.Time, name string) (int, error) {
	f.savedPpe = ppeNumber
	f.savedNumber = number
	f.savedDate = date
	f.savedName = name
	return 42, nil
}

func writeTestTemplate(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(testContractXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(dir, "contract_template.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func readDocumentXML(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("word/document.xml missing in output")
	return ""
}

func newTestService(t *testing.T, equipment *fakeEquipmentStore, orgs *fakeOrgStore, contracts *fakeContractStore, templatePath string) *ContractService {
	t.Helper()
	cfg := &config.Config{
		Contracts: config.ContractsConfig{
			TemplatePaths: []string{templatePath},
			TemplateDir:   t.TempDir(),
			OutputDir:     t.TempDir(),
		},
	}
	svc := NewContractService(equipment, orgs, contracts, cfg, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateContract_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTestTemplate(t, dir)

	equipment := &fakeEquipmentStore{
		rows: []model.EquipmentRow{
			{Name: "Ноутбук", Price: 500, InvNumber: "INV-1"},
			{Name: "Ноутбук", Price: 500, InvNumber: "INV-2"},
		},
	}
	orgs := &fakeOrgStore{
		org: model.Organization{
			FullName: "МБОУ СОШ № 7",
			INN:      "5407123456",
		},
		orgFound: true,
		person: model.ResponsiblePerson{
			JobTitle:   "директор",
			Surname:    "Иванов",
			FirstName:  "Иван",
			SecondName: "Иванович",
		},
		personFound: true,
	}
	contracts := &fakeContractStore{}

	svc := newTestService(t, equipment, orgs, contracts, templatePath)
	outputPath := filepath.Join(dir, "out", "договор.docx")

	result, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:           model.ByFacilityNumber,
		Identifier:     "101",
		OutputPath:     outputPath,
		ContractNumber: "12",
		ContractDate:   "05.03.2025",
	})
	require.NoError(t, err)
	assert.Equal(t, outputPath, result.Path)

	body := readDocumentXML(t, outputPath)
	assert.Contains(t, body, "Договор № 12 от 5 марта 2025 г.")
	assert.Contains(t, body, "МБОУ СОШ № 7, в лице директора Иванова Ивана Ивановича")
	assert.Contains(t, body, "Ноутбук")
	assert.Contains(t, body, "Итого: 1000.00 (Одна тысяча рублей 00 копеек)")
	assert.Contains(t, body, "ИНН 5407123456 / Иванова И.И.")
	assert.NotContains(t, body, "{{")
}

func TestGenerateContract_MissingResponsible(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTestTemplate(t, dir)

	equipment := &fakeEquipmentStore{}
	orgs := &fakeOrgStore{
		org:      model.Organization{FullName: "МБОУ СОШ № 7"},
		orgFound: true,
	}
	svc := newTestService(t, equipment, orgs, &fakeContractStore{}, templatePath)
	outputPath := filepath.Join(dir, "договор.docx")

	result, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:       model.ByFacilityNumber,
		Identifier: "101",
		OutputPath: outputPath,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// отсутствие ответственного и оборудования не мешает генерации
	body := readDocumentXML(t, outputPath)
	assert.Contains(t, body, "Итого: 0.00 (Ноль рублей 00 копеек)")
	assert.NotContains(t, body, "{{")
}

func TestGenerateContract_TemplateMissing(t *testing.T) {
	svc := newTestService(t, &fakeEquipmentStore{}, &fakeOrgStore{}, &fakeContractStore{}, filepath.Join(t.TempDir(), "нет.docx"))

	_, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:       model.ByFacilityNumber,
		Identifier: "101",
	})
	assert.True(t, errors.Is(err, docx.ErrTemplateNotFound))
}

func TestGenerateContract_InvalidIdentifier(t *testing.T) {
	svc := newTestService(t, &fakeEquipmentStore{}, &fakeOrgStore{}, &fakeContractStore{}, "")

	_, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:       model.ByFacilityNumber,
		Identifier: "не число",
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:       model.IdentifierKind("UNKNOWN"),
		Identifier: "101",
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind: model.ByFacilityNumber,
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGenerateContract_ClaimsEquipment(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTestTemplate(t, dir)

	equipment := &fakeEquipmentStore{
		rows:    []model.EquipmentRow{{Name: "Принтер", Price: 300, InvNumber: "INV-9"}},
		claimed: 1,
	}
	svc := newTestService(t, equipment, &fakeOrgStore{}, &fakeContractStore{}, templatePath)

	result, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:           model.ByFacilityNumber,
		Identifier:     "101",
		OutputPath:     filepath.Join(dir, "договор.docx"),
		ContractNumber: "7",
		ContractDate:   "10.02.2025",
		ClaimEquipment: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.EquipmentClaimed)
	assert.Equal(t, 101, equipment.claimPpe)
	assert.Equal(t, "7/2025", equipment.claimAgreement)
}

func TestGenerateContract_ClaimSkippedForINN(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTestTemplate(t, dir)

	equipment := &fakeEquipmentStore{claimed: 5}
	svc := newTestService(t, equipment, &fakeOrgStore{}, &fakeContractStore{}, templatePath)

	result, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:           model.ByINN,
		Identifier:     "5407123456",
		OutputPath:     filepath.Join(dir, "договор.docx"),
		ClaimEquipment: true,
	})
	require.NoError(t, err)

	assert.Zero(t, result.EquipmentClaimed)
	assert.Empty(t, equipment.claimAgreement)
}

func TestGenerateContract_UsesLinkedContractMeta(t *testing.T) {
	dir := t.TempDir()
	templatePath := writeTestTemplate(t, dir)

	contracts := &fakeContractStore{
		meta:  model.ContractMeta{Number: "88/2024", Date: "01.09.2024", Name: "Договор аренды"},
		found: true,
	}
	svc := newTestService(t, &fakeEquipmentStore{}, &fakeOrgStore{}, contracts, templatePath)

	outputPath := filepath.Join(dir, "договор.docx")
	_, err := svc.GenerateContract(context.Background(), GenerateContractInput{
		Kind:       model.ByFacilityNumber,
		Identifier: "101",
		OutputPath: outputPath,
	})
	require.NoError(t, err)

	// номер берётся из привязанного договора, когда он не задан явно
	body := readDocumentXML(t, outputPath)
	assert.Contains(t, body, "Договор № 88/2024")
}

func TestSaveContract(t *testing.T) {
	contracts := &fakeContractStore{}
	svc := newTestService(t, &fakeEquipmentStore{}, &fakeOrgStore{}, contracts, "")

	id, err := svc.SaveContract(context.Background(), 101, "12/2025", "05.03.2025", "")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, 101, contracts.savedPpe)
	assert.Equal(t, "12/2025", contracts.savedNumber)
	assert.Equal(t, "Договор 12/2025 от 05.03.2025", contracts.savedName)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), contracts.savedDate)

	_, err = svc.SaveContract(context.Background(), 101, "", "05.03.2025", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.SaveContract(context.Background(), 101, "12", "2025-03-05", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDefaultContractNumber(t *testing.T) {
	assert.Equal(t, "ППЭ-101", DefaultContractNumber(101))
	assert.True(t, ValidateContractDate("05.03.2025"))
	assert.False(t, ValidateContractDate("2025-03-05"))
}
