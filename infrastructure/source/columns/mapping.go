// Package columns resolve os cabeçalhos das fontes para os campos canônicos
package columns

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// Mapping associa o cabeçalho da fonte ao campo canônico, por tabela
type Mapping struct {
	Master     map[string]string `yaml:"master"`
	Activities map[string]string `yaml:"activities"`
}

var canonicalMaster = []string{
	domain.FieldKolID,
	domain.FieldName,
	domain.FieldCountry,
	domain.FieldKolType,
	domain.FieldContractEnd,
	domain.FieldBudgetUSD,
	domain.FieldSpentUSD,
}

var canonicalActivities = []string{
	domain.FieldActivityID,
	domain.FieldKolID,
	domain.FieldActivityType,
	domain.FieldStatus,
	domain.FieldDueDate,
	domain.FieldFileLink,
}

// DefaultMapping cobre os nomes canônicos, os cabeçalhos da planilha e os nomes do CSV
func DefaultMapping() Mapping {
	mapping := Mapping{
		Master:     make(map[string]string),
		Activities: make(map[string]string),
	}

	for _, field := range canonicalMaster {
		mapping.Master[field] = field
	}
	for _, field := range canonicalActivities {
		mapping.Activities[field] = field
	}

	// Cabeçalhos da planilha KOL_Master / Activities
	mapping.Master["Kol_ID"] = domain.FieldKolID
	mapping.Master["Name"] = domain.FieldName
	mapping.Master["Country"] = domain.FieldCountry
	mapping.Master["KOL_Type"] = domain.FieldKolType
	mapping.Master["Contract_End"] = domain.FieldContractEnd
	mapping.Master["Budget (USD)"] = domain.FieldBudgetUSD
	mapping.Master["Spent (USD)"] = domain.FieldSpentUSD

	mapping.Activities["Activity_ID"] = domain.FieldActivityID
	mapping.Activities["Kol_ID"] = domain.FieldKolID
	mapping.Activities["Activity_Type"] = domain.FieldActivityType
	mapping.Activities["Status"] = domain.FieldStatus
	mapping.Activities["Due_Date"] = domain.FieldDueDate
	mapping.Activities["File_Link"] = domain.FieldFileLink

	// Nomes usados nos arquivos CSV exportados
	mapping.Master["Contract"] = domain.FieldKolID
	mapping.Master["KOL Type"] = domain.FieldKolType
	mapping.Master["Contract End Date"] = domain.FieldContractEnd
	mapping.Master["Contract Value (USD)"] = domain.FieldBudgetUSD

	mapping.Activities["Contract"] = domain.FieldKolID
	mapping.Activities["Activity ID"] = domain.FieldActivityID
	mapping.Activities["Activity Type"] = domain.FieldActivityType
	mapping.Activities["Planned Date"] = domain.FieldDueDate
	mapping.Activities["File Link"] = domain.FieldFileLink

	return mapping.normalized()
}

// LoadMapping lê o YAML de sobrescrita e aplica sobre o mapeamento padrão.
// Caminho vazio retorna o padrão.
func LoadMapping(path string) (Mapping, error) {
	mapping := DefaultMapping()
	if path == "" {
		return mapping, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, errors.Wrapf(err, "reading column mapping %s", path)
	}

	override := Mapping{}
	if err := yaml.Unmarshal(content, &override); err != nil {
		return Mapping{}, errors.Wrapf(err, "parsing column mapping %s", path)
	}

	if err := override.validate(); err != nil {
		return Mapping{}, errors.Wrapf(err, "column mapping %s", path)
	}

	override = override.normalized()
	for header, field := range override.Master {
		mapping.Master[header] = field
	}
	for header, field := range override.Activities {
		mapping.Activities[header] = field
	}

	logrus.WithFields(logrus.Fields{
		"path":       path,
		"master":     len(override.Master),
		"activities": len(override.Activities),
	}).Info("columns: mapping override loaded")

	return mapping, nil
}

// ForTable retorna o mapeamento da tabela informada
func (m Mapping) ForTable(table string) map[string]string {
	if table == domain.TableActivities {
		return m.Activities
	}
	return m.Master
}

func (m Mapping) validate() error {
	if err := validateFields(m.Master, canonicalMaster); err != nil {
		return errors.Wrap(err, "master")
	}
	if err := validateFields(m.Activities, canonicalActivities); err != nil {
		return errors.Wrap(err, "activities")
	}
	return nil
}

func validateFields(mapping map[string]string, allowed []string) error {
	for header, field := range mapping {
		if !contains(allowed, field) {
			return errors.Errorf("header %q maps to unknown field %q", header, field)
		}
	}
	return nil
}

func (m Mapping) normalized() Mapping {
	result := Mapping{
		Master:     make(map[string]string, len(m.Master)),
		Activities: make(map[string]string, len(m.Activities)),
	}
	for header, field := range m.Master {
		result.Master[normalizeHeader(header)] = field
	}
	for header, field := range m.Activities {
		result.Activities[normalizeHeader(header)] = field
	}
	return result
}

// normalizeHeader ignora caixa e espaços repetidos
func normalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
