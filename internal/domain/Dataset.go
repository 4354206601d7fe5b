package domain

import "time"

// Dataset é o resultado imutável do pipeline de derivação
type Dataset struct {
	Kols       []KolRecord      `json:"kols"`
	Activities []ActivityRecord `json:"activities"`
	Issues     []CoercionIssue  `json:"issues"`
	Source     string           `json:"source"`
	DerivedAt  time.Time        `json:"derived_at"`
}

// CoercionIssue registra um valor que não pôde ser convertido e virou o valor padrão
type CoercionIssue struct {
	Table    string `json:"table"`
	Line     int    `json:"line"`
	RecordID string `json:"record_id"`
	Field    string `json:"field"`
	Value    string `json:"value"`
	Reason   string `json:"reason"`
}

// KolByID retorna o KOL com o ID informado
func (d *Dataset) KolByID(kolID string) (KolRecord, bool) {
	for _, kol := range d.Kols {
		if kol.KolID == kolID {
			return kol, true
		}
	}
	return KolRecord{}, false
}

// KolByName retorna o primeiro KOL com o nome informado
func (d *Dataset) KolByName(name string) (KolRecord, bool) {
	for _, kol := range d.Kols {
		if kol.Name == name {
			return kol, true
		}
	}
	return KolRecord{}, false
}

// ActivitiesOf retorna as atividades de um KOL, na ordem da fonte
func (d *Dataset) ActivitiesOf(kolID string) []ActivityRecord {
	activities := make([]ActivityRecord, 0)
	for _, activity := range d.Activities {
		if activity.KolID == kolID {
			activities = append(activities, activity)
		}
	}
	return activities
}

// KolNames retorna os nomes na ordem da tabela mestre
func (d *Dataset) KolNames() []string {
	names := make([]string, 0, len(d.Kols))
	for _, kol := range d.Kols {
		names = append(names, kol.Name)
	}
	return names
}
