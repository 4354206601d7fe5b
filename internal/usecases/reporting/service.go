package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/alerting"
	"github.com/vfg2006/kol-dashboard-api/internal/usecases/loading"
)

// DefaultTopKolsLimit é o tamanho padrão do ranking de conclusão
const DefaultTopKolsLimit = 10

type Service struct {
	provider  loading.DatasetProvider
	evaluator *alerting.Evaluator
	topLimit  int
	clock     func() time.Time
}

type Option func(*Service)

// WithClock substitui o relógio usado como "agora" nos alertas e destaques
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// NewService cria o serviço de relatórios. O instante atual é lido no fuso
// informado, o mesmo usado na leitura das datas da fonte.
func NewService(provider loading.DatasetProvider, evaluator *alerting.Evaluator, topLimit int, location *time.Location, opts ...Option) *Service {
	if topLimit <= 0 {
		topLimit = DefaultTopKolsLimit
	}
	if location == nil {
		location = time.Local
	}

	s := &Service{
		provider:  provider,
		evaluator: evaluator,
		topLimit:  topLimit,
		clock: func() time.Time {
			return time.Now().In(location)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) KPIs(ctx context.Context) (domain.KPISummary, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.KPISummary{}, err
	}

	return ComputeKPIs(dataset), nil
}

func (s *Service) Charts(ctx context.Context) (domain.Charts, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.Charts{}, err
	}

	return BuildCharts(dataset, s.topLimit), nil
}

func (s *Service) Alerts(ctx context.Context) (domain.AlertReport, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.AlertReport{}, err
	}

	return s.evaluator.Evaluate(dataset, s.clock()), nil
}

func (s *Service) Dashboard(ctx context.Context, session domain.Session) (domain.Dashboard, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	now := s.clock()
	dashboard := domain.Dashboard{Selection: session.Selection()}

	if session.AllSelected() {
		dashboard.Overview = &domain.Overview{
			KPIs:   ComputeKPIs(dataset),
			Alerts: s.evaluator.Evaluate(dataset, now),
		}
		return dashboard, nil
	}

	kol, ok := dataset.KolByName(session.SelectedKol)
	if !ok {
		logrus.Warnf("reporting: selected kol %q not found in dataset", session.SelectedKol)
		return domain.Dashboard{}, domain.ErrKolNotFound
	}

	detail := BuildKolDetail(dataset, kol, now)
	dashboard.Detail = &detail

	return dashboard, nil
}

func (s *Service) RawData(ctx context.Context, session domain.Session) (domain.RawData, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.RawData{}, err
	}

	return BuildRawData(dataset, session, s.clock(), s.evaluator.WindowDays())
}

func (s *Service) KolOptions(ctx context.Context) ([]string, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	return KolOptions(dataset), nil
}

func (s *Service) KolDetail(ctx context.Context, kolID string) (domain.KolDetail, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.KolDetail{}, err
	}

	kol, ok := dataset.KolByID(kolID)
	if !ok {
		return domain.KolDetail{}, domain.ErrKolNotFound
	}

	return BuildKolDetail(dataset, kol, s.clock()), nil
}

func (s *Service) Periods(ctx context.Context) (domain.AvailablePeriods, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.AvailablePeriods{}, err
	}

	return BuildPeriods(dataset), nil
}

func (s *Service) DataQuality(ctx context.Context) (domain.DataQualityReport, error) {
	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return domain.DataQualityReport{}, err
	}

	return BuildDataQuality(dataset), nil
}

func (s *Service) ValidateSelection(ctx context.Context, name string) error {
	if name == "" || name == domain.SelectionAll {
		return nil
	}

	dataset, err := s.provider.Dataset(ctx)
	if err != nil {
		return err
	}

	if _, ok := dataset.KolByName(name); !ok {
		return domain.ErrKolNotFound
	}

	return nil
}
