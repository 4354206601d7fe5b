// Package pgsource lê as tabelas mestre e de atividades do banco postgres
package pgsource

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kol-dashboard-api/infrastructure/source/columns"
	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

const Name = "postgres"

type Source struct {
	repo    repository.KolRepository
	mapping columns.Mapping
	now     func() time.Time
}

func New(repo repository.KolRepository) *Source {
	return &Source{
		repo:    repo,
		mapping: columns.DefaultMapping(),
		now:     time.Now,
	}
}

func (s *Source) Name() string {
	return Name
}

func (s *Source) Fetch(ctx context.Context) (*domain.RawDataset, error) {
	header, records, err := s.repo.GetMasterTable(ctx)
	if err != nil {
		return nil, domain.NewUnavailableError(Name, domain.TableMaster, err)
	}
	master := columns.ResolveTable(domain.TableMaster, header, records, s.mapping, 1)

	header, records, err = s.repo.GetActivitiesTable(ctx)
	if err != nil {
		return nil, domain.NewUnavailableError(Name, domain.TableActivities, err)
	}
	activities := columns.ResolveTable(domain.TableActivities, header, records, s.mapping, 1)

	logrus.WithFields(logrus.Fields{
		"master_rows":     len(master.Rows),
		"activities_rows": len(activities.Rows),
	}).Debug("source/postgres: tables fetched")

	return &domain.RawDataset{
		Source:     Name,
		Master:     master,
		Activities: activities,
		FetchedAt:  s.now(),
	}, nil
}
