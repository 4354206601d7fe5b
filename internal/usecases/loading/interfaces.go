package loading

import (
	"context"

	"github.com/vfg2006/kol-dashboard-api/internal/domain"
)

// DatasetProvider entrega o dataset derivado, usando o cache enquanto válido
type DatasetProvider interface {
	// Dataset devolve o dataset atual ou um *domain.DataLoadError ("sem dados")
	Dataset(ctx context.Context) (*domain.Dataset, error)
	// Refresh descarta a entrada atual e carrega novamente
	Refresh(ctx context.Context) (*domain.Dataset, error)
	// Invalidate descarta a entrada atual; a próxima leitura recarrega
	Invalidate()
	Status() domain.CacheStatus
}
