package reporting

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/heladeria-dashboard/infrastructure/repository"
	"github.com/vfg2006/heladeria-dashboard/internal/domain"
	"github.com/vfg2006/heladeria-dashboard/pkg/apiErrors"
)

// Service mantém o snapshot do painel carregado do repositório
type Service struct {
	repo     repository.DashboardRepository
	validate *validator.Validate
	snapshot atomic.Pointer[domain.Dashboard]

	mu     sync.Mutex
	status ReloadStatus
	now    func() time.Time
}

// NewService cria o serviço e faz a carga inicial. Dados inválidos na carga inicial impedem a criação.
func NewService(repo repository.DashboardRepository) (*Service, error) {
	s := &Service{
		repo:     repo,
		validate: newValidator(),
		now:      time.Now,
	}
	s.status.Source = repo.Source()

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return validate
}

// GetDashboard retorna uma cópia rasa do snapshot atual
func (s *Service) GetDashboard() domain.Dashboard {
	dashboard := s.snapshot.Load()
	if dashboard == nil {
		return domain.DefaultDashboard()
	}
	return *dashboard
}

// Reload relê o repositório. Em caso de erro o snapshot anterior continua valendo.
func (s *Service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()
	s.status.LastStarted = &started

	dashboard, err := s.load()

	completed := s.now()
	s.status.LastCompleted = &completed

	if err != nil {
		s.status.LastError = err.Error()
		logrus.WithError(err).WithField("source", s.status.Source).Error("Falha ao recarregar dados do painel")
		return err
	}

	s.snapshot.Store(dashboard)
	s.status.LastError = ""
	s.status.Reloads++

	logrus.WithFields(logrus.Fields{
		"source":   s.status.Source,
		"duration": completed.Sub(started).String(),
	}).Info("Dados do painel recarregados")

	return nil
}

// Status retorna uma cópia do estado da última recarga
func (s *Service) Status() ReloadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Service) load() (*domain.Dashboard, error) {
	dashboard, err := s.repo.Load()
	if err != nil {
		return nil, NewDashboardError(ErrDashboardFile, apiErrors.ErrDashboardSource, err.Error())
	}
	if dashboard == nil {
		return nil, NewDashboardError(ErrDashboardFile, apiErrors.ErrDashboardSource, "repositório não retornou dados")
	}

	if err := s.validate.Struct(dashboard); err != nil {
		return nil, NewDashboardError(ErrInvalidDashboard, apiErrors.ErrInvalidDashboard, err.Error())
	}

	return dashboard, nil
}
