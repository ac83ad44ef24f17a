package reporting

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/heladeria-dashboard/infrastructure/repository/mocks"
	"github.com/vfg2006/heladeria-dashboard/internal/domain"
	"github.com/vfg2006/heladeria-dashboard/pkg/apiErrors"
)

func dashboardPtr(d domain.Dashboard) *domain.Dashboard {
	return &d
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockDashboardRepository)
		validate func(t *testing.T, service *Service, err error)
	}{
		{
			name: "carga inicial válida",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().Source().Return("dashboard.yaml")
				repo.EXPECT().Load().Return(dashboardPtr(domain.DefaultDashboard()), nil)
			},
			validate: func(t *testing.T, service *Service, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DefaultDashboard(), service.GetDashboard())

				status := service.Status()
				assert.Equal(t, "dashboard.yaml", status.Source)
				assert.Equal(t, 1, status.Reloads)
				assert.Empty(t, status.LastError)
				assert.NotNil(t, status.LastStarted)
				assert.NotNil(t, status.LastCompleted)
			},
		},
		{
			name: "falha ao ler arquivo",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().Source().Return("dashboard.yaml")
				repo.EXPECT().Load().Return(nil, errors.New("arquivo não encontrado"))
			},
			validate: func(t *testing.T, service *Service, err error) {
				assert.Nil(t, service)
				assert.ErrorIs(t, err, ErrDashboardFile)

				var dashErr *DashboardError
				require.ErrorAs(t, err, &dashErr)
				assert.Equal(t, apiErrors.ErrDashboardSource, dashErr.Code)
				assert.Contains(t, dashErr.Error(), "arquivo não encontrado")
			},
		},
		{
			name: "repositório sem dados",
			setup: func(repo *mocks.MockDashboardRepository) {
				repo.EXPECT().Source().Return("default")
				repo.EXPECT().Load().Return(nil, nil)
			},
			validate: func(t *testing.T, service *Service, err error) {
				assert.Nil(t, service)
				assert.ErrorIs(t, err, ErrDashboardFile)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDashboardRepository(ctrl)
			tt.setup(repo)

			service, err := NewService(repo)
			tt.validate(t, service, err)
		})
	}
}

func TestService_ReloadValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.Dashboard)
		invalid bool
	}{
		{
			name:   "dados de referência",
			mutate: func(d *domain.Dashboard) {},
		},
		{
			name:   "listas vazias",
			mutate: func(d *domain.Dashboard) { d.Metrics, d.Revenue, d.Products = nil, nil, nil },
		},
		{
			name:   "variação negativa é válida",
			mutate: func(d *domain.Dashboard) { d.Metrics[0].ChangePercent = -40 },
		},
		{
			name:    "card sem título",
			mutate:  func(d *domain.Dashboard) { d.Metrics[1].Title = "" },
			invalid: true,
		},
		{
			name:    "mês sem rótulo",
			mutate:  func(d *domain.Dashboard) { d.Revenue[0].Month = "" },
			invalid: true,
		},
		{
			name:    "total negativo",
			mutate:  func(d *domain.Dashboard) { d.Revenue[2].Total = decimal.NewFromInt(-1) },
			invalid: true,
		},
		{
			name:    "unidades negativas",
			mutate:  func(d *domain.Dashboard) { d.Products[0].UnitsSold = -3 },
			invalid: true,
		},
		{
			name:    "produto sem nome",
			mutate:  func(d *domain.Dashboard) { d.Products[2].Name = "" },
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockDashboardRepository(ctrl)

			initial := domain.DefaultDashboard()
			initial.PeriodLabel = "carga inicial"

			next := domain.DefaultDashboard()
			tt.mutate(&next)

			repo.EXPECT().Source().Return("dashboard.yaml")
			gomock.InOrder(
				repo.EXPECT().Load().Return(&initial, nil),
				repo.EXPECT().Load().Return(&next, nil),
			)

			service, err := NewService(repo)
			require.NoError(t, err)

			err = service.Reload()
			status := service.Status()

			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidDashboard)
				var dashErr *DashboardError
				require.ErrorAs(t, err, &dashErr)
				assert.Equal(t, apiErrors.ErrInvalidDashboard, dashErr.Code)

				// o snapshot anterior continua valendo
				assert.Equal(t, "carga inicial", service.GetDashboard().PeriodLabel)
				assert.Equal(t, 1, status.Reloads)
				assert.NotEmpty(t, status.LastError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, next, service.GetDashboard())
			assert.Equal(t, 2, status.Reloads)
			assert.Empty(t, status.LastError)
		})
	}
}

func TestService_ReloadClearsLastError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)

	repo.EXPECT().Source().Return("dashboard.yaml")
	gomock.InOrder(
		repo.EXPECT().Load().Return(dashboardPtr(domain.DefaultDashboard()), nil),
		repo.EXPECT().Load().Return(nil, errors.New("yaml inválido")),
		repo.EXPECT().Load().Return(dashboardPtr(domain.DefaultDashboard()), nil),
	)

	service, err := NewService(repo)
	require.NoError(t, err)

	require.Error(t, service.Reload())
	assert.Contains(t, service.Status().LastError, "yaml inválido")

	require.NoError(t, service.Reload())
	assert.Empty(t, service.Status().LastError)
	assert.Equal(t, 2, service.Status().Reloads)
}
