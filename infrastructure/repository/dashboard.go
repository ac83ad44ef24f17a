// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/heladeria-dashboard/internal/domain"
)

// DashboardRepository carrega o objeto de configuração do painel
type DashboardRepository interface {
	Load() (*domain.Dashboard, error)
	Source() string
}

type dashboardFileRepository struct {
	path string
}

// NewDashboardRepository lê o painel de um arquivo YAML/JSON. Com path vazio usa os dados de referência.
func NewDashboardRepository(path string) DashboardRepository {
	return &dashboardFileRepository{
		path: path,
	}
}

func (r *dashboardFileRepository) Source() string {
	if r.path == "" {
		return "default"
	}
	return r.path
}

// Load monta o painel a partir dos dados de referência, substituindo cada seção presente no arquivo.
// Uma lista vazia no arquivo continua vazia.
func (r *dashboardFileRepository) Load() (*domain.Dashboard, error) {
	dashboard := domain.DefaultDashboard()
	if r.path == "" {
		return &dashboard, nil
	}

	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "repository: erro ao ler arquivo do dashboard %s", r.path)
	}

	if err := decodeDashboard(v, &dashboard); err != nil {
		return nil, errors.Wrapf(err, "repository: erro ao decodificar arquivo do dashboard %s", r.path)
	}

	logrus.WithFields(logrus.Fields{
		"source":   r.path,
		"metrics":  len(dashboard.Metrics),
		"revenue":  len(dashboard.Revenue),
		"products": len(dashboard.Products),
	}).Debug("Dashboard carregado do arquivo")

	return &dashboard, nil
}

// metricEntry é o formato de um card no arquivo; previous/current permitem calcular a variação
type metricEntry struct {
	Title         string              `mapstructure:"title"`
	Value         *domain.MetricValue `mapstructure:"value"`
	ChangePercent *float64            `mapstructure:"change_percent"`
	Current       *float64            `mapstructure:"current"`
	Previous      *float64            `mapstructure:"previous"`
	Currency      bool                `mapstructure:"currency"`
}

func (e metricEntry) toMetricCard() (domain.MetricCard, error) {
	card := domain.MetricCard{
		Title:    e.Title,
		Currency: e.Currency,
	}

	switch {
	case e.Value != nil:
		card.Value = *e.Value
	case e.Current != nil:
		card.Value = domain.NumberValue(*e.Current)
	}

	switch {
	case e.ChangePercent != nil:
		card.ChangePercent = *e.ChangePercent
	case e.Previous != nil:
		current, ok := e.currentNumber()
		if !ok {
			return card, errors.Errorf("métrica %q: previous exige current ou value numérico", e.Title)
		}
		card.ChangePercent = domain.PercentChange(current, *e.Previous)
	}

	return card, nil
}

func (e metricEntry) currentNumber() (float64, bool) {
	if e.Current != nil {
		return *e.Current, true
	}
	if e.Value != nil && !e.Value.IsText() {
		return e.Value.Number(), true
	}
	return 0, false
}

func decodeDashboard(v *viper.Viper, dashboard *domain.Dashboard) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHookFunc(),
		integerHookFunc(),
		metricValueHookFunc(),
	))

	if v.IsSet("metrics") {
		var entries []metricEntry
		if err := v.UnmarshalKey("metrics", &entries, hook); err != nil {
			return errors.Wrap(err, "metrics")
		}

		metrics := make([]domain.MetricCard, 0, len(entries))
		for _, entry := range entries {
			card, err := entry.toMetricCard()
			if err != nil {
				return err
			}
			metrics = append(metrics, card)
		}
		dashboard.Metrics = metrics
	}

	if v.IsSet("revenue") {
		revenue := []domain.RevenuePoint{}
		if err := v.UnmarshalKey("revenue", &revenue, hook); err != nil {
			return errors.Wrap(err, "revenue")
		}
		dashboard.Revenue = revenue
	}

	if v.IsSet("products") {
		products := []domain.ProductRanking{}
		if err := v.UnmarshalKey("products", &products, hook); err != nil {
			return errors.Wrap(err, "products")
		}
		dashboard.Products = products
	}

	if v.IsSet("orders") {
		if err := v.UnmarshalKey("orders", &dashboard.Orders, hook); err != nil {
			return errors.Wrap(err, "orders")
		}
	}

	if v.IsSet("quick_facts") {
		if err := v.UnmarshalKey("quick_facts", &dashboard.QuickFacts, hook); err != nil {
			return errors.Wrap(err, "quick_facts")
		}
	}

	for key, target := range map[string]*string{
		"period_label":   &dashboard.PeriodLabel,
		"revenue_title":  &dashboard.RevenueTitle,
		"products_title": &dashboard.ProductsTitle,
	} {
		if v.IsSet(key) {
			*target = v.GetString(key)
		}
	}

	return nil
}
