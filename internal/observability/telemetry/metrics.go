package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	VehiclesRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frota_vehicles_registered_total",
		Help: "Total de motos cadastradas",
	})

	MaintenanceRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frota_maintenance_records_total",
		Help: "Total de manutenções registradas",
	}, []string{"category", "status"})

	MaintenanceSpendTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "frota_maintenance_spend_brl_total",
		Help: "Total gasto em manutenções (BRL)",
	})

	AlertsRaisedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frota_alerts_raised_total",
		Help: "Total de alertas emitidos",
	}, []string{"type", "severity"})

	// Métricas de infraestrutura
	ReportLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frota_report_latency_seconds",
		Help:    "Latência de geração de relatórios",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "frota_database_latency_seconds",
		Help:    "Latência de queries no banco",
		Buckets: prometheus.DefBuckets,
	})
)
