package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores expuestos en /metrics.
var (
	// MovimientosRegistrados movimientos confirmados, por clase (Ingreso/Egreso).
	MovimientosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inventario",
		Name:      "movimientos_registrados_total",
		Help:      "Movimientos de inventario registrados, por clase.",
	}, []string{"clase"})

	// EgresosRechazados egresos rechazados por stock insuficiente.
	EgresosRechazados = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "inventario",
		Name:      "egresos_rechazados_total",
		Help:      "Egresos rechazados por stock insuficiente.",
	})
)
