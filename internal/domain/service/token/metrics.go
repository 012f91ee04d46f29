package token

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"charity_token/internal/domain"
)

//nolint:gochecknoglobals
var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "charity_token_operations_total",
		Help: "Ledger operations by outcome.",
	},
	[]string{"operation", "status"},
)

// observe counts the operation outcome and passes the error through.
func (s *Service) observe(operation string, err error) error {
	status := "ok"

	if err != nil {
		status = "error"
		if code, ok := domain.GetCode(err); ok {
			status = code.String()
		}
	}

	operationsTotal.WithLabelValues(operation, status).Inc()

	return err
}
