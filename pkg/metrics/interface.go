package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por Prometheus ou Logging sem alterar a lógica de negócio.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// MetricType define os tipos suportados.
type MetricType string

const (
	TypeCount     MetricType = "count"
	TypeGauge     MetricType = "gauge"
	TypeHistogram MetricType = "histogram"
)

// Métricas emitidas pela consulta de prêmios.
const (
	LookupRequests = "award_lookup.requests"
	LookupLatency  = "award_lookup.latency_ms"
	ConfigReloads  = "config.reloads"
)

// Outcomes usados na tag "outcome" de LookupRequests.
const (
	OutcomeOK               = "ok"
	OutcomeNoMatch          = "no_match"
	OutcomeMissingMovieID   = "missing_movie_id"
	OutcomeMissingAwardBody = "missing_award_body"
	OutcomeError            = "error"
)
