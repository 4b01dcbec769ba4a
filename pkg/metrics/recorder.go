package metrics

import (
	"sync"
	"time"
)

// RecordLookup emite o contador e a latência de uma consulta.
// Falhas de envio são ignoradas: métricas nunca alteram a resposta.
func RecordLookup(p Provider, outcome string, elapsed time.Duration, tags ...string) {
	if p == nil {
		return
	}
	all := append([]string{"outcome:" + outcome}, tags...)
	_ = p.Count(LookupRequests, 1, all)
	_ = p.Histogram(LookupLatency, float64(elapsed.Microseconds())/1000, all)
}

// Sample é uma métrica registrada pelo InMemoryProvider.
type Sample struct {
	Type  MetricType
	Name  string
	Value float64
	Tags  []string
}

// InMemoryProvider guarda todas as amostras em memória, sem limite. Uso
// restrito a testes: em processos longos use observability.SetupMetrics.
type InMemoryProvider struct {
	mu      sync.Mutex
	samples []Sample
}

func (m *InMemoryProvider) record(t MetricType, name string, value float64, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, Sample{Type: t, Name: name, Value: value, Tags: append([]string(nil), tags...)})
	return nil
}

func (m *InMemoryProvider) Count(name string, value float64, tags []string) error {
	return m.record(TypeCount, name, value, tags)
}

func (m *InMemoryProvider) Gauge(name string, value float64, tags []string) error {
	return m.record(TypeGauge, name, value, tags)
}

func (m *InMemoryProvider) Histogram(name string, value float64, tags []string) error {
	return m.record(TypeHistogram, name, value, tags)
}

// Samples retorna uma cópia das métricas registradas, filtrando por nome
// quando informado.
func (m *InMemoryProvider) Samples(name string) []Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Sample
	for _, s := range m.samples {
		if name == "" || s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
