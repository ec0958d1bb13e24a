// Package adapter приводит ответы источников операторов к каноническому виду.
package adapter

import (
	"sort"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
)

const (
	OperatorTelia      = "telia"
	OperatorTre        = "tre"
	OperatorLycamobile = "lycamobile"
)

// Adapter разбирает сырой ответ одного источника.
// Ошибка разбора всего ответа возвращается как (nil, err). Ошибки отдельных
// элементов не прерывают разбор: корректные записи возвращаются вместе с ошибкой.
type Adapter interface {
	Operator() string
	Normalize(payload []byte) ([]models.CanonicalOutage, error)
}

// Registry хранит адаптеры по имени оператора
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Operator()] = a
	}
	return r
}

// DefaultRegistry собирает адаптеры всех поддерживаемых операторов
func DefaultRegistry(clock clockwork.Clock) *Registry {
	in := region.NewInferrer(region.Seed())
	return NewRegistry(
		NewTelia(in, clock),
		NewLycamobile(in),
		NewTre(in, clock),
	)
}

func (r *Registry) Get(operator string) (Adapter, bool) {
	a, ok := r.adapters[operator]
	return a, ok
}

// Operators возвращает отсортированный список операторов
func (r *Registry) Operators() []string {
	out := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
