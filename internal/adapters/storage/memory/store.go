// Package memory implementa los repositorios en memoria. Todas las tablas viven
// en un único Store con un solo lock, de modo que las reglas de unicidad y de
// claves foráneas se validan igual que en Postgres.
package memory

import (
	"sort"
	"strings"
	"sync"

	"veterinaria-api/internal/domain/appointments"
	"veterinaria-api/internal/domain/appointmentservices"
	"veterinaria-api/internal/domain/breeds"
	"veterinaria-api/internal/domain/categories"
	"veterinaria-api/internal/domain/clients"
	"veterinaria-api/internal/domain/clinicservices"
	"veterinaria-api/internal/domain/employees"
	"veterinaria-api/internal/domain/pets"
	"veterinaria-api/internal/domain/roles"
	"veterinaria-api/internal/domain/species"
	"veterinaria-api/internal/domain/subcategories"
)

type Store struct {
	mu sync.RWMutex

	clients       map[int64]clients.Client
	species       map[int64]species.Species
	breeds        map[int64]breeds.Breed
	pets          map[int64]pets.Pet
	roles         map[int64]roles.Role
	employees     map[int64]employees.Employee
	categories    map[int64]categories.Category
	subcategories map[int64]subcategories.Subcategory
	services      map[int64]clinicservices.ClinicService
	appointments  map[int64]appointments.Appointment
	apptServices  map[int64]appointmentservices.AppointmentService

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{
		clients:       make(map[int64]clients.Client),
		species:       make(map[int64]species.Species),
		breeds:        make(map[int64]breeds.Breed),
		pets:          make(map[int64]pets.Pet),
		roles:         make(map[int64]roles.Role),
		employees:     make(map[int64]employees.Employee),
		categories:    make(map[int64]categories.Category),
		subcategories: make(map[int64]subcategories.Subcategory),
		services:      make(map[int64]clinicservices.ClinicService),
		appointments:  make(map[int64]appointments.Appointment),
		apptServices:  make(map[int64]appointmentservices.AppointmentService),
		seq:           make(map[string]int64),
	}
}

// nextID emula un BIGSERIAL por tabla. Requiere el lock de escritura.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// matches: búsqueda por subcadena sin distinguir mayúsculas, como ILIKE '%term%'.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// compareFold compara como ORDER BY LOWER(col).
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// sortByName ordena por nombre (sin mayúsculas) y luego por id.
func sortByName[T any](items []T, name func(T) string, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		if c := compareFold(name(items[i]), name(items[j])); c != 0 {
			return c < 0
		}
		return id(items[i]) < id(items[j])
	})
}
