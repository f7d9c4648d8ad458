package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "veterinaria-api/docs"
	mem "veterinaria-api/internal/adapters/storage/memory"
	pg "veterinaria-api/internal/adapters/storage/postgres"
	"veterinaria-api/internal/domain/appointments"
	"veterinaria-api/internal/domain/appointmentservices"
	"veterinaria-api/internal/domain/breeds"
	"veterinaria-api/internal/domain/categories"
	"veterinaria-api/internal/domain/clients"
	"veterinaria-api/internal/domain/clinicservices"
	"veterinaria-api/internal/domain/dashboard"
	"veterinaria-api/internal/domain/employees"
	"veterinaria-api/internal/domain/pets"
	"veterinaria-api/internal/domain/roles"
	"veterinaria-api/internal/domain/species"
	"veterinaria-api/internal/domain/subcategories"
	"veterinaria-api/internal/middleware"
	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: store in-memory a usar cuando DB es nil (los tests siembran datos aquí).
	Store *mem.Store

	Logger logger.Logger // nil => no loguea

	CORSAllowedOrigins []string // vacío => "*"
}

type repositories struct {
	clients             clients.Repository
	pets                pets.Repository
	species             species.Repository
	breeds              breeds.Repository
	employees           employees.Repository
	roles               roles.Repository
	clinicServices      clinicservices.Repository
	categories          categories.Repository
	subcategories       subcategories.Repository
	appointments        appointments.Repository
	appointmentServices appointmentservices.Repository
	dashboard           dashboard.Repository
}

func postgresRepositories(db *sql.DB) repositories {
	return repositories{
		clients:             pg.NewClientsRepo(db),
		pets:                pg.NewPetsRepo(db),
		species:             pg.NewSpeciesRepo(db),
		breeds:              pg.NewBreedsRepo(db),
		employees:           pg.NewEmployeesRepo(db),
		roles:               pg.NewRolesRepo(db),
		clinicServices:      pg.NewClinicServicesRepo(db),
		categories:          pg.NewCategoriesRepo(db),
		subcategories:       pg.NewSubcategoriesRepo(db),
		appointments:        pg.NewAppointmentsRepo(db),
		appointmentServices: pg.NewAppointmentServicesRepo(db),
		dashboard:           pg.NewDashboardRepo(db),
	}
}

func memoryRepositories(s *mem.Store) repositories {
	return repositories{
		clients:             mem.NewClientsRepo(s),
		pets:                mem.NewPetsRepo(s),
		species:             mem.NewSpeciesRepo(s),
		breeds:              mem.NewBreedsRepo(s),
		employees:           mem.NewEmployeesRepo(s),
		roles:               mem.NewRolesRepo(s),
		clinicServices:      mem.NewClinicServicesRepo(s),
		categories:          mem.NewCategoriesRepo(s),
		subcategories:       mem.NewSubcategoriesRepo(s),
		appointments:        mem.NewAppointmentsRepo(s),
		appointmentServices: mem.NewAppointmentServicesRepo(s),
		dashboard:           mem.NewDashboardRepo(s),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteMessage(w, http.StatusNotFound, "Ruta no encontrada.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		web.WriteErrorMessage(w, http.StatusMethodNotAllowed, "Método no permitido.")
	})

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var repos repositories
	if opts.DB != nil {
		repos = postgresRepositories(opts.DB)
	} else {
		store := opts.Store
		if store == nil {
			store = mem.NewStore()
		}
		repos = memoryRepositories(store)
	}

	// Rutas por módulo
	clients.RegisterRoutes(r, clients.NewService(repos.clients), log)
	pets.RegisterRoutes(r, pets.NewService(repos.pets), log)
	species.RegisterRoutes(r, species.NewService(repos.species), log)
	breeds.RegisterRoutes(r, breeds.NewService(repos.breeds), log)
	employees.RegisterRoutes(r, employees.NewService(repos.employees), log)
	roles.RegisterRoutes(r, roles.NewService(repos.roles), log)
	clinicservices.RegisterRoutes(r, clinicservices.NewService(repos.clinicServices), log)
	categories.RegisterRoutes(r, categories.NewService(repos.categories), log)
	subcategories.RegisterRoutes(r, subcategories.NewService(repos.subcategories), log)
	appointments.RegisterRoutes(r, appointments.NewService(repos.appointments), log)
	appointmentservices.RegisterRoutes(r, appointmentservices.NewService(repos.appointmentServices), log)
	dashboard.RegisterRoutes(r, dashboard.NewService(repos.dashboard), log)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// healthHandler godoc
// @Summary Estado del servicio
// @Description Responde 200 si el servicio está arriba. Con Postgres, además hace ping a la base.
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			web.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			web.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Storage: "postgres"})
			return
		}
		web.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "postgres"})
	}
}
