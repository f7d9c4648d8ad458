package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	mem "veterinaria-api/internal/adapters/storage/memory"
	"veterinaria-api/internal/domain/appointments"
	"veterinaria-api/internal/router"
)

func TestHTTP_ClientsAndCatalogConstraints(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Cliente sin DNI => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/clientes", map[string]any{
			"PrimerNombre":    "Ana",
			"ApellidoPaterno": "Rojas",
			"ApellidoMaterno": "Vega",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing DNI, got %d body=%s", st, string(body))
		}
	}

	// 2) Cliente válido => 201; mismo DNI otra vez => 409
	createID(t, ts.URL, "/api/clientes", map[string]any{
		"PrimerNombre":    "Ana",
		"ApellidoPaterno": "Rojas",
		"ApellidoMaterno": "Vega",
		"DNI":             "12345678",
	})
	{
		st, body := doReq(t, ts.URL, "POST", "/api/clientes", map[string]any{
			"PrimerNombre":    "Luis",
			"ApellidoPaterno": "Paz",
			"ApellidoMaterno": "Soto",
			"DNI":             "12345678",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicated DNI, got %d body=%s", st, string(body))
		}
	}

	// 3) Especie con raza no se puede borrar hasta quitar la raza
	speciesID := createID(t, ts.URL, "/api/especies", map[string]any{"NombreEspecie": "Perro"})
	breedID := createID(t, ts.URL, "/api/razas", map[string]any{"NombreRaza": "Labrador", "EspecieID": speciesID})
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/especies/"+itoa(speciesID), nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 delete referenced species, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/razas/"+itoa(breedID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete breed, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/especies/"+itoa(speciesID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete species, got %d body=%s", st, string(body))
		}
	}

	// 4) Raza con especie inexistente => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/razas", map[string]any{"NombreRaza": "X", "EspecieID": 999})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 missing species, got %d body=%s", st, string(body))
		}
	}

	// 5) Fuera de los límites de columna => 400 (igual que Postgres)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/especies", map[string]any{"NombreEspecie": strings.Repeat("x", 300)})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 long species name, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/api/servicios", map[string]any{"NombreServicio": "Cirugía", "Precio": 123456789012})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 price out of range, got %d body=%s", st, string(body))
		}
	}

	// 6) Id inexistente => 404 con {"message"}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/clientes/999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != "Cliente no encontrado." {
			t.Fatalf("unexpected 404 body=%s", string(body))
		}
	}
}

func TestHTTP_ListSearchAndOrder(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, name := range []string{"zorro", "Gato", "ave"} {
		createID(t, ts.URL, "/api/especies", map[string]any{"NombreEspecie": name})
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/especies", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []struct {
			Name string `json:"NombreEspecie"`
		}
		_ = json.Unmarshal(body, &items)
		got := []string{}
		for _, it := range items {
			got = append(got, it.Name)
		}
		want := []string{"ave", "Gato", "zorro"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/especies?search=GAT", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
		}
		var items []struct {
			Name string `json:"NombreEspecie"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Name != "Gato" {
			t.Fatalf("expected only Gato, got body=%s", string(body))
		}
	}

	// Sin coincidencias => lista vacía, no null
	{
		st, body := doReq(t, ts.URL, "GET", "/api/especies?search=nada", nil)
		if st != http.StatusOK || string(bytes.TrimSpace(body)) != "[]" {
			t.Fatalf("expected 200 [], got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_AppointmentsDatesAndReport(t *testing.T) {
	store := mem.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	petID, employeeID := seedPetAndEmployee(t, ts.URL)

	// 1) Cita para ayer => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/citas", map[string]any{
			"Fecha":      time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
			"MascotaID":  petID,
			"EmpleadoID": employeeID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 past appointment, got %d body=%s", st, string(body))
		}
	}

	// 2) Cita en una hora => 201, estado por defecto Pendiente
	citaID := createID(t, ts.URL, "/api/citas", map[string]any{
		"Fecha":      time.Now().Add(time.Hour).Format(time.RFC3339),
		"MascotaID":  petID,
		"EmpleadoID": employeeID,
	})
	{
		st, body := doReq(t, ts.URL, "GET", "/api/citas/"+itoa(citaID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get appointment, got %d body=%s", st, string(body))
		}
		var resp struct {
			Estado string `json:"Estado"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Estado != string(appointments.StatusPending) {
			t.Fatalf("expected default status Pendiente, got body=%s", string(body))
		}
	}

	// 3) Cita ya vencida (sembrada directo en el store)
	past := time.Now().AddDate(0, 0, -3).Truncate(time.Minute)
	pastID, err := mem.NewAppointmentsRepo(store).Create(context.Background(), appointments.Appointment{
		Date:       past,
		Status:     appointments.StatusScheduled,
		PetID:      petID,
		EmployeeID: employeeID,
		CreatedAt:  past,
		UpdatedAt:  past,
	})
	if err != nil {
		t.Fatalf("seed past appointment: %v", err)
	}

	// 3a) Cambiar solo el estado manteniendo la fecha vencida => 200
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/citas/"+itoa(pastID), map[string]any{
			"Fecha":      past.Format(time.RFC3339),
			"Estado":     "Completada",
			"MascotaID":  petID,
			"EmpleadoID": employeeID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status-only update, got %d body=%s", st, string(body))
		}
	}

	// 3b) Moverla a otra fecha pasada => 400
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/citas/"+itoa(pastID), map[string]any{
			"Fecha":      past.AddDate(0, 0, -2).Format(time.RFC3339),
			"Estado":     "Completada",
			"MascotaID":  petID,
			"EmpleadoID": employeeID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 moving to another past date, got %d body=%s", st, string(body))
		}
	}

	// 4) Reporte con dos servicios
	s1 := createID(t, ts.URL, "/api/servicios", map[string]any{"NombreServicio": "Consulta", "Precio": 40})
	s2 := createID(t, ts.URL, "/api/servicios", map[string]any{"NombreServicio": "Vacuna", "Precio": "25.30"})
	createID(t, ts.URL, "/api/citaservicios", map[string]any{"CitaID": citaID, "ServicioID": s1})
	createID(t, ts.URL, "/api/citaservicios", map[string]any{"CitaID": citaID, "ServicioID": s2})

	// mismo servicio dos veces en la cita => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/api/citaservicios", map[string]any{"CitaID": citaID, "ServicioID": s1})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicated service, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/citaservicios/reporte/"+itoa(citaID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 report, got %d body=%s", st, string(body))
		}
		var resp struct {
			CitaID     int64             `json:"CitaID"`
			Servicios  []json.RawMessage `json:"Servicios"`
			TotalPagar float64           `json:"TotalPagar"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.CitaID != citaID || len(resp.Servicios) != 2 || resp.TotalPagar != 65.3 {
			t.Fatalf("unexpected report body=%s", string(body))
		}
	}

	// 5) Reporte de cita inexistente => 404
	{
		st, body := doReq(t, ts.URL, "GET", "/api/citaservicios/reporte/999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 report, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_HealthAndDashboard(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d body=%s", st, string(body))
		}
	}

	seedPetAndEmployee(t, ts.URL)

	{
		st, body := doReq(t, ts.URL, "GET", "/api/dashboard/counts", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 counts, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalClients  int `json:"totalClients"`
			TotalMascotas int `json:"totalMascotas"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.TotalClients != 1 || resp.TotalMascotas != 1 {
			t.Fatalf("unexpected counts body=%s", string(body))
		}
	}

	for _, path := range []string{"/api/dashboard/summary", "/api/dashboard/upcoming-citas?limit=3", "/api/dashboard/recent-activity"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
		}
	}

	// Ruta desconocida => 404 JSON
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/nada", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown route, got %d", st)
		}
	}
}

// Cada ruta montada en el router tiene que aparecer en /swagger/doc.json.
func TestHTTP_SwaggerDocumentsEveryRoute(t *testing.T) {
	h := router.NewRouter(router.Options{})
	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d body=%s", st, string(body))
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("swagger doc is not JSON: %v", err)
	}

	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router is %T, want chi.Routes", h)
	}

	walked := 0
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		walked++
		route = strings.TrimSuffix(route, "/")
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s missing from swagger doc", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	// 11 recursos x 5 operaciones + reporte + 4 de dashboard + /health
	if walked != 61 {
		t.Fatalf("expected 61 routes, walked %d", walked)
	}
}

func seedPetAndEmployee(t *testing.T, baseURL string) (petID, employeeID int64) {
	t.Helper()

	clientID := createID(t, baseURL, "/api/clientes", map[string]any{
		"PrimerNombre":    "María",
		"ApellidoPaterno": "Quispe",
		"ApellidoMaterno": "Huamán",
		"DNI":             "87654321",
	})
	speciesID := createID(t, baseURL, "/api/especies", map[string]any{"NombreEspecie": "Gato"})
	breedID := createID(t, baseURL, "/api/razas", map[string]any{"NombreRaza": "Siamés", "EspecieID": speciesID})
	petID = createID(t, baseURL, "/api/mascotas", map[string]any{
		"Nombre":    "Michi",
		"Edad":      3,
		"Sexo":      "Hembra",
		"ClienteID": clientID,
		"RazaID":    breedID,
	})

	roleID := createID(t, baseURL, "/api/roles", map[string]any{"NombreRol": "Veterinario"})
	employeeID = createID(t, baseURL, "/api/empleados", map[string]any{
		"PrimerNombre":    "Jorge",
		"ApellidoPaterno": "Salas",
		"ApellidoMaterno": "Ruiz",
		"DNI":             "11223344",
		"RolID":           roleID,
	})
	return petID, employeeID
}

func createID(t *testing.T, baseURL, path string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
