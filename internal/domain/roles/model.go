package roles

// Role es el puesto de un empleado (veterinario, recepcionista, ...).
type Role struct {
	ID   int64  `json:"RolID"`
	Name string `json:"NombreRol"`
}

type Input struct {
	Name string `json:"NombreRol"`
}
