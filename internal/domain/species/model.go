package species

// Species agrupa razas (perro, gato, ...).
type Species struct {
	ID   int64  `json:"EspecieID"`
	Name string `json:"NombreEspecie"`
}

type Input struct {
	Name string `json:"NombreEspecie"`
}
