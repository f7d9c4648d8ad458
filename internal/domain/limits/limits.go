// Package limits refleja los tamaños de columna de schema.sql, para que ambos
// storages rechacen lo mismo con 400 antes de llegar a la base.
package limits

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"veterinaria-api/internal/domain/apperr"
)

// Largos máximos (VARCHAR(n) cuenta caracteres, no bytes).
const (
	Name        = 100
	ServiceName = 150
	Phone       = 20
	Address     = 255
	Email       = 150
	Sex         = 10
)

// MaxAge: edad es INTEGER.
const MaxAge = math.MaxInt32

// MaxPrice es el tope exclusivo de NUMERIC(10,2).
var MaxPrice = decimal.New(1, 8)

type Field struct {
	Name  string
	Value string
	Max   int
}

// Check devuelve un error de entrada por el primer campo que exceda su largo.
func Check(fields ...Field) error {
	for _, f := range fields {
		if utf8.RuneCountInString(f.Value) > f.Max {
			return apperr.Invalid(fmt.Sprintf("%s no puede superar %d caracteres.", f.Name, f.Max))
		}
	}
	return nil
}
