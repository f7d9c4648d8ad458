// Package jsonx contiene tipos JSON tolerantes para los formularios del SPA,
// que a veces mandan ids y números como strings ("3") o vacíos ("").
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Int es un entero opcional. Acepta número, string numérico, null o "".
// Valid=false significa "no enviado".
type Int struct {
	Value int64
	Valid bool
}

// NewInt construye un Int presente.
func NewInt(v int64) Int {
	return Int{Value: v, Valid: true}
}

func (i *Int) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*i = Int{}
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*i = Int{}
			return nil
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Toleramos 3.0 pero no 3.5.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("jsonx: %q is not an integer", raw)
		}
		v = int64(f)
	}

	*i = Int{Value: v, Valid: true}
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(i.Value, 10)), nil
}

// Ptr devuelve nil si no es válido.
func (i Int) Ptr() *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// Positive indica si viene presente y > 0 (equivale al `!id` del formulario).
func (i Int) Positive() bool {
	return i.Valid && i.Value > 0
}
