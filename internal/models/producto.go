package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rogelioGuerrero/apisupabase/internal/validation"
)

// Table is the default remote collection holding productos
const Table = "productos"

// Producto represents a product row as returned by the store
type Producto struct {
	ID          ID      `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Precio      float64 `json:"precio" db:"precio"`
	Descripcion *string `json:"descripcion" db:"descripcion"`
}

// ProductoInput is the validated payload of a create request
type ProductoInput struct {
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// ProductoPatch is the validated payload of an update request.
// Nil fields are left untouched.
type ProductoPatch struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Precio      *float64 `json:"precio,omitempty"`
	Descripcion *string  `json:"descripcion,omitempty"`
}

// IsEmpty returns true if the patch changes nothing
func (p ProductoPatch) IsEmpty() bool {
	return p.Nombre == nil && p.Precio == nil && p.Descripcion == nil
}

// Apply copies the present fields of the patch onto producto
func (p ProductoPatch) Apply(producto *Producto) {
	if p.Nombre != nil {
		producto.Nombre = *p.Nombre
	}
	if p.Precio != nil {
		producto.Precio = *p.Precio
	}
	if p.Descripcion != nil {
		d := *p.Descripcion
		producto.Descripcion = &d
	}
}

// Columns lists the present fields of the patch in a stable order
func (p ProductoPatch) Columns() ([]string, []any) {
	var cols []string
	var args []any
	if p.Nombre != nil {
		cols = append(cols, "nombre")
		args = append(args, *p.Nombre)
	}
	if p.Precio != nil {
		cols = append(cols, "precio")
		args = append(args, *p.Precio)
	}
	if p.Descripcion != nil {
		cols = append(cols, "descripcion")
		args = append(args, *p.Descripcion)
	}
	return cols, args
}

var productoSchema = validation.NewSchema(
	validation.Field{
		Name:     "nombre",
		Kind:     validation.String,
		Required: true,
		Rules:    "notblank",
		Messages: map[string]string{
			"required": "Nombre es requerido",
			"notblank": "Nombre es requerido",
			"type":     "Nombre debe ser texto",
		},
	},
	validation.Field{
		Name:     "precio",
		Kind:     validation.Number,
		Required: true,
		Rules:    "gt=0",
		Messages: map[string]string{
			"required": "Precio es requerido",
			"gt":       "Precio debe ser positivo",
			"type":     "Precio debe ser un número",
		},
	},
	validation.Field{
		Name: "descripcion",
		Kind: validation.String,
		Messages: map[string]string{
			"type": "Descripcion debe ser texto",
		},
	},
)

var productoPatchSchema = productoSchema.Partial()

// DecodeProductoInput validates a raw create payload.
// The returned error is always validation.Errors.
func DecodeProductoInput(raw map[string]json.RawMessage) (ProductoInput, error) {
	values, err := productoSchema.Parse(raw)
	if err != nil {
		return ProductoInput{}, err
	}

	input := ProductoInput{
		Nombre: values["nombre"].(string),
		Precio: values["precio"].(float64),
	}
	if d, ok := values["descripcion"].(string); ok {
		input.Descripcion = &d
	}
	return input, nil
}

// DecodeProductoPatch validates a raw update payload in partial mode.
// A payload without any known field is rejected.
func DecodeProductoPatch(raw map[string]json.RawMessage) (ProductoPatch, error) {
	values, err := productoPatchSchema.Parse(raw)
	if err != nil {
		return ProductoPatch{}, err
	}

	var patch ProductoPatch
	if n, ok := values["nombre"].(string); ok {
		patch.Nombre = &n
	}
	if p, ok := values["precio"].(float64); ok {
		patch.Precio = &p
	}
	if d, ok := values["descripcion"].(string); ok {
		patch.Descripcion = &d
	}

	if patch.IsEmpty() {
		return ProductoPatch{}, validation.Errors{{
			Tag:     "empty",
			Message: "Se requiere al menos un campo para actualizar",
		}}
	}
	return patch, nil
}

// ID is an opaque store-assigned identifier. Stores key productos by
// bigint identity or uuid, so both JSON numbers and strings are accepted
// and kept in their textual form.
type ID string

// UnmarshalJSON accepts a JSON string, a JSON number or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// ParseID extracts an identifier from a raw JSON value. It reports false
// for a missing or falsy value: absent key, null, false, 0 or a blank
// string. Objects, arrays and true are not identifiers either.
func ParseID(raw json.RawMessage) (ID, bool) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return "", false
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return ID(s), s != ""
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", false
		}
		if f, err := n.Float64(); err != nil || f == 0 {
			return "", false
		}
		return ID(n.String()), true
	}
	return "", false
}
