package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rogelioGuerrero/apisupabase/internal/validation"
)

func decodeRaw(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	raw, err := validation.DecodeObject([]byte(s))
	if err != nil {
		t.Fatalf("DecodeObject(%q) error = %v", s, err)
	}
	return raw
}

func TestDecodeProductoInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"nombre":"Pan","precio":1.5,"descripcion":"integral"}`},
		{name: "valid without descripcion", body: `{"nombre":"Pan","precio":1.5}`},
		{name: "missing nombre", body: `{"precio":1.5}`, wantErr: "Nombre es requerido"},
		{name: "blank nombre", body: `{"nombre":"  ","precio":1.5}`, wantErr: "Nombre es requerido"},
		{name: "missing precio", body: `{"nombre":"Pan"}`, wantErr: "Precio es requerido"},
		{name: "zero precio", body: `{"nombre":"Pan","precio":0}`, wantErr: "Precio debe ser positivo"},
		{name: "precio as text", body: `{"nombre":"Pan","precio":"5"}`, wantErr: "Precio debe ser un número"},
		{name: "descripcion as number", body: `{"nombre":"Pan","precio":5,"descripcion":3}`, wantErr: "Descripcion debe ser texto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := DecodeProductoInput(decodeRaw(t, tt.body))
			if tt.wantErr != "" {
				var errs validation.Errors
				if !errors.As(err, &errs) {
					t.Fatalf("DecodeProductoInput() error = %v, want validation.Errors", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("DecodeProductoInput() error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeProductoInput() error = %v", err)
			}
			if input.Nombre != "Pan" || input.Precio != 1.5 {
				t.Errorf("DecodeProductoInput() = %+v", input)
			}
		})
	}
}

func TestDecodeProductoInput_Descripcion(t *testing.T) {
	input, err := DecodeProductoInput(decodeRaw(t, `{"nombre":"Pan","precio":2,"descripcion":"integral","extra":true}`))
	if err != nil {
		t.Fatalf("DecodeProductoInput() error = %v", err)
	}
	if input.Descripcion == nil || *input.Descripcion != "integral" {
		t.Errorf("Descripcion = %v, want integral", input.Descripcion)
	}
}

func TestDecodeProductoPatch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		check   func(t *testing.T, p ProductoPatch)
	}{
		{
			name: "single field",
			body: `{"precio":3}`,
			check: func(t *testing.T, p ProductoPatch) {
				if p.Precio == nil || *p.Precio != 3 {
					t.Errorf("Precio = %v, want 3", p.Precio)
				}
				if p.Nombre != nil || p.Descripcion != nil {
					t.Errorf("unexpected fields in %+v", p)
				}
			},
		},
		{
			name:    "present field keeps its rule",
			body:    `{"nombre":""}`,
			wantErr: "Nombre es requerido",
		},
		{
			name:    "empty patch",
			body:    `{}`,
			wantErr: "Se requiere al menos un campo para actualizar",
		},
		{
			name:    "only unknown keys",
			body:    `{"stock":4}`,
			wantErr: "Se requiere al menos un campo para actualizar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := DecodeProductoPatch(decodeRaw(t, tt.body))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("DecodeProductoPatch() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeProductoPatch() error = %v", err)
			}
			tt.check(t, patch)
		})
	}
}

func TestProductoPatch_ApplyAndColumns(t *testing.T) {
	nombre := "Baguette"
	precio := 4.0
	patch := ProductoPatch{Nombre: &nombre, Precio: &precio}

	producto := Producto{ID: "1", Nombre: "Pan", Precio: 1}
	patch.Apply(&producto)
	if producto.Nombre != "Baguette" || producto.Precio != 4 {
		t.Errorf("Apply() = %+v", producto)
	}
	if producto.Descripcion != nil {
		t.Error("Apply() set an absent field")
	}

	cols, args := patch.Columns()
	if strings.Join(cols, ",") != "nombre,precio" {
		t.Errorf("Columns() = %v", cols)
	}
	if len(args) != 2 || args[0] != "Baguette" || args[1] != 4.0 {
		t.Errorf("Columns() args = %v", args)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   ID
		wantOK bool
	}{
		{name: "absent", raw: "", wantOK: false},
		{name: "null", raw: "null", wantOK: false},
		{name: "false", raw: "false", wantOK: false},
		{name: "true", raw: "true", wantOK: false},
		{name: "zero", raw: "0", wantOK: false},
		{name: "empty string", raw: `""`, wantOK: false},
		{name: "blank string", raw: `"  "`, wantOK: false},
		{name: "object", raw: `{"id":1}`, wantOK: false},
		{name: "array", raw: `[1]`, wantOK: false},
		{name: "number", raw: "42", want: "42", wantOK: true},
		{name: "string", raw: `"42"`, want: "42", wantOK: true},
		{name: "uuid", raw: `"0b7e3c3a-1f7b-4c9e-9d2a-2b1f0b2a9c11"`, want: "0b7e3c3a-1f7b-4c9e-9d2a-2b1f0b2a9c11", wantOK: true},
		{name: "trimmed string", raw: `" 7 "`, want: "7", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(json.RawMessage(tt.raw))
			if ok != tt.wantOK {
				t.Fatalf("ParseID(%s) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseID(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProducto_UnmarshalID(t *testing.T) {
	tests := []struct {
		body string
		want ID
	}{
		{body: `{"id":7,"nombre":"Pan","precio":1}`, want: "7"},
		{body: `{"id":"abc","nombre":"Pan","precio":1}`, want: "abc"},
		{body: `{"id":null,"nombre":"Pan","precio":1}`, want: ""},
	}

	for _, tt := range tests {
		var p Producto
		if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.body, err)
		}
		if p.ID != tt.want {
			t.Errorf("Unmarshal(%s) id = %q, want %q", tt.body, p.ID, tt.want)
		}
	}
}

func TestProducto_MarshalNullDescripcion(t *testing.T) {
	data, err := json.Marshal(Producto{ID: "1", Nombre: "Pan", Precio: 2})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"1","nombre":"Pan","precio":2,"descripcion":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
