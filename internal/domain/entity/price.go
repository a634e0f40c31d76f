package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Price conserva el precio tal como llegó: texto ("50", "desde $40") o número (50).
// No se normaliza moneda ni se valida el valor numérico.
type Price struct {
	Value   string
	Numeric bool
}

// TextPrice construye un precio de texto.
func TextPrice(v string) Price { return Price{Value: v} }

// NumberPrice construye un precio numérico a partir de su literal JSON.
func NumberPrice(literal string) Price { return Price{Value: literal, Numeric: true} }

// ParsePrice interpreta la entrada de un operador: si es un número JSON válido
// se guarda como número, en otro caso como texto.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	var n json.Number
	if s != "" && s[0] != '"' && json.Unmarshal([]byte(s), &n) == nil {
		return NumberPrice(s)
	}
	return TextPrice(s)
}

// IsEmpty indica si no hay precio.
func (p Price) IsEmpty() bool { return strings.TrimSpace(p.Value) == "" }

func (p Price) String() string { return p.Value }

// MarshalJSON emite el precio con el mismo tipo JSON con que se leyó.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Numeric && p.Value != "" {
		return []byte(p.Value), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON acepta texto, número o null.
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*p = Price{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = TextPrice(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("precio inválido %s: %w", b, err)
	}
	*p = NumberPrice(n.String())
	return nil
}
