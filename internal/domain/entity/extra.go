package entity

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Extra miembros JSON que la entidad no declara. Se conservan tal cual para que
// editar un elemento no borre campos agregados por otra herramienta.
type Extra map[string]json.RawMessage

// splitExtra devuelve los miembros de data cuyo nombre no está en known.
// La comparación ignora mayúsculas igual que encoding/json.
func splitExtra(data []byte, known ...string) (Extra, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k := range all {
		for _, name := range known {
			if strings.EqualFold(k, name) {
				delete(all, k)
				break
			}
		}
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// appendExtra agrega los miembros extra al objeto JSON obj, en orden de clave.
func appendExtra(obj []byte, extra Extra) ([]byte, error) {
	if len(extra) == 0 {
		return obj, nil
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(obj[:len(obj)-1])
	needComma := !bytes.Equal(bytes.TrimSpace(obj), []byte("{}"))
	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		if needComma {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(extra[k])
		needComma = true
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
