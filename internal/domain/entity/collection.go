package entity

import "encoding/json"

// Collection documento completo persistido: los elementos se guardan tal cual
// llegaron (sin validar forma) junto con su sello de versión.
type Collection struct {
	Items   []json.RawMessage
	Version string
}
