package catalogo

// categorias is the fixed set of product categories offered by the store.
// It is not persisted anywhere; products carry the chosen value as plain text.
var categorias = []string{
	"Herramientas manuales",
	"Herramientas eléctricas",
	"Materiales de construcción",
	"Tornillería y fijaciones",
	"Pinturas y acabados",
	"Plomería",
	"Electricidad",
	"Seguridad industrial",
}

// Categorias returns the allowed product categories.
func Categorias() []string {
	out := make([]string, len(categorias))
	copy(out, categorias)
	return out
}
