package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenericPrefix se usa para categorías fuera de la lista oficial.
const GenericPrefix = "GEN"

// Category es una categoría oficial del catálogo con su prefijo de SKU.
type Category struct {
	Name string
	Code string // prefijo de SKU, tres letras
}

// OfficialCategories es la lista oficial, en el orden en que se muestra en caja.
var OfficialCategories = []Category{
	{Name: "Carnes", Code: "CAR"},
	{Name: "Lácteos", Code: "LAC"},
	{Name: "Vegetales", Code: "VEG"},
	{Name: "Frutas", Code: "FRU"},
	{Name: "Higiene Personal", Code: "PER"},
	{Name: "Higiene del Hogar", Code: "HOG"},
	{Name: "Agua y Refrescos", Code: "BEB"},
	{Name: "Panadería", Code: "PAN"},
	{Name: "Abarrotes", Code: "ABA"},
}

// LookupCategory busca una categoría oficial ignorando mayúsculas, tildes y
// espacios sobrantes ("lacteos" encuentra "Lácteos").
func LookupCategory(name string) (Category, bool) {
	key := FoldText(name)
	if key == "" {
		return Category{}, false
	}
	for _, c := range OfficialCategories {
		if FoldText(c.Name) == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryPrefix devuelve el prefijo de SKU de la categoría o GenericPrefix.
func CategoryPrefix(name string) string {
	if c, ok := LookupCategory(name); ok {
		return c.Code
	}
	return GenericPrefix
}

// FoldText normaliza texto para comparaciones: quita marcas diacríticas,
// pasa a minúsculas y colapsa espacios.
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
