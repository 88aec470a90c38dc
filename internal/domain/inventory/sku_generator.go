package inventory

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// SKUPolicy define cómo se numeran los SKU de una categoría.
type SKUPolicy string

const (
	// SKUSequential toma el mayor sufijo numérico del prefijo y suma 1 (CAR-0004).
	SKUSequential SKUPolicy = "sequential"
	// SKURandom sortea un número en [1000, 9999] y reintenta si ya existe.
	SKURandom SKUPolicy = "random"
)

const (
	randomSKUMin      = 1000
	randomSKUMax      = 9999
	sequentialSKUMax  = 9999
	maxRandomAttempts = 64
)

// ParseSKUPolicy valida el valor configurado. Vacío equivale a secuencial.
func ParseSKUPolicy(s string) (SKUPolicy, error) {
	switch SKUPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SKUSequential:
		return SKUSequential, nil
	case SKURandom:
		return SKURandom, nil
	}
	return "", fmt.Errorf("política de SKU desconocida: %q", s)
}

// SKUGenerator genera códigos con prefijo de categoría.
type SKUGenerator struct {
	policy SKUPolicy
	intN   func(n int) int
}

// NewSKUGenerator construye el generador con la fuente aleatoria global.
func NewSKUGenerator(policy SKUPolicy) *SKUGenerator {
	return NewSKUGeneratorWithRand(policy, rand.IntN)
}

// NewSKUGeneratorWithRand permite inyectar la fuente aleatoria (tests).
func NewSKUGeneratorWithRand(policy SKUPolicy, intN func(n int) int) *SKUGenerator {
	if policy == "" {
		policy = SKUSequential
	}
	return &SKUGenerator{policy: policy, intN: intN}
}

// Policy devuelve la política configurada.
func (g *SKUGenerator) Policy() SKUPolicy { return g.policy }

// Next devuelve un SKU nuevo para la categoría que no choca con existing.
// existing puede traer SKUs de cualquier prefijo; solo cuentan los del prefijo.
func (g *SKUGenerator) Next(category string, existing []string) (string, error) {
	prefix := entity.CategoryPrefix(category)
	switch g.policy {
	case SKURandom:
		return g.nextRandom(prefix, existing)
	default:
		return nextSequential(prefix, existing)
	}
}

// nextSequential no pasa de PREFIJO-9999: el sufijo siempre tiene 4 dígitos.
func nextSequential(prefix string, existing []string) (string, error) {
	maxN := 0
	for _, sku := range existing {
		if n, ok := skuNumber(prefix, sku); ok && n > maxN {
			maxN = n
		}
	}
	if maxN >= sequentialSKUMax {
		return "", exhausted(prefix)
	}
	return formatSKU(prefix, maxN+1), nil
}

func (g *SKUGenerator) nextRandom(prefix string, existing []string) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, sku := range existing {
		taken[strings.ToUpper(sku)] = struct{}{}
	}
	for range maxRandomAttempts {
		candidate := formatSKU(prefix, randomSKUMin+g.intN(randomSKUMax-randomSKUMin+1))
		if _, dup := taken[candidate]; !dup {
			return candidate, nil
		}
	}
	return "", exhausted(prefix)
}

func exhausted(prefix string) error {
	return &domain.Error{
		Kind:    domain.KindConflict,
		Message: fmt.Sprintf("no se pudo generar un SKU libre para el prefijo %s", prefix),
		Err:     domain.ErrConflict,
	}
}

// skuNumber extrae el sufijo numérico de PREFIJO-NNNN. Acepta dígitos
// iniciales seguidos de texto (CAR-0007B cuenta como 7).
func skuNumber(prefix, sku string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(sku)), prefix+"-")
	if !ok {
		return 0, false
	}
	n, digits := 0, 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	return n, digits > 0
}

func formatSKU(prefix string, n int) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}
