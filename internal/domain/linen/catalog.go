// Package linen contiene el motor de normalización y agregación de ropa de cama (lencería):
// convierte etiquetas libres en nombres canónicos y suma entradas/devoluciones por categoría.
//
// Todo el paquete es puro: sin I/O, sin estado global y seguro para uso concurrente.
package linen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catálogo por defecto de HARU. El orden define el orden de reporte y el desempate de Normalize.
var defaultCatalogNames = []string{
	"싱글 이불 커버",
	"더블 이불 커버",
	"싱글 매트 커버",
	"더블 매트 커버",
	"고무 매트 커버",
	"배게 커버",
	"수건",
	"발매트",
}

// Catalog lista ordenada e inmutable de nombres canónicos.
// Se construye una vez al arrancar y se inyecta en el Aggregator.
type Catalog struct {
	names []string
	keys  []string // clave de comparación precalculada (sin espacios, NFC)
}

// NewCatalog construye un catálogo respetando el orden recibido.
// Se descartan entradas vacías (su clave coincidiría con cualquier texto) y duplicados.
func NewCatalog(names ...string) Catalog {
	c := Catalog{
		names: make([]string, 0, len(names)),
		keys:  make([]string, 0, len(names)),
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		key := compareKey(n)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		c.names = append(c.names, n)
		c.keys = append(c.keys, key)
	}
	return c
}

// DefaultCatalog devuelve el catálogo de 8 categorías usado en producción.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultCatalogNames...)
}

// Names devuelve una copia de los nombres canónicos en orden de catálogo.
func (c Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len número de categorías.
func (c Catalog) Len() int { return len(c.names) }

// Contains informa si name es exactamente un nombre canónico.
func (c Catalog) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// catalogFile formato YAML del archivo de catálogo:
//
//	categories:
//	  - 싱글 이불 커버
//	  - 배게 커버
type catalogFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCatalogFile lee un catálogo desde YAML. Un archivo sin categorías es un error:
// un catálogo vacío dejaría todos los reportes en cero sin aviso.
func LoadCatalogFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("linen: leer catálogo: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Catalog{}, fmt.Errorf("linen: parsear catálogo %s: %w", path, err)
	}
	c := NewCatalog(f.Categories...)
	if c.Len() == 0 {
		return Catalog{}, fmt.Errorf("linen: el catálogo %s no tiene categorías", path)
	}
	return c, nil
}

// LoadCatalog usa el archivo si path no está vacío; si no, el catálogo por defecto.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(path)
}
