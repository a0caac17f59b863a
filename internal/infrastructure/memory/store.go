// Package memory implementa los puertos de repositorio en memoria (STORE_DRIVER=memory).
// Se usa en desarrollo y como almacén de prueba; los datos viven mientras viva el proceso.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// Store agrupa las tablas en memoria de todas las entidades.
type Store struct {
	products      *table[entity.Product]
	categories    *table[entity.Category]
	clients       *table[entity.Client]
	suppliers     *table[entity.Supplier]
	catalogs      *table[entity.Catalog]
	notifications *table[entity.Notification]
	sales         *table[entity.Sale]
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		products:      newTable[entity.Product](nil),
		categories:    newTable[entity.Category](nil),
		clients:       newTable[entity.Client](nil),
		suppliers:     newTable[entity.Supplier](nil),
		catalogs:      newTable(cloneCatalog),
		notifications: newTable[entity.Notification](nil),
		sales:         newTable(cloneSale),
	}
}

// table colección protegida por RWMutex. Los valores se copian al entrar y al salir,
// así ningún llamador comparte memoria con el almacén.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{rows: map[string]T{}, clone: clone}
}

func (t *table[T]) insert(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return domain.ErrDuplicate
	}
	t.rows[id] = t.clone(v)
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(v), true
}

func (t *table[T]) update(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = t.clone(v)
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

// deleteDetaching borra id de parent y, bajo ambos locks, aplica detach a cada fila de child
// (equivale a ON DELETE SET NULL). El orden de locks es siempre padre y luego hijo.
func deleteDetaching[P, C any](parent *table[P], child *table[C], id string, detach func(*C) bool) error {
	parent.mu.Lock()
	defer parent.mu.Unlock()
	if _, ok := parent.rows[id]; !ok {
		return domain.ErrNotFound
	}
	child.mu.Lock()
	for k, v := range child.rows {
		if detach(&v) {
			child.rows[k] = v
		}
	}
	child.mu.Unlock()
	delete(parent.rows, id)
	return nil
}

// selectWhere devuelve copias de las filas que cumplen keep (todas si keep es nil), ordenadas con less.
func (t *table[T]) selectWhere(keep func(*T) bool, less func(a, b *T) bool) []*T {
	t.mu.RLock()
	out := make([]*T, 0, len(t.rows))
	for _, v := range t.rows {
		c := t.clone(v)
		if keep == nil || keep(&c) {
			out = append(out, &c)
		}
	}
	t.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// paginate aplica limit/offset; limit <= 0 devuelve todo desde offset.
func paginate[T any](list []*T, limit, offset int) []*T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []*T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func cloneSale(s entity.Sale) entity.Sale {
	s.Items = append([]entity.SaleItem(nil), s.Items...)
	return s
}

func cloneCatalog(c entity.Catalog) entity.Catalog {
	c.ProductIDs = append([]string(nil), c.ProductIDs...)
	return c
}

func byName(a, b, idA, idB string) bool {
	if a != b {
		return a < b
	}
	return idA < idB
}
