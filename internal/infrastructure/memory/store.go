// Package memory implementa los repositorios en memoria. Sirve para
// desarrollo (STORE_DRIVER=memory) y como doble de la base en pruebas.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// Store guarda copias de las entidades; nada de lo que devuelve comparte
// memoria con su estado interno.
type Store struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	sales     []entity.Sale
	purchases []entity.Purchase
	expenses  []entity.Expense
	periods   []entity.InventoryPeriod
	users     map[string]entity.User
	profile   *entity.BusinessProfile
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		products: make(map[string]entity.Product),
		users:    make(map[string]entity.User),
	}
}

// guard adquiere el candado del almacén salvo dentro de una transacción,
// donde TxRunner.Run ya lo tiene tomado en exclusiva.
type guard struct {
	s    *Store
	inTx bool
}

func (g guard) write() func() {
	if g.inTx {
		return func() {}
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}

func (g guard) read() func() {
	if g.inTx {
		return func() {}
	}
	g.s.mu.RLock()
	return g.s.mu.RUnlock
}

func (s *Store) Products() repository.ProductRepository { return productRepo{guard{s: s}} }
func (s *Store) Sales() repository.SaleRepository       { return saleRepo{guard{s: s}} }
func (s *Store) Purchases() repository.PurchaseRepository {
	return purchaseRepo{guard{s: s}}
}
func (s *Store) Expenses() repository.ExpenseRepository { return expenseRepo{guard{s: s}} }
func (s *Store) Periods() repository.InventoryPeriodRepository {
	return periodRepo{guard{s: s}}
}
func (s *Store) Users() repository.UserRepository { return userRepo{guard{s: s}} }
func (s *Store) BusinessProfile() repository.BusinessProfileRepository {
	return profileRepo{guard{s: s}}
}

// TxRunner devuelve el ejecutor de transacciones del almacén.
func (s *Store) TxRunner() ports.TxRunner { return txRunner{s: s} }

type txRunner struct{ s *Store }

// Run toma el candado exclusivo durante toda la función y restaura la foto
// previa si fn falla o entra en pánico.
func (r txRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	g := guard{s: s, inTx: true}
	err = fn(ports.TxRepos{
		Products:  productRepo{g},
		Sales:     saleRepo{g},
		Purchases: purchaseRepo{g},
		Periods:   periodRepo{g},
	})
	if err == nil {
		err = ctx.Err()
	}
	return err
}

type snapshot struct {
	products  map[string]entity.Product
	sales     []entity.Sale
	purchases []entity.Purchase
	periods   []entity.InventoryPeriod
}

func (s *Store) snapshot() snapshot {
	products := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	return snapshot{
		products:  products,
		sales:     slices.Clone(s.sales),
		purchases: slices.Clone(s.purchases),
		periods:   slices.Clone(s.periods),
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.sales = snap.sales
	s.purchases = snap.purchases
	s.periods = snap.periods
}
