// Package session guarda o estado compartilhado entre os relatórios de um mesmo job
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/marketplace-reports-api/internal/domain"
)

type Scope string

const (
	ScopeFBO Scope = "fbo"
	ScopeFBS Scope = "fbs"
)

// GoodsFetcher busca no marketplace apenas os SKUs ainda não conhecidos pela sessão
type GoodsFetcher func(ctx context.Context, skus []int64) (map[int64]domain.GoodsInfo, error)

type WarehouseFetcher func(ctx context.Context, id int64) (string, error)

type PostingsFetcher func(ctx context.Context) (*domain.Table, error)

type Session struct {
	credentials domain.Credentials
	window      domain.DateWindow

	// goodsFetch e postingsFetch serializam as buscas para que chamadas
	// concorrentes não peçam os mesmos dados duas vezes
	goodsFetch    sync.Mutex
	postingsFetch sync.Mutex

	mutex      sync.Mutex
	goods      map[int64]domain.GoodsInfo
	warehouses map[int64]string
	postings   map[Scope]*domain.Table
}

func New(credentials domain.Credentials, window domain.DateWindow) *Session {
	return &Session{
		credentials: credentials,
		window:      window,
		goods:       make(map[int64]domain.GoodsInfo),
		warehouses:  make(map[int64]string),
		postings:    make(map[Scope]*domain.Table),
	}
}

func (s *Session) Credentials() domain.Credentials {
	return s.credentials
}

func (s *Session) Window() domain.DateWindow {
	return s.window
}

// Goods retorna os metadados de todos os SKUs pedidos. SKUs que o marketplace
// não devolveu recebem uma entrada não resolvida, que também fica em cache.
func (s *Session) Goods(ctx context.Context, skus []int64, fetch GoodsFetcher) (map[int64]domain.GoodsInfo, error) {
	s.goodsFetch.Lock()
	defer s.goodsFetch.Unlock()

	missing := s.missingGoods(skus)

	if len(missing) > 0 {
		fetched, err := fetch(ctx, missing)
		if err != nil {
			return nil, err
		}

		s.mutex.Lock()
		for _, sku := range missing {
			info, ok := fetched[sku]
			if !ok {
				info = domain.UnresolvedGoods(sku)
			}
			s.goods[sku] = info
		}
		s.mutex.Unlock()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make(map[int64]domain.GoodsInfo, len(skus))
	for _, sku := range skus {
		result[sku] = s.goods[sku]
	}
	return result, nil
}

func (s *Session) missingGoods(skus []int64) []int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	seen := make(map[int64]struct{}, len(skus))
	missing := make([]int64, 0)
	for _, sku := range skus {
		if _, ok := seen[sku]; ok {
			continue
		}
		seen[sku] = struct{}{}

		if _, cached := s.goods[sku]; !cached {
			missing = append(missing, sku)
		}
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func (s *Session) WarehouseNames(ctx context.Context, ids []int64, fetch WarehouseFetcher) (map[int64]string, error) {
	result := make(map[int64]string, len(ids))

	for _, id := range ids {
		if _, done := result[id]; done {
			continue
		}

		s.mutex.Lock()
		name, cached := s.warehouses[id]
		s.mutex.Unlock()

		if !cached {
			fetched, err := fetch(ctx, id)
			if err != nil {
				return nil, err
			}
			name = fetched

			s.mutex.Lock()
			s.warehouses[id] = name
			s.mutex.Unlock()
		}

		result[id] = name
	}

	return result, nil
}

// StoreWarehouseNames permite carregar vários nomes de uma vez quando o marketplace lista todos os armazéns
func (s *Session) StoreWarehouseNames(names map[int64]string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for id, name := range names {
		s.warehouses[id] = name
	}
}

func (s *Session) HasWarehouses() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.warehouses) > 0
}

// Postings memoriza o relatório de envios por escopo, que é caro de gerar
func (s *Session) Postings(ctx context.Context, scope Scope, fetch PostingsFetcher) (*domain.Table, error) {
	s.postingsFetch.Lock()
	defer s.postingsFetch.Unlock()

	s.mutex.Lock()
	table, cached := s.postings[scope]
	s.mutex.Unlock()

	if cached {
		return table, nil
	}

	table, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.postings[scope] = table
	s.mutex.Unlock()

	return table, nil
}

// End limpa os caches. A sessão não deve ser usada depois disso.
func (s *Session) End() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.goods = make(map[int64]domain.GoodsInfo)
	s.warehouses = make(map[int64]string)
	s.postings = make(map[Scope]*domain.Table)
}
