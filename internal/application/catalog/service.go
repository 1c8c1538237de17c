package catalog

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/catalog"
	"github.com/boardsandcats/storefront/internal/domain/shared"
)

// Default page size for catalog browsing.
const DefaultPageSize = 12

// Sort orders accepted by Browse.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
)

// BrowseQuery filters and paginates the catalog. The backend returns full
// result sets, so filtering, sorting and paging all happen here.
type BrowseQuery struct {
	Search     string
	CategoryID int64
	PromoOnly  bool
	SortBy     string
	Page       int
	PageSize   int
}

// Page is one page of browse results.
type Page struct {
	Items      []catalog.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Service provides catalog browsing on top of the store API.
type Service struct {
	repo catalog.ReadRepository
	log  *zap.Logger
}

// NewService creates a catalog service.
func NewService(repo catalog.ReadRepository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Browse lists products matching the query.
func (s *Service) Browse(ctx context.Context, q BrowseQuery) (*Page, error) {
	var (
		products []catalog.Product
		err      error
	)
	if q.CategoryID > 0 {
		products, err = s.repo.ListProductsByCategory(ctx, q.CategoryID)
	} else {
		products, err = s.repo.ListProducts(ctx)
	}
	if err != nil {
		return nil, err
	}

	products = filter(products, q)
	sortProducts(products, q.SortBy)

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(products)
	totalPages := total / size
	if total%size > 0 {
		totalPages++
	}

	start := (page - 1) * size
	if start >= total {
		return &Page{Items: []catalog.Product{}, Total: total, Page: page, PageSize: size, TotalPages: totalPages}, nil
	}
	end := start + size
	if end > total {
		end = total
	}

	return &Page{
		Items:      products[start:end],
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// Product returns a single product.
func (s *Service) Product(ctx context.Context, id int64) (*catalog.Product, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidInput
	}
	return s.repo.GetProduct(ctx, id)
}

// Categories lists all categories.
func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.repo.ListCategories(ctx)
}

func filter(products []catalog.Product, q BrowseQuery) []catalog.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" && !q.PromoOnly {
		return products
	}

	out := products[:0:0]
	for _, p := range products {
		if q.PromoOnly && !p.Promo {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortProducts(products []catalog.Product, sortBy string) {
	switch sortBy {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	}
}
