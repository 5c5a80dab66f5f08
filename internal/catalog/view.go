package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
)

// DefaultPageSize is the reference grid size of the storefront.
const DefaultPageSize = 12

const CategoryAll = "all"

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortStock     SortKey = "stock"
)

// ParseSortKey falls back to name order for unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortName, SortPriceLow, SortPriceHigh, SortStock:
		return SortKey(s)
	default:
		return SortName
	}
}

// Query is the filter/sort/page state of the catalog view. Any change to the
// search text, category, or sort key resets the page to 1: the result set
// changes shape, so the old page number is meaningless. Setters return a new
// value, reducer style.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
	Page     int
}

func NewQuery() Query {
	return Query{Category: CategoryAll, Sort: SortName, Page: 1}
}

func (q Query) WithSearch(search string) Query {
	q.Search = search
	q.Page = 1

	return q
}

func (q Query) WithCategory(category string) Query {
	if category == "" {
		category = CategoryAll
	}

	q.Category = category
	q.Page = 1

	return q
}

func (q Query) WithSort(key SortKey) Query {
	q.Sort = key
	q.Page = 1

	return q
}

func (q Query) WithPage(page int) Query {
	if page < 1 {
		page = 1
	}

	q.Page = page

	return q
}

// Page is one rendered slice of the filtered catalog.
type Page struct {
	Items        []models.Product
	Page         int
	TotalPages   int
	TotalMatches int
}

// Project is the deterministic pipeline from the full product set to the
// visible page: search filter, category filter, stable sort, clamp, slice.
// An empty result reports zero pages and page 1.
func Project(products []models.Product, q Query, pageSize int) Page {

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := products

	if strings.TrimSpace(q.Search) != "" {
		lowered := strings.ToLower(q.Search)
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return productMatches(p, lowered)
		})
	}

	if q.Category != "" && q.Category != CategoryAll {
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Category == q.Category
		})
	}

	sorted := make([]models.Product, len(filtered))
	copy(sorted, filtered)
	sortProducts(sorted, q.Sort)

	totalMatches := len(sorted)
	totalPages := (totalMatches + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}

	if totalPages == 0 {
		return Page{Items: []models.Product{}, Page: 1, TotalPages: 0, TotalMatches: 0}
	}

	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize

	end := start + pageSize
	if end > totalMatches {
		end = totalMatches
	}

	return Page{
		Items:        sorted[start:end],
		Page:         page,
		TotalPages:   totalPages,
		TotalMatches: totalMatches,
	}
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {

	var out []models.Product

	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

// sortProducts must stay stable so that equal keys preserve snapshot order.
func sortProducts(products []models.Product, key SortKey) {

	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortStock:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].StockQuantity > products[j].StockQuantity
		})
	default:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
