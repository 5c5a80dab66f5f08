package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListAllProducts(ctx context.Context) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	CountLowStock(ctx context.Context, threshold int) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, brand, category, part_number, compatible_vehicles, price, sale_price, stock_quantity, image_url, created_at, updated_at`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (id, name, description, brand, category, part_number, compatible_vehicles, price, sale_price, stock_quantity, image_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.ID, product.Name, product.Description, product.Brand, product.Category,
		product.PartNumber, product.CompatibleVehicles, product.Price, product.SalePrice,
		product.StockQuantity, product.ImageURL,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, description = $2, brand = $3, category = $4, part_number = $5,
		    compatible_vehicles = $6, price = $7, sale_price = $8, stock_quantity = $9,
		    image_url = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Description, product.Brand, product.Category, product.PartNumber,
		product.CompatibleVehicles, product.Price, product.SalePrice, product.StockQuantity,
		product.ImageURL, product.ID,
	).Scan(&product.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}

		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ListAllProducts is the "fetchAllProducts" collaborator: the full catalog,
// ordered by name, fetched in one shot.
func (r *productRepository) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return collectProducts(rows)
}

func (r *productRepository) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stmt := `SELECT ` + productColumns + ` FROM products
			 WHERE name ILIKE $1 OR description ILIKE $1 OR brand ILIKE $1
			    OR part_number ILIKE $1 OR compatible_vehicles ILIKE $1
			 ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, stmt, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return collectProducts(rows)
}

func (r *productRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT category, COUNT(*) FROM products GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var category string

		var count int

		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scanning category count: %w", err)
		}

		counts[category] = count
	}

	return counts, rows.Err()
}

func (r *productRepository) CountLowStock(ctx context.Context, threshold int) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products WHERE stock_quantity < $1`, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("querying database: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {

	product := &models.Product{}

	var salePrice sql.NullFloat64

	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Brand, &product.Category,
		&product.PartNumber, &product.CompatibleVehicles, &product.Price, &salePrice,
		&product.StockQuantity, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salePrice.Valid {
		product.SalePrice = &salePrice.Float64
	}

	return product, nil
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {

	var products []models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, *product)
	}

	return products, rows.Err()
}
