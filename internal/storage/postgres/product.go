package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"promisync/internal/domain"
)

// ProductStore is the relational system-of-record for synced products.
type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db: db}
}

type productRow struct {
	ID              int64          `db:"id"`
	SupplierCode    string         `db:"supplier_code"`
	ANumber         string         `db:"a_number"`
	SKU             string         `db:"sku"`
	Name            []byte         `db:"name"`
	Description     []byte         `db:"description"`
	Currency        string         `db:"currency"`
	MainImageURL    *string        `db:"main_image_url"`
	PrimaryCategory *string        `db:"primary_category"`
	Categories      pq.StringArray `db:"categories"`
	PromidataHash   string         `db:"promidata_hash"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *productRow) toDomain() (*domain.Product, error) {
	p := &domain.Product{
		ID:              r.ID,
		SupplierCode:    r.SupplierCode,
		ANumber:         r.ANumber,
		SKU:             r.SKU,
		Currency:        r.Currency,
		MainImageURL:    r.MainImageURL,
		PrimaryCategory: r.PrimaryCategory,
		Categories:      r.Categories,
		PromidataHash:   r.PromidataHash,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if len(r.Name) > 0 {
		if err := json.Unmarshal(r.Name, &p.Name); err != nil {
			return nil, fmt.Errorf("decode name: %w", err)
		}
	}
	if len(r.Description) > 0 {
		if err := json.Unmarshal(r.Description, &p.Description); err != nil {
			return nil, fmt.Errorf("decode description: %w", err)
		}
	}
	return p, nil
}

type variantRow struct {
	ID              int64    `db:"id"`
	ProductID       int64    `db:"product_id"`
	SKU             string   `db:"sku"`
	Color           string   `db:"color"`
	Size            string   `db:"size"`
	Price           *float64 `db:"price"`
	ImageURL        *string  `db:"image_url"`
	PrimaryForColor bool     `db:"primary_for_color"`
}

func (r *variantRow) toDomain() domain.Variant {
	return domain.Variant{
		ID:              r.ID,
		SKU:             r.SKU,
		Color:           r.Color,
		Size:            r.Size,
		Price:           r.Price,
		ImageURL:        r.ImageURL,
		PrimaryForColor: r.PrimaryForColor,
	}
}

const productColumns = `id, supplier_code, a_number, sku, name, description, currency,
	main_image_url, primary_category, categories, promidata_hash, created_at, updated_at`

// Upsert inserts or updates the product head keyed by (supplier_code,
// a_number) and records the synced content hash. Safe to repeat.
func (s *ProductStore) Upsert(ctx context.Context, product *domain.Product) (int64, error) {
	name, err := json.Marshal(product.Name)
	if err != nil {
		return 0, fmt.Errorf("encode name: %w", err)
	}
	description, err := json.Marshal(product.Description)
	if err != nil {
		return 0, fmt.Errorf("encode description: %w", err)
	}

	query := `
		INSERT INTO products (
			supplier_code, a_number, sku, name, description, currency,
			main_image_url, primary_category, categories, promidata_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (supplier_code, a_number) DO UPDATE SET
			sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			currency = EXCLUDED.currency,
			main_image_url = EXCLUDED.main_image_url,
			primary_category = EXCLUDED.primary_category,
			categories = EXCLUDED.categories,
			promidata_hash = EXCLUDED.promidata_hash,
			updated_at = now()
		RETURNING id`

	var id int64
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		product.SupplierCode,
		product.ANumber,
		product.SKU,
		name,
		description,
		product.Currency,
		product.MainImageURL,
		product.PrimaryCategory,
		pq.Array(product.Categories),
		product.PromidataHash,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ReplaceVariants swaps the product's variant set atomically with the
// surrounding transaction.
func (s *ProductStore) ReplaceVariants(ctx context.Context, productID int64, variants []domain.Variant) error {
	exec := GetExecutor(ctx, s.db)

	if _, err := exec.ExecContext(ctx,
		"DELETE FROM product_variants WHERE product_id = $1",
		productID,
	); err != nil {
		return err
	}

	if len(variants) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO product_variants (product_id, sku, color, size, price, image_url, primary_for_color) VALUES ")
	args := make([]interface{}, 0, len(variants)*7)

	for i, v := range variants {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args, productID, v.SKU, v.Color, v.Size, v.Price, v.ImageURL, v.PrimaryForColor)
	}

	_, err := exec.ExecContext(ctx, sb.String(), args...)
	return err
}

// GetByExternalKey returns the product with its variants, or nil when
// the key is not stored.
func (s *ProductStore) GetByExternalKey(ctx context.Context, supplierCode, aNumber string) (*domain.Product, error) {
	var row productRow
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE supplier_code = $1 AND a_number = $2", productColumns)

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, supplierCode, aNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s.withVariants(ctx, &row)
}

// FindByHash returns any product of the supplier synced with the given
// content hash, or nil.
func (s *ProductStore) FindByHash(ctx context.Context, supplierCode, hash string) (*domain.Product, error) {
	var row productRow
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE supplier_code = $1 AND promidata_hash = $2 LIMIT 1", productColumns)

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, supplierCode, hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s.withVariants(ctx, &row)
}

// HashesByKey returns external key -> last synced hash for the
// supplier. This is the diff engine's entire view of the store.
func (s *ProductStore) HashesByKey(ctx context.Context, supplierCode string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT a_number, promidata_hash FROM products WHERE supplier_code = $1",
		supplierCode,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, hash string
		if err := rows.Scan(&key, &hash); err != nil {
			return nil, err
		}
		result[key] = hash
	}
	return result, rows.Err()
}

// Delete removes the product and its variants. Deleting an absent key
// is a no-op.
func (s *ProductStore) Delete(ctx context.Context, supplierCode, aNumber string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM products WHERE supplier_code = $1 AND a_number = $2",
		supplierCode, aNumber,
	)
	return err
}

// ListBySupplier returns all synced products of the supplier with their
// variants, ordered by external key.
func (s *ProductStore) ListBySupplier(ctx context.Context, supplierCode string) ([]domain.Product, error) {
	var rows []productRow
	query := fmt.Sprintf(
		"SELECT %s FROM products WHERE supplier_code = $1 ORDER BY a_number", productColumns)

	if err := s.db.SelectContext(ctx, &rows, query, supplierCode); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	var vRows []variantRow
	err := s.db.SelectContext(ctx, &vRows,
		"SELECT id, product_id, sku, color, size, price, image_url, primary_for_color FROM product_variants WHERE product_id = ANY($1) ORDER BY id",
		pq.Array(ids),
	)
	if err != nil {
		return nil, err
	}

	variantsByProduct := make(map[int64][]domain.Variant)
	for _, vr := range vRows {
		variantsByProduct[vr.ProductID] = append(variantsByProduct[vr.ProductID], vr.toDomain())
	}

	products := make([]domain.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		p.Variants = variantsByProduct[p.ID]
		products = append(products, *p)
	}
	return products, nil
}

func (s *ProductStore) withVariants(ctx context.Context, row *productRow) (*domain.Product, error) {
	p, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	var vRows []variantRow
	err = sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &vRows,
		"SELECT id, product_id, sku, color, size, price, image_url, primary_for_color FROM product_variants WHERE product_id = $1 ORDER BY id",
		row.ID,
	)
	if err != nil {
		return nil, err
	}

	for _, vr := range vRows {
		p.Variants = append(p.Variants, vr.toDomain())
	}
	return p, nil
}
