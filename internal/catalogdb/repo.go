package catalogdb

import (
	"context"
	"fmt"
	"strings"

	"foodcatalog/internal/catalog"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		category_idx INTEGER PRIMARY KEY,
		name         VARCHAR NOT NULL,
		image        VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		category_idx    INTEGER NOT NULL,
		item_idx        INTEGER NOT NULL,
		name            VARCHAR NOT NULL,
		price           DOUBLE NOT NULL,
		weight          VARCHAR,
		rating          DOUBLE,
		size            VARCHAR,
		crust           VARCHAR,
		delivery_min    INTEGER,
		top_of_the_week BOOLEAN,
		PRIMARY KEY (category_idx, item_idx)
	)`,
}

// ItemQuery filters SearchItems. Zero values disable a filter.
type ItemQuery struct {
	Category string  `json:"category,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`
	TopOnly  bool    `json:"top_only,omitempty"`
	Limit    int     `json:"limit,omitempty"`
}

// ItemSummary locates an item in the static table.
type ItemSummary struct {
	CategoryIndex  int     `json:"category_index"`
	ItemIndex      int     `json:"item_index"`
	Category       string  `json:"category"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Rating         float64 `json:"rating"`
	Delivery       int     `json:"delivery"`
	IsTopOfTheWeek bool    `json:"is_top_of_the_week"`
}

// CategorySummary aggregates one category.
type CategorySummary struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	ItemCount int     `json:"item_count"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
}

// Repo answers read-only catalog queries.
type Repo struct {
	client *DuckDBClient
}

// NewRepo wraps a client. Call Migrate and LoadCatalog before querying.
func NewRepo(client *DuckDBClient) *Repo {
	return &Repo{client: client}
}

// Open builds an in-memory index of c in one step.
func Open(ctx context.Context, c *catalog.Catalog, opts ...DuckDBOption) (*Repo, error) {
	client, err := NewInMemoryDB(opts...)
	if err != nil {
		return nil, err
	}
	r := NewRepo(client)
	if err := r.Migrate(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	if err := r.LoadCatalog(ctx, c); err != nil {
		_ = client.Close()
		return nil, err
	}
	return r, nil
}

// Migrate creates the tables.
func (r *Repo) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// LoadCatalog replaces the indexed rows with the contents of c.
func (r *Repo) LoadCatalog(ctx context.Context, c *catalog.Catalog) error {
	tx, err := r.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM categories"); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for ci, cat := range c.Categories() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO categories (category_idx, name, image) VALUES (?, ?, ?)",
			ci, cat.Name, string(cat.Image),
		); err != nil {
			return fmt.Errorf("insert category %q: %w", cat.Name, err)
		}
		for ii, it := range cat.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO items (category_idx, item_idx, name, price, weight, rating, size, crust, delivery_min, top_of_the_week)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				ci, ii, it.Name, it.Price, it.Weight, it.Rating, it.Size, it.Crust, it.Delivery, it.IsTopOfTheWeek,
			); err != nil {
				return fmt.Errorf("insert item %q: %w", it.Name, err)
			}
		}
	}

	return tx.Commit()
}

// SearchItems returns items matching q in table order.
func (r *Repo) SearchItems(ctx context.Context, q ItemQuery) ([]ItemSummary, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	var where []string
	var args []any
	if q.Category != "" {
		where = append(where, "lower(c.name) = lower(?)")
		args = append(args, q.Category)
	}
	if q.MaxPrice > 0 {
		where = append(where, "i.price <= ?")
		args = append(args, q.MaxPrice)
	}
	if q.TopOnly {
		where = append(where, "i.top_of_the_week")
	}

	query := `SELECT i.category_idx, i.item_idx, c.name, i.name, i.price, i.rating, i.delivery_min, i.top_of_the_week
		FROM items i JOIN categories c ON c.category_idx = i.category_idx`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY i.category_idx, i.item_idx LIMIT ?"
	args = append(args, limit)

	rows, err := r.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()

	var out []ItemSummary
	for rows.Next() {
		var s ItemSummary
		if err := rows.Scan(&s.CategoryIndex, &s.ItemIndex, &s.Category, &s.Name, &s.Price, &s.Rating, &s.Delivery, &s.IsTopOfTheWeek); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CategorySummaries returns item counts and price ranges per category.
func (r *Repo) CategorySummaries(ctx context.Context) ([]CategorySummary, error) {
	rows, err := r.client.DB().QueryContext(ctx, `
		SELECT c.category_idx, c.name, count(i.item_idx),
		       coalesce(min(i.price), 0), coalesce(max(i.price), 0)
		FROM categories c LEFT JOIN items i ON i.category_idx = c.category_idx
		GROUP BY c.category_idx, c.name
		ORDER BY c.category_idx`)
	if err != nil {
		return nil, fmt.Errorf("category summaries: %w", err)
	}
	defer rows.Close()

	var out []CategorySummary
	for rows.Next() {
		var s CategorySummary
		if err := rows.Scan(&s.Index, &s.Name, &s.ItemCount, &s.MinPrice, &s.MaxPrice); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close releases the database.
func (r *Repo) Close() error {
	return r.client.Close()
}
