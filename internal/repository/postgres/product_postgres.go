package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/storefront-pager/internal/model"
	"github.com/maxviazov/storefront-pager/internal/repository"
)

const productColumns = `id, name, description, price::float8, price_normal::float8, reduction, sale,
	categories, image_urls, date, created_at, updated_at`

type productRepository struct{ pool *pgxpool.Pool }

func NewProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Product{}, err
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO products (name, description, price, price_normal, reduction, sale, categories, image_urls, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.PriceNormal, p.Reduction, p.Sale, nonNil(p.Categories), nonNil(p.ImageURLs), p.Date,
	)
	out, err := scanProduct(row)
	if err != nil {
		return model.Product{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Product{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	out, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, repository.ErrNotFound
		}
		return model.Product{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *productRepository) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	where, args := productWhere(f)
	var total int
	exec := getQ(ctx, r.pool)
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *productRepository) List(ctx context.Context, f repository.ProductFilter, p repository.Page) (repository.PageResult[model.Product], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Product]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	where, args := productWhere(f)
	n := len(args)
	args = append(args, limit, offset)

	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total
		 FROM products%s
		 ORDER BY date DESC, id DESC
		 LIMIT $%d OFFSET $%d`, productColumns, where, n+1, n+2),
		args...,
	)
	if err != nil {
		return repository.PageResult[model.Product]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Product]{Items: make([]model.Product, 0, limit)}
	for rows.Next() {
		var pr model.Product
		var total int
		if err := rows.Scan(productDest(&pr, &total)...); err != nil {
			return repository.PageResult[model.Product]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, pr)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Product]{}, repository.MapPgError(err)
	}
	// An offset past the end returns no rows, so the window count is lost; ask again.
	if len(res.Items) == 0 && offset > 0 {
		total, err := r.Count(ctx, f)
		if err != nil {
			return repository.PageResult[model.Product]{}, err
		}
		res.Total = total
	}
	return res, nil
}

// productWhere renders the filter as a WHERE clause with positional args.
func productWhere(f repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	if term := strings.TrimSpace(f.Term); term != "" {
		// lower(name) LIKE 'prefix%' can use products_name_lower_idx, ILIKE cannot.
		args = append(args, strings.ToLower(escapeLike(term))+"%")
		conds = append(conds, fmt.Sprintf(`lower(name) LIKE $%d ESCAPE '\'`, len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf(`$%d = ANY(categories)`, len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func productDest(p *model.Product, extra ...any) []any {
	dest := []any{
		&p.ID, &p.Name, &p.Description, &p.Price, &p.PriceNormal, &p.Reduction, &p.Sale,
		&p.Categories, &p.ImageURLs, &p.Date, &p.CreatedAt, &p.UpdatedAt,
	}
	return append(dest, extra...)
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	if err := row.Scan(productDest(&p)...); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ repository.ProductRepository = (*productRepository)(nil)
