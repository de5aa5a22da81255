package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxviazov/storefront-pager/internal/model"
)

var demoCategories = []string{"home", "kitchen", "office", "garden", "outdoor"}

// DemoProducts builds n sample products dated one hour apart, newest first from now.
func DemoProducts(n int, now time.Time) []model.Product {
	out := make([]model.Product, 0, max(n, 0))
	for i := 0; i < n; i++ {
		price := float64(10 + (i*7)%90)
		p := model.Product{
			Name:        fmt.Sprintf("Demo product %03d", i+1),
			Description: "Sample catalog entry",
			Price:       price,
			PriceNormal: price,
			Categories:  []string{demoCategories[i%len(demoCategories)]},
			ImageURLs:   []string{},
			Date:        now.Add(-time.Duration(i) * time.Hour),
		}
		if i%4 == 0 {
			p.Sale = true
			p.Reduction = 20
			p.Price = price * 0.8
		}
		out = append(out, p)
	}
	return out
}

// SeedDemo inserts DemoProducts into repo. Products that already exist are skipped,
// so seeding twice is harmless. It returns how many were inserted.
func SeedDemo(ctx context.Context, repo ProductRepository, n int, now time.Time) (int, error) {
	inserted := 0
	for _, p := range DemoProducts(n, now) {
		if _, err := repo.Create(ctx, p); err != nil {
			if errors.Is(err, ErrAlreadyExists) {
				continue
			}
			return inserted, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
