package api

import (
	"context"
	"sort"
	"time"

	"github.com/propdesk/propdesk/internal/models"
	"go.uber.org/zap"
)

// recentSaleWindow is how far back a sale still counts as recent on the
// dashboard.
const recentSaleWindow = 30 * 24 * time.Hour

// BuildDashboardStats aggregates console overview figures from the owners,
// properties, and trace listings. The remote API has no stats endpoint, so
// the console computes them client-side, same as the dashboard page did.
func BuildDashboardStats(ctx context.Context, client *Client) (*models.DashboardStats, error) {
	properties, err := client.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	owners, err := client.Owners.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalProperties: len(properties),
		TotalOwners:     len(owners),
	}
	for _, p := range properties {
		stats.TotalValue += p.Price
	}
	if len(properties) > 0 {
		stats.AveragePrice = stats.TotalValue / float64(len(properties))
	}

	// One trace fetch per property. A failing property is skipped rather
	// than sinking the whole dashboard.
	var sales []models.PropertyTrace
	for _, p := range properties {
		traces, err := client.Traces.ByProperty(ctx, p.ID)
		if err != nil {
			client.logger.Warn("dashboard_traces_unavailable",
				zap.String("property_id", p.ID),
				zap.Error(err),
			)
			continue
		}
		sales = append(sales, traces...)
	}
	stats.TotalSales = len(sales)

	sort.Slice(sales, func(i, j int) bool {
		return parseSaleDate(sales[i].DateSale).After(parseSaleDate(sales[j].DateSale))
	})
	cutoff := time.Now().Add(-recentSaleWindow)
	for _, trace := range sales {
		if parseSaleDate(trace.DateSale).Before(cutoff) {
			break
		}
		stats.RecentTraces = append(stats.RecentTraces, trace)
	}
	return stats, nil
}

// parseSaleDate accepts the date shapes the backend has been seen to emit.
// Unparsable dates sort last and never count as recent.
func parseSaleDate(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
