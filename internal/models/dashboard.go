package models

// DashboardStats aggregates console overview figures computed from the
// remote API's owner, property, and trace listings. RecentTraces holds the
// sales of the last 30 days, newest first.
type DashboardStats struct {
	TotalProperties int             `json:"totalProperties"`
	TotalOwners     int             `json:"totalOwners"`
	TotalValue      float64         `json:"totalValue"`
	AveragePrice    float64         `json:"averagePrice"`
	TotalSales      int             `json:"totalSales"`
	RecentTraces    []PropertyTrace `json:"recentTraces,omitempty"`
}
