package models

type DashboardStats struct {
	TotalProducts   int            `json:"total_products"`
	LowStockCount   int            `json:"low_stock_count"`
	TotalRequests   int            `json:"total_requests"`
	PendingRequests int            `json:"pending_requests"`
	Categories      map[string]int `json:"categories"`
}
