package response

// DashboardResponse aggregates the current record sets. Revenue and
// customers cover only tables present at call time; order count covers
// every line regardless of status.
type DashboardResponse struct {
	Revenue          float64 `json:"revenue"`
	Customers        int     `json:"customers"`
	OrderCount       int64   `json:"order_count"`
	ActiveTableCount int     `json:"active_table_count"`
}
