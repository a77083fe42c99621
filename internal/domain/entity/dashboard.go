package entity

// Dashboard aggregates the back-office overview figures
type Dashboard struct {
	TotalProducts      int                 `json:"totalProducts"`
	ProductsByCategory map[Category]int    `json:"productsByCategory"`
	TotalOrders        int                 `json:"totalOrders"`
	OrdersByStatus     map[OrderStatus]int `json:"ordersByStatus"`
	Revenue            int64               `json:"revenue"`
	TotalMessages      int                 `json:"totalMessages"`
	UnreadMessages     int                 `json:"unreadMessages"`
}
