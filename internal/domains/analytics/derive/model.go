package derive

import (
	"time"

	menuModel "saapadu/internal/domains/menu/model"
	orderModel "saapadu/internal/domains/order/model"
)

// JoinDatePolicy picks which order dates a customer.
type JoinDatePolicy string

const (
	// JoinDateFirstSeen uses the first order met while iterating the stored list.
	JoinDateFirstSeen JoinDatePolicy = "first_seen"
	// JoinDateEarliest uses the chronologically earliest order.
	JoinDateEarliest JoinDatePolicy = "earliest"
)

const (
	TopHotelsLimit     = 5
	RecentOrdersLimit  = 5
	MenuAnalyticsLimit = 10
	TopCustomersLimit  = 5
)

type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"totalSpent"`
	JoinDate   string  `json:"joinDate"`
}

type DailyMetrics struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Count is a name with the number of times it occurred.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Revenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

type Performance struct {
	TotalOrders       int     `json:"totalOrders"`
	Delivered         int     `json:"deliveredOrders"`
	Pending           int     `json:"pendingOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type CustomerInsights struct {
	TotalCustomers    int        `json:"totalCustomers"`
	RepeatCustomers   int        `json:"repeatCustomers"`
	AverageOrderValue float64    `json:"averageOrderValue"`
	TopCustomers      []Customer `json:"topCustomers"`
}

type HotelStat struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type MenuStat struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// Summary holds the dashboard cards.
type Summary struct {
	TotalHotels    int     `json:"totalHotels"`
	TodayOrders    int     `json:"todayOrders"`
	TodayRevenue   float64 `json:"todayRevenue"`
	TotalDonations int     `json:"totalDonations"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalMenuItems int     `json:"totalMenuItems"`
}

// Views is every derived collection computed from one state of the source collections.
// A Views value is never modified after Compute returns it.
type Views struct {
	MenuItems        []menuModel.MenuItem `json:"menuItems"`
	Customers        []Customer           `json:"customers"`
	Today            DailyMetrics         `json:"today"`
	Popular          []Count              `json:"popularItems"`
	RevenueByHotel   []Revenue            `json:"revenueByHotel"`
	OrderStats       OrderStats           `json:"orderStats"`
	Performance      Performance          `json:"performance"`
	TopHotels        []Count              `json:"topHotels"`
	RecentOrders     []orderModel.Order   `json:"recentOrders"`
	CustomerInsights CustomerInsights     `json:"customerInsights"`
	HotelAnalytics   []HotelStat          `json:"hotelAnalytics"`
	MenuAnalytics    []MenuStat           `json:"menuAnalytics"`
	Summary          Summary              `json:"summary"`
	ComputedAt       time.Time            `json:"computedAt"`
}
