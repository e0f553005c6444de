// Package derive computes the read-only views of the dashboard from the stored
// collections. Every function is pure and treats nil input as empty.
package derive

import (
	"cmp"
	"slices"
	"time"

	donationModel "saapadu/internal/domains/donation/model"
	hotelModel "saapadu/internal/domains/hotel/model"
	menuModel "saapadu/internal/domains/menu/model"
	orderModel "saapadu/internal/domains/order/model"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"
)

type Input struct {
	Hotels    []hotelModel.Hotel
	Orders    []orderModel.Order
	Donations []donationModel.Donation
	Now       time.Time
	Policy    JoinDatePolicy
}

func Compute(in Input) Views {
	menuItems := MenuItems(in.Hotels)
	customers := Customers(in.Orders, in.Policy)
	today := Daily(in.Orders, in.Now)

	return Views{
		MenuItems:        menuItems,
		Customers:        customers,
		Today:            today,
		Popular:          Popularity(in.Orders),
		RevenueByHotel:   RevenueByHotel(in.Orders),
		OrderStats:       Stats(in.Orders),
		Performance:      PerformanceOf(in.Orders),
		TopHotels:        TopHotelsByOrders(in.Orders, TopHotelsLimit),
		RecentOrders:     RecentOrders(in.Orders, RecentOrdersLimit),
		CustomerInsights: Insights(customers, in.Orders),
		HotelAnalytics:   HotelAnalytics(in.Orders),
		MenuAnalytics:    MenuAnalytics(in.Orders, MenuAnalyticsLimit),
		Summary: Summary{
			TotalHotels:    len(in.Hotels),
			TodayOrders:    today.Orders,
			TodayRevenue:   today.Revenue,
			TotalDonations: len(in.Donations),
			TotalCustomers: len(customers),
			TotalMenuItems: len(menuItems),
		},
		ComputedAt: in.Now,
	}
}

// MenuItems flattens the hotel menus in hotel order, then category order, then entry order.
func MenuItems(hotels []hotelModel.Hotel) []menuModel.MenuItem {
	items := []menuModel.MenuItem{}

	for _, hotel := range hotels {
		for _, category := range constant.MenuCategories {
			for index, entry := range hotel.Menu.Category(category) {
				items = append(items, menuModel.FromEntry(hotel, category, index, entry))
			}
		}
	}

	return items
}

// Customers groups orders by customer key in first-encounter order.
func Customers(orders []orderModel.Order, policy JoinDatePolicy) []Customer {
	customers := []Customer{}
	positions := make(map[string]int)
	joined := make(map[string]time.Time)

	for _, order := range orders {
		key := order.CustomerKey()

		position, ok := positions[key]
		if !ok {
			position = len(customers)
			positions[key] = position
			joined[key] = order.Timestamp.Time

			customers = append(customers, Customer{
				ID:    key,
				Name:  orDefault(order.CustomerName, constant.Guest),
				Email: orDefault(order.Email, constant.NotAvailable),
				Phone: orDefault(order.Phone, constant.NotAvailable),
			})
		} else if policy == JoinDateEarliest {
			current := joined[key]
			at := order.Timestamp.Time

			if current.IsZero() || (!at.IsZero() && at.Before(current)) {
				joined[key] = at
			}
		}

		customers[position].Orders++
		customers[position].TotalSpent += order.Total.Float()
	}

	for index := range customers {
		customers[index].JoinDate = timezone.FormatDate(joined[customers[index].ID])
	}

	return customers
}

// Daily counts the orders placed on the calendar date of now and sums their totals.
func Daily(orders []orderModel.Order, now time.Time) DailyMetrics {
	var metrics DailyMetrics

	for _, order := range orders {
		if timezone.SameDate(order.Timestamp.Time, now) {
			metrics.Orders++
			metrics.Revenue += order.Total.Float()
		}
	}

	return metrics
}

// Popularity counts how many times each item name appears across all orders.
func Popularity(orders []orderModel.Order) []Count {
	counter := newTally[int]()

	for _, order := range orders {
		for _, item := range order.Items {
			counter.add(item.Name, func(count *int) { *count++ })
		}
	}

	return sortedDesc(counter, func(name string, count int) Count {
		return Count{Name: name, Count: count}
	}, func(c Count) int { return c.Count })
}

func RevenueByHotel(orders []orderModel.Order) []Revenue {
	counter := newTally[float64]()

	for _, order := range orders {
		counter.add(order.HotelOrUnknown(), func(revenue *float64) { *revenue += order.Total.Float() })
	}

	return sortedDesc(counter, func(name string, revenue float64) Revenue {
		return Revenue{Name: name, Revenue: revenue}
	}, func(r Revenue) float64 { return r.Revenue })
}

func Stats(orders []orderModel.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}

	for _, order := range orders {
		switch order.Status {
		case constant.OrderStatusPending:
			stats.Pending++
		case constant.OrderStatusConfirmed:
			stats.Confirmed++
		case constant.OrderStatusDelivered:
			stats.Delivered++
		case constant.OrderStatusCancelled:
			stats.Cancelled++
		}
	}

	return stats
}

func PerformanceOf(orders []orderModel.Order) Performance {
	stats := Stats(orders)
	revenue := totalRevenue(orders)

	return Performance{
		TotalOrders:       stats.Total,
		Delivered:         stats.Delivered,
		Pending:           stats.Pending,
		AverageOrderValue: average(revenue, len(orders)),
		TotalRevenue:      revenue,
	}
}

func TopHotelsByOrders(orders []orderModel.Order, limit int) []Count {
	counter := newTally[int]()

	for _, order := range orders {
		counter.add(order.HotelOrUnknown(), func(count *int) { *count++ })
	}

	counts := sortedDesc(counter, func(name string, count int) Count {
		return Count{Name: name, Count: count}
	}, func(c Count) int { return c.Count })

	return counts[:min(limit, len(counts))]
}

// RecentOrders returns the last limit orders of the stored list, last stored first.
func RecentOrders(orders []orderModel.Order, limit int) []orderModel.Order {
	recent := slices.Clone(orders[max(len(orders)-limit, 0):])
	slices.Reverse(recent)

	if recent == nil {
		return []orderModel.Order{}
	}

	return recent
}

// Insights does not reorder customers.
func Insights(customers []Customer, orders []orderModel.Order) CustomerInsights {
	insights := CustomerInsights{
		TotalCustomers:    len(customers),
		AverageOrderValue: average(totalRevenue(orders), len(orders)),
	}

	for _, customer := range customers {
		if customer.Orders > 1 {
			insights.RepeatCustomers++
		}
	}

	top := slices.Clone(customers)
	slices.SortStableFunc(top, func(a, b Customer) int {
		return cmp.Compare(b.TotalSpent, a.TotalSpent)
	})

	insights.TopCustomers = top[:min(TopCustomersLimit, len(top))]
	if insights.TopCustomers == nil {
		insights.TopCustomers = []Customer{}
	}

	return insights
}

func HotelAnalytics(orders []orderModel.Order) []HotelStat {
	counter := newTally[HotelStat]()

	for _, order := range orders {
		counter.add(order.HotelOrUnknown(), func(stat *HotelStat) {
			stat.Orders++
			stat.Revenue += order.Total.Float()
		})
	}

	return sortedDesc(counter, func(name string, stat HotelStat) HotelStat {
		stat.Name = name

		return stat
	}, func(s HotelStat) float64 { return s.Revenue })
}

// MenuAnalytics sums units sold and revenue per item name. Items without a quantity count once.
func MenuAnalytics(orders []orderModel.Order, limit int) []MenuStat {
	counter := newTally[MenuStat]()

	for _, order := range orders {
		for _, item := range order.Items {
			counter.add(item.Name, func(stat *MenuStat) {
				stat.Quantity += item.Units()
				stat.Revenue += item.Price.Float() * item.Units()
			})
		}
	}

	stats := sortedDesc(counter, func(name string, stat MenuStat) MenuStat {
		stat.Name = name

		return stat
	}, func(s MenuStat) float64 { return s.Revenue })

	return stats[:min(limit, len(stats))]
}

func totalRevenue(orders []orderModel.Order) float64 {
	var revenue float64
	for _, order := range orders {
		revenue += order.Total.Float()
	}

	return revenue
}

func average(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

func orDefault(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}
