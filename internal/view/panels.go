package view

import (
	"fmt"
	"strconv"
	"strings"

	"saapadu/internal/domains/analytics/derive"
	donationDto "saapadu/internal/domains/donation/model/dto"
	hotelDto "saapadu/internal/domains/hotel/model/dto"
	menuModel "saapadu/internal/domains/menu/model"
	orderDto "saapadu/internal/domains/order/model/dto"
	promoDto "saapadu/internal/domains/promo/model/dto"
	reviewDto "saapadu/internal/domains/review/model/dto"
	userDto "saapadu/internal/domains/user/model/dto"
	"saapadu/shared/constant"
)

const (
	PanelHotels           = "hotels"
	PanelMenu             = "menu"
	PanelOrders           = "orders"
	PanelDonations        = "donations"
	PanelCustomers        = "customers"
	PanelReviews          = "reviews"
	PanelPromos           = "promos"
	PanelUsers            = "users"
	PanelRecentOrders     = "recent-orders"
	PanelTopHotels        = "top-hotels"
	PanelPerformance      = "performance"
	PanelOrderStats       = "order-stats"
	PanelPopularItems     = "popular-items"
	PanelRevenueBreakdown = "revenue-breakdown"
	PanelCustomerInsights = "customer-insights"
	PanelHotelAnalytics   = "hotel-analytics"
	PanelMenuAnalytics    = "menu-analytics"
)

var Panels = []string{
	PanelHotels, PanelMenu, PanelOrders, PanelDonations, PanelCustomers, PanelReviews,
	PanelPromos, PanelUsers, PanelRecentOrders, PanelTopHotels, PanelPerformance,
	PanelOrderStats, PanelPopularItems, PanelRevenueBreakdown, PanelCustomerInsights,
	PanelHotelAnalytics, PanelMenuAnalytics,
}

const (
	PopularItemsLimit     = 10
	RevenueBreakdownLimit = 10
	AnalyticsCardLimit    = 5
)

const (
	placeholderHotels    = "No hotels added yet"
	placeholderMenu      = "No menu items found"
	placeholderOrders    = "No orders found"
	placeholderDonations = "No donations yet"
	placeholderCustomers = "No customers yet"
	placeholderReviews   = "No reviews yet"
	placeholderPromos    = "No promo codes"
	placeholderUsers     = "No users registered yet"
	placeholderNoOrders  = "No orders yet"
	placeholderNoData    = "No data yet"
)

func Hotels(hotels []hotelDto.HotelResponse) Table {
	t := Table{
		Title:       "Hotels",
		Columns:     []string{"ID", "Name", "Area", "Cuisine", "Rating", "Menu Items"},
		Placeholder: placeholderHotels,
	}

	for _, h := range hotels {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(h.ID), h.Name, h.Area, h.Cuisine, "⭐ " + number(h.Rating), strconv.Itoa(h.MenuCount),
		})
	}

	return t
}

func Menu(items []menuModel.MenuItem) Table {
	t := Table{
		Title:       "Menu Items",
		Columns:     []string{"ID", "Name", "Hotel", "Category", "Price", "Description"},
		Placeholder: placeholderMenu,
	}

	for _, item := range items {
		t.Rows = append(t.Rows, []string{
			item.ID, item.Name, item.Hotel, item.Category, "₹" + number(item.Price), item.Description,
		})
	}

	return t
}

func Orders(orders []orderDto.OrderResponse) Table {
	t := Table{
		Title:       "Orders",
		Columns:     []string{"Order ID", "Customer", "Hotel", "Items", "Total", "Status", "Date"},
		Placeholder: placeholderOrders,
	}

	for _, o := range orders {
		t.Rows = append(t.Rows, []string{
			o.OrderID, o.CustomerName, o.HotelName, fmt.Sprintf("%d items", o.ItemCount), money(o.Total), o.Status, o.Date,
		})
	}

	return t
}

func Donations(donations []donationDto.DonationResponse) Table {
	t := Table{
		Title:       "Donations",
		Columns:     []string{"ID", "Donor", "Hotel", "Orphanage", "Items", "Amount", "Date"},
		Placeholder: placeholderDonations,
	}

	for _, d := range donations {
		t.Rows = append(t.Rows, []string{
			d.ID, d.Donor, d.Hotel, d.Orphanage, d.Items, "₹" + number(d.Amount), d.Date,
		})
	}

	return t
}

func Customers(customers []derive.Customer) Table {
	t := Table{
		Title:       "Customers",
		Columns:     []string{"ID", "Name", "Email", "Phone", "Orders", "Total Spent", "Joined"},
		Placeholder: placeholderCustomers,
	}

	for _, c := range customers {
		t.Rows = append(t.Rows, []string{
			c.ID, c.Name, c.Email, c.Phone, strconv.Itoa(c.Orders), money(c.TotalSpent), c.JoinDate,
		})
	}

	return t
}

func Reviews(reviews []reviewDto.ReviewResponse) Table {
	t := Table{
		Title:       "Reviews",
		Columns:     []string{"ID", "Hotel", "Customer", "Rating", "Comment", "Date"},
		Placeholder: placeholderReviews,
	}

	for _, r := range reviews {
		t.Rows = append(t.Rows, []string{
			r.ID, r.HotelName, r.CustomerName, stars(r.Rating), r.Excerpt, r.Date,
		})
	}

	return t
}

func Promos(promos []promoDto.PromoCodeResponse) Table {
	t := Table{
		Title:       "Promo Codes",
		Columns:     []string{"Code", "Discount", "Min Order", "Expiry", "Used", "Status"},
		Placeholder: placeholderPromos,
	}

	for _, p := range promos {
		status := "Inactive"
		if p.Active {
			status = "Active"
		}

		t.Rows = append(t.Rows, []string{
			p.Code, p.Discount, "₹" + number(p.MinOrderValue), p.ExpiryDate, strconv.Itoa(p.UsageCount), status,
		})
	}

	return t
}

func Users(users []userDto.UserResponse) Table {
	t := Table{
		Title:       "Registered Users",
		Columns:     []string{"Name", "Email", "Phone"},
		Placeholder: placeholderUsers,
	}

	for _, u := range users {
		t.Rows = append(t.Rows, []string{u.Name, u.Email, u.Phone})
	}

	return t
}

func RecentOrders(orders []orderDto.OrderResponse) Table {
	t := Table{
		Title:       "Recent Orders",
		Columns:     []string{"Order", "Customer", "Total", "Status"},
		Placeholder: placeholderNoOrders,
	}

	for _, o := range orders {
		customer := o.CustomerName
		if customer == constant.Empty {
			customer = constant.Guest
		}

		t.Rows = append(t.Rows, []string{"#" + o.OrderID, customer, money(o.Total), o.Status})
	}

	return t
}

func TopHotels(counts []derive.Count) Table {
	t := Table{
		Title:       "Top Hotels",
		Columns:     []string{"Hotel", "Orders"},
		Placeholder: placeholderNoOrders,
	}

	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Name, fmt.Sprintf("%d orders", c.Count)})
	}

	return t
}

func Performance(p derive.Performance) Table {
	return Table{
		Title:   "Performance",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Orders", strconv.Itoa(p.TotalOrders)},
			{"Delivered", strconv.Itoa(p.Delivered)},
			{"Pending", strconv.Itoa(p.Pending)},
			{"Avg Order Value", money(p.AverageOrderValue)},
			{"Total Revenue", money(p.TotalRevenue)},
		},
	}
}

func OrderStats(s derive.OrderStats) Table {
	return Table{
		Title:   "Order Statistics",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Orders", strconv.Itoa(s.Total)},
			{"✅ Delivered", strconv.Itoa(s.Delivered)},
			{"⏳ Pending", strconv.Itoa(s.Pending)},
			{"❌ Cancelled", strconv.Itoa(s.Cancelled)},
		},
	}
}

func PopularItems(counts []derive.Count) Table {
	t := Table{
		Title:       "Popular Items",
		Columns:     []string{"Item", "Orders"},
		Placeholder: placeholderNoData,
	}

	for _, c := range counts[:min(len(counts), PopularItemsLimit)] {
		t.Rows = append(t.Rows, []string{c.Name, fmt.Sprintf("%d orders", c.Count)})
	}

	return t
}

func RevenueBreakdown(revenues []derive.Revenue) Table {
	t := Table{
		Title:       "Revenue by Hotel",
		Columns:     []string{"Hotel", "Revenue"},
		Placeholder: placeholderNoData,
	}

	for _, r := range revenues[:min(len(revenues), RevenueBreakdownLimit)] {
		t.Rows = append(t.Rows, []string{r.Name, money(r.Revenue)})
	}

	return t
}

func CustomerInsights(c derive.CustomerInsights) Table {
	return Table{
		Title:   "Customer Insights",
		Columns: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Customers", strconv.Itoa(c.TotalCustomers)},
			{"Repeat Customers", strconv.Itoa(c.RepeatCustomers)},
			{"Avg Order Value", money(c.AverageOrderValue)},
		},
	}
}

func HotelAnalytics(stats []derive.HotelStat) Table {
	t := Table{
		Title:       "Top Hotels",
		Columns:     []string{"Hotel", "Orders", "Revenue"},
		Placeholder: placeholderNoData,
	}

	for _, h := range stats[:min(len(stats), AnalyticsCardLimit)] {
		t.Rows = append(t.Rows, []string{h.Name, fmt.Sprintf("%d orders", h.Orders), money(h.Revenue)})
	}

	return t
}

func MenuAnalytics(stats []derive.MenuStat) Table {
	t := Table{
		Title:       "Best Selling Items",
		Columns:     []string{"Item", "Sold", "Revenue"},
		Placeholder: placeholderNoData,
	}

	for _, m := range stats[:min(len(stats), AnalyticsCardLimit)] {
		t.Rows = append(t.Rows, []string{m.Name, number(m.Quantity) + " sold", money(m.Revenue)})
	}

	return t
}

func money(value float64) string {
	return "₹" + strconv.FormatFloat(value, 'f', 2, 64)
}

func number(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func stars(rating float64) string {
	return strings.Repeat("⭐", max(0, int(rating)))
}
