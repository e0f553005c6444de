package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyAdminEmail contextKey = "admin_email"
	ContextKeyTokenID    contextKey = "token_id"
)

// Storage keys. They match the keys the browser dashboard used so exported data
// can be loaded as-is.
const (
	StorageKeyHotels     = "adminHotels"
	StorageKeyOrders     = "orders"
	StorageKeyDonations  = "adminDonations"
	StorageKeyReviews    = "adminReviews"
	StorageKeyPromoCodes = "adminPromoCodes"
	StorageKeyUsers      = "adminUsers"

	StorageKeyCommissionPercentage = "commissionPercentage"
	StorageKeyMinOrderValue        = "minOrderValue"
	StorageKeyMaxDeliveryDistance  = "maxDeliveryDistance"
	StorageKeyBaseDeliveryFee      = "baseDeliveryFee"
	StorageKeyAdminCredentialEmail = "adminCredentialEmail"
	StorageKeyAdminPassword        = "adminPassword"

	StorageKeyAdminToken = "adminToken"
	StorageKeyAdminEmail = "adminEmail"
)

const (
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

const (
	RequestParamID       = "id"
	RequestParamPanel    = "panel"
	RequestParamHotel    = "hotel"
	RequestParamCategory = "category"
	RequestParamStatus   = "status"
	RequestParamRating   = "rating"
	RequestParamFormat   = "format"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelStorageScopeName    = "storage"

	OtelKeyAttribute = "storage.key"
	OtelS3ScopeName  = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseMessageNoChange           = "no changes applied"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	// ImagePlaceholder is stored when a hotel has no image.
	ImagePlaceholder = "🍲"
	NotAvailable     = "N/A"
	Guest            = "Guest"
	Unknown          = "Unknown"
	Empty            = ""
)

// Menu categories in display order. A hotel menu has exactly these four.
const (
	MenuCategoryBreakfast = "breakfast"
	MenuCategoryLunch     = "lunch"
	MenuCategorySnacks    = "snacks"
	MenuCategoryDinner    = "dinner"
)

var MenuCategories = []string{MenuCategoryBreakfast, MenuCategoryLunch, MenuCategorySnacks, MenuCategoryDinner}

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

var OrderStatuses = []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)
