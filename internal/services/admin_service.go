// internal/services/admin_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

// DashboardStats is the back-office landing page summary. Revenue
// counts every order that is not cancelled and not awaiting payment.
type DashboardStats struct {
	TotalOrders       int64            `json:"total_orders"`
	PendingOrders     int64            `json:"pending_orders"`
	OrdersThisMonth   int64            `json:"orders_this_month"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	MonthlyRevenue    decimal.Decimal  `json:"monthly_revenue"`
	TotalProducts     int64            `json:"total_products"`
	ActiveProducts    int64            `json:"active_products"`
	PendingReviews    int64            `json:"pending_reviews"`
	UnreadInquiries   int64            `json:"unread_inquiries"`
	LowStockProducts  int64            `json:"low_stock_products"`
	RecentOrders      []models.Order   `json:"recent_orders"`
	TopViewedProducts []models.Product `json:"top_viewed_products"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard Statistics
func (s *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.db.WithContext(ctx)
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenueStatuses := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	}

	// Order statistics
	db.Model(&models.Order{}).Count(&stats.TotalOrders)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders)
	db.Model(&models.Order{}).Where("created_at >= ?", monthStart).Count(&stats.OrdersThisMonth)

	// Revenue statistics
	var totalRevenue, monthlyRevenue decimal.Decimal
	db.Model(&models.Order{}).
		Where("status IN ?", revenueStatuses).
		Select("COALESCE(SUM(total), 0)").Scan(&totalRevenue)
	db.Model(&models.Order{}).
		Where("status IN ? AND created_at >= ?", revenueStatuses, monthStart).
		Select("COALESCE(SUM(total), 0)").Scan(&monthlyRevenue)
	stats.TotalRevenue = totalRevenue
	stats.MonthlyRevenue = monthlyRevenue

	// Catalog statistics
	db.Model(&models.Product{}).Count(&stats.TotalProducts)
	db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts)
	db.Model(&models.Product{}).
		Where("is_active = ? AND stock_status IN ?", true,
			[]models.StockStatus{models.StockStatusLowStock, models.StockStatusOutOfStock}).
		Count(&stats.LowStockProducts)

	// Moderation queues
	db.Model(&models.Review{}).Where("is_approved = ?", false).Count(&stats.PendingReviews)
	db.Model(&models.Inquiry{}).Where("is_read = ?", false).Count(&stats.UnreadInquiries)

	if err := db.Preload("Items").Order("created_at DESC").Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	if err := db.Where("is_active = ?", true).Order("view_count DESC").Limit(5).
		Find(&stats.TopViewedProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top products: %w", err)
	}

	return stats, nil
}

// Site settings

func (s *AdminService) GetSettings(ctx context.Context) (map[string]string, error) {
	var settings []models.SiteSetting
	if err := s.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// UpdateSetting upserts one key-value pair.
func (s *AdminService) UpdateSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("setting key must not be empty")
	}

	var setting models.SiteSetting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	switch {
	case err == nil:
		if updateErr := s.db.WithContext(ctx).Model(&setting).
			Update("value", value).Error; updateErr != nil {
			return fmt.Errorf("failed to update setting: %w", updateErr)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.SiteSetting{Key: key, Value: value}
		if createErr := s.db.WithContext(ctx).Create(&setting).Error; createErr != nil {
			return fmt.Errorf("failed to create setting: %w", createErr)
		}
	default:
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
