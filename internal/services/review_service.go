// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type SubmitReviewRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=2,max=100"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Text       string `json:"text" validate:"required,min=5,max=2000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Submit stores a review against a product. New reviews are always
// unapproved and stay invisible until an admin approves them.
func (s *ReviewService) Submit(ctx context.Context, productID uuid.UUID, req *SubmitReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", productID, true).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	review := &models.Review{
		ProductID:  productID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Text:       req.Text,
		IsApproved: false,
	}

	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ApprovedForProduct lists the publicly visible reviews, newest first.
func (s *ReviewService) ApprovedForProduct(ctx context.Context, productID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ? AND is_approved = ?", productID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.Review
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).
		Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

// AverageRating computes the mean approved rating for a product, zero
// when no approved reviews exist.
func (s *ReviewService) AverageRating(ctx context.Context, productID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&result).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	return result.Avg, result.Count, nil
}

// Admin moderation

func (s *ReviewService) ListPending(ctx context.Context, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Review{}).
		Preload("Product").
		Where("is_approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.Review
	if err := utils.ApplyPagination(query.Order("created_at ASC"), params).
		Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&review).
		Update("is_approved", approved).Error; err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	review.IsApproved = approved
	return &review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
