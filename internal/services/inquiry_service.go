// internal/services/inquiry_service.go
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

// InquiryNotifier forwards contact-form submissions to the business
// mailbox. Implementations must not block the caller.
type InquiryNotifier interface {
	InquiryReceived(inquiry *models.Inquiry)
}

type InquiryService struct {
	db       *gorm.DB
	notifier InquiryNotifier
}

type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,in_mobile"`
	Subject string `json:"subject,omitempty" validate:"omitempty,max=300"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

func NewInquiryService(db *gorm.DB, notifier InquiryNotifier) *InquiryService {
	return &InquiryService{db: db, notifier: notifier}
}

func (s *InquiryService) Submit(ctx context.Context, req *SubmitInquiryRequest) (*models.Inquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: subject,
		Message: req.Message,
	}

	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if s.notifier != nil {
		s.notifier.InquiryReceived(inquiry)
	}
	return inquiry, nil
}

// List returns inquiries for the admin inbox, unread first.
func (s *InquiryService) List(ctx context.Context, params utils.PaginationParams, unreadOnly bool) ([]models.Inquiry, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Inquiry{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	var inquiries []models.Inquiry
	if err := utils.ApplyPagination(query.Order("is_read ASC, created_at DESC"), params).
		Find(&inquiries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch inquiries: %w", err)
	}

	return inquiries, total, nil
}

// MarkRead flags an inquiry as handled. Marking twice is harmless.
func (s *InquiryService) MarkRead(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !inquiry.IsRead {
		if err := s.db.WithContext(ctx).Model(&inquiry).Update("is_read", true).Error; err != nil {
			return nil, fmt.Errorf("failed to mark inquiry read: %w", err)
		}
		inquiry.IsRead = true
	}
	return &inquiry, nil
}

func (s *InquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Inquiry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inquiry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
