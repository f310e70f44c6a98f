// internal/services/review_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       *ReviewService
	productID uuid.UUID
}

func (s *ReviewServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	// Postgres owns the real schema; this one carries only the columns
	// the review queries touch.
	s.Require().NoError(db.Exec(`CREATE TABLE products (
		id text PRIMARY KEY,
		created_at datetime, updated_at datetime, deleted_at datetime,
		name text, is_active boolean)`).Error)
	s.Require().NoError(db.Exec(`CREATE TABLE reviews (
		id text PRIMARY KEY,
		created_at datetime, updated_at datetime, deleted_at datetime,
		product_id text, author_name text, rating integer,
		text text, is_approved boolean)`).Error)

	s.db = db
	s.svc = NewReviewService(db)
	s.productID = uuid.New()
	s.Require().NoError(db.Exec(
		"INSERT INTO products (id, name, is_active) VALUES (?, ?, ?)",
		s.productID, "Dragon Figurine", true).Error)
}

func (s *ReviewServiceTestSuite) submit(rating int) *models.Review {
	review, err := s.svc.Submit(context.Background(), s.productID, &SubmitReviewRequest{
		AuthorName: "Priya",
		Rating:     rating,
		Text:       "Crisp print quality, no visible layer lines.",
	})
	s.Require().NoError(err)
	return review
}

func (s *ReviewServiceTestSuite) TestSubmitStartsUnapproved() {
	review := s.submit(5)

	s.NotEqual(uuid.Nil, review.ID)
	s.False(review.IsApproved)

	visible, total, err := s.svc.ApprovedForProduct(context.Background(), s.productID, utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)
	s.Empty(visible)
	s.Zero(total)
}

func (s *ReviewServiceTestSuite) TestSubmitRejectsOutOfRangeRating() {
	for _, rating := range []int{0, 6} {
		_, err := s.svc.Submit(context.Background(), s.productID, &SubmitReviewRequest{
			AuthorName: "Priya",
			Rating:     rating,
			Text:       "Crisp print quality, no visible layer lines.",
		})
		s.Error(err, "rating %d", rating)
	}

	var count int64
	s.Require().NoError(s.db.Model(&models.Review{}).Count(&count).Error)
	s.Zero(count)
}

func (s *ReviewServiceTestSuite) TestSubmitRequiresActiveProduct() {
	_, err := s.svc.Submit(context.Background(), uuid.New(), &SubmitReviewRequest{
		AuthorName: "Priya",
		Rating:     4,
		Text:       "Crisp print quality, no visible layer lines.",
	})
	s.ErrorIs(err, ErrNotFound)

	retiredID := uuid.New()
	s.Require().NoError(s.db.Exec(
		"INSERT INTO products (id, name, is_active) VALUES (?, ?, ?)",
		retiredID, "Retired Model", false).Error)

	_, err = s.svc.Submit(context.Background(), retiredID, &SubmitReviewRequest{
		AuthorName: "Priya",
		Rating:     4,
		Text:       "Crisp print quality, no visible layer lines.",
	})
	s.ErrorIs(err, ErrNotFound)
}

func (s *ReviewServiceTestSuite) TestAverageRatingCountsOnlyApproved() {
	ctx := context.Background()
	first := s.submit(5)
	second := s.submit(3)
	s.submit(1) // never approved

	_, err := s.svc.SetApproved(ctx, first.ID, true)
	s.Require().NoError(err)
	_, err = s.svc.SetApproved(ctx, second.ID, true)
	s.Require().NoError(err)

	avg, count, err := s.svc.AverageRating(ctx, s.productID)
	s.Require().NoError(err)
	s.InDelta(4.0, avg, 0.001)
	s.EqualValues(2, count)

	visible, total, err := s.svc.ApprovedForProduct(ctx, s.productID, utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)
	s.Len(visible, 2)
	s.EqualValues(2, total)

	pending, pendingTotal, err := s.svc.ListPending(ctx, utils.PaginationParams{Page: 1, Limit: 20})
	s.Require().NoError(err)
	s.Len(pending, 1)
	s.EqualValues(1, pendingTotal)
}

func (s *ReviewServiceTestSuite) TestAverageRatingEmptyProduct() {
	avg, count, err := s.svc.AverageRating(context.Background(), s.productID)
	s.Require().NoError(err)
	s.Zero(avg)
	s.Zero(count)
}

func (s *ReviewServiceTestSuite) TestUnapproveHidesReview() {
	ctx := context.Background()
	review := s.submit(5)

	_, err := s.svc.SetApproved(ctx, review.ID, true)
	s.Require().NoError(err)
	_, err = s.svc.SetApproved(ctx, review.ID, false)
	s.Require().NoError(err)

	_, count, err := s.svc.AverageRating(ctx, s.productID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *ReviewServiceTestSuite) TestDeleteMissingReview() {
	s.ErrorIs(s.svc.Delete(context.Background(), uuid.New()), ErrNotFound)
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
