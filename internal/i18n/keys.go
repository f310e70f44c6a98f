// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"

	// Cart
	KeyCartItemAdded      = "cart.item_added"
	KeyCartItemUpdated    = "cart.item_updated"
	KeyCartItemRemoved    = "cart.item_removed"
	KeyCartCleared        = "cart.cleared"
	KeyCartEmpty          = "cart.empty"
	KeyCartInvalidQty     = "cart.invalid_quantity"
	KeyCartItemNotFound   = "cart.not_found"
	KeyCartBelowMinimum   = "cart.below_minimum"
	KeyCartProductMissing = "cart.product_unavailable"

	// Orders
	KeyOrderPlaced            = "order.placed"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderStatusUpdated     = "order.status_updated"
	KeyOrderInvalidTransition = "order.invalid_transition"
	KeyOrderPaymentConfirmed  = "order.payment_confirmed"

	// Products
	KeyProductCreated     = "product.created"
	KeyProductUpdated     = "product.updated"
	KeyProductDeactivated = "product.deactivated"
	KeyProductNotFound    = "product.not_found"

	// Categories
	KeyCategoryCreated  = "category.created"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"
	KeyCategoryInUse    = "category.in_use"
	KeyCategoryExists   = "category.exists"

	// Reviews
	KeyReviewSubmitted = "review.submitted"
	KeyReviewApproved  = "review.approved"
	KeyReviewRejected  = "review.rejected"
	KeyReviewDeleted   = "review.deleted"
	KeyReviewNotFound  = "review.not_found"

	// Inquiries
	KeyInquiryReceived = "inquiry.received"
	KeyInquiryDeleted  = "inquiry.deleted"
	KeyInquiryNotFound = "inquiry.not_found"

	// Admin
	KeyAdminAccessDenied    = "admin.access_denied"
	KeyAdminSettingsUpdated = "admin.settings_updated"
	KeyAdminNotFound        = "admin.not_found"
	KeyPaymentNotFound      = "payment.not_found"

	// File uploads
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
