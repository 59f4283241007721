// internal/i18n/keys.go
package i18n

// Translation keys used across handlers and middleware.
const (
	// Auth
	KeyAuthRequired       = "auth.required"
	KeyAuthInvalidToken   = "auth.invalid_token"
	KeyAuthInvalidCreds   = "auth.invalid_credentials"
	KeyAuthUserExists     = "auth.user_exists"
	KeyAuthRegistered     = "auth.registered"
	KeyAuthLoginSuccess   = "auth.login_success"
	KeyAuthTokenRefreshed = "auth.token_refreshed"
	KeyAccessDenied       = "auth.access_denied"
	KeySellerOnly         = "auth.seller_only"

	// User
	KeyUserNotFound       = "user.not_found"
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserAvatarUpdated  = "user.avatar_updated"

	// Artwork
	KeyArtworkNotFound   = "artwork.not_found"
	KeyArtworkCreated    = "artwork.created"
	KeyArtworkUpdated    = "artwork.updated"
	KeyArtworkDeleted    = "artwork.deleted"
	KeyArtworkOutOfStock = "artwork.out_of_stock"
	KeyArtworkNotOwner   = "artwork.not_owner"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemUpdated  = "cart.item_updated"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartItemNotFound = "cart.item.not_found"
	KeyCartEmpty        = "cart.empty"

	// Order
	KeyOrderPlaced            = "order.placed"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderPaymentConfirmed  = "order.payment_confirmed"
	KeyOrderInsufficientStock = "order.insufficient_stock"

	// Event
	KeyEventNotFound = "event.not_found"

	// Upload
	KeyUploadInvalidType = "upload.invalid_type"
	KeyUploadTooLarge    = "upload.too_large"
	KeyUploadFailed      = "upload.failed"
	KeyUploadSuccess     = "upload.success"

	// Validation / generic
	KeyValidationInvalid = "validation.invalid"
	KeyInternalError     = "error.internal"
	KeyRateLimited       = "error.rate_limited"
)
