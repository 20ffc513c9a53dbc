// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyCartNotFound indicates an unknown cart ID.
	ErrKeyCartNotFound = "error.cart_not_found"
	// ErrKeyProductNotFound indicates an unknown product ID.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyCouponNotFound indicates an unknown coupon code.
	ErrKeyCouponNotFound = "error.coupon_not_found"
	// ErrKeyCouponExists indicates a coupon code collision.
	ErrKeyCouponExists = "error.coupon_exists"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyCartUpdated indicates a successful cart mutation.
	SuccessKeyCartUpdated = "success.cart_updated"
	// SuccessKeyTotalsCalculated indicates a successful totals calculation.
	SuccessKeyTotalsCalculated = "success.totals_calculated"
)
