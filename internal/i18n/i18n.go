// Package i18n provides internationalization support for the cart service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "ko-KR,ko;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "ko" from "ko-KR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.cart_not_found":       "Cart not found",
			"error.product_not_found":    "Product not found",
			"error.coupon_not_found":     "Coupon not found",
			"error.coupon_exists":        "A coupon with this code already exists",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timed out",

			// Success messages
			"success.cart_updated":      "Cart updated successfully",
			"success.totals_calculated": "Cart totals calculated successfully",
		},
		"ko": {
			// Error messages
			"error.invalid_request":      "잘못된 요청입니다",
			"error.invalid_request_body": "잘못된 요청 본문입니다",
			"error.internal_error":       "예기치 않은 오류가 발생했습니다",
			"error.unauthorized":         "인증되지 않았습니다",
			"error.invalid_credentials":  "이메일 또는 비밀번호가 올바르지 않습니다",
			"error.api_key_required":     "API 키가 필요합니다",
			"error.invalid_api_key":      "유효하지 않은 API 키입니다",
			"error.forbidden":            "권한이 없습니다",
			"error.not_found":            "찾을 수 없습니다",
			"error.cart_not_found":       "장바구니를 찾을 수 없습니다",
			"error.product_not_found":    "상품을 찾을 수 없습니다",
			"error.coupon_not_found":     "쿠폰을 찾을 수 없습니다",
			"error.coupon_exists":        "이미 존재하는 쿠폰 코드입니다",
			"error.rate_limit_exceeded":  "요청이 너무 많습니다. 잠시 후 다시 시도해주세요",
			"error.conflict":             "충돌이 발생했습니다",
			"error.invalid_token":        "유효하지 않거나 만료된 토큰입니다",
			"error.token_required":       "인증 토큰이 필요합니다",
			"error.timeout":              "요청 시간이 초과되었습니다",

			// Success messages
			"success.cart_updated":      "장바구니가 업데이트되었습니다",
			"success.totals_calculated": "장바구니 합계가 계산되었습니다",
		},
	}
}
