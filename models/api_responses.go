package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope of every storefront endpoint. Meta is present
// on paginated listings only; rate limit info is attached whenever the
// limiter middleware is active.
type ApiResponse struct {
	Message  string       `json:"message"`
	Data     any          `json:"data,omitempty"`
	Error    bool         `json:"error,omitempty"`
	Meta     *Pagination  `json:"meta,omitempty"`
	Rate     *RateLimiter `json:"rateLimit,omitempty"`
	Endpoint string       `json:"endpoint,omitempty"`
}

// Pagination describes the window over the two-tier result list. Total
// counts exact and suggested matches together, since pagination runs over
// their concatenation.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"12"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"totalPages" example:"4"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"resetAt"`
	ResetInSeconds int       `json:"resetInSeconds"`
}

func rateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func endpointOf(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}
	return c.Request.Method + " " + c.FullPath()
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:  message,
		Data:     data,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:  message,
		Data:     data,
		Meta:     meta,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:  message,
		Error:    true,
		Rate:     rateFromContext(c),
		Endpoint: endpointOf(c),
	}
}
