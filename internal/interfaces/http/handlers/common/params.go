// Package common provides shared HTTP handler utilities.
package common

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reqtrack/reqtrack/internal/shared/constants"
	"github.com/reqtrack/reqtrack/internal/shared/errors"
	"github.com/reqtrack/reqtrack/internal/shared/i18n"
)

// ParseIDParam reads a positive numeric path parameter. label names the
// resource in the error message.
func ParseIDParam(c *gin.Context, name, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + label + " ID")
	}
	return uint(id), nil
}

// ParseOptionalUintQuery returns nil when the query key is absent.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil, errors.NewValidationError("Invalid " + key + " parameter")
	}
	id := uint(v)
	return &id, nil
}

// CurrentUserID returns the id the auth middleware stored on the context.
func CurrentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, errors.NewUnauthorizedError("Not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("Not authenticated")
	}
	return id, nil
}

// Lang picks the label language from Accept-Language.
func Lang(c *gin.Context) i18n.Lang {
	return i18n.FromAcceptLanguage(c.GetHeader(constants.HeaderAcceptLanguage))
}
