package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/liceo-connect/liceo-api/pkg/errors"
)

// idParam reads a path segment that must hold an integer record id.
func idParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, name+" must be an integer")
	}
	return id, nil
}

func bindError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid JSON payload")
}
