package controllers

import (
	"errors"
	"strconv"

	driver "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path param; 0 means it was missing or malformed.
func parseID(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// isDuplicateErr detects MySQL duplicate-key violations (error 1062).
func isDuplicateErr(err error) bool {
	var myErr *driver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}
