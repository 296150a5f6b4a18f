// Package controllers binds HTTP routes to storage operations. Handlers
// parse parameters, invoke storage, and map outcomes to status codes:
// 200/201/204 on success, 400 for invalid input, 404 for missing ids,
// 500 for anything unexpected (detail logged server-side only).
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lojatec/lojatec-api/storage"
)

var store storage.Storage

// SetStorage installs the storage backend used by all handlers.
// Called once from main, and from tests to swap in a test store.
func SetStorage(s storage.Storage) {
	store = s
}

// GetStorage returns the installed storage backend.
func GetStorage() storage.Storage {
	return store
}

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns ok=false; the handler should return immediately.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
