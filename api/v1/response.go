package v1

import (
	"net/http"
	"strconv"

	"devconnect/api/v1/request"
	"devconnect/internal/validator"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body and, on failure, writes the contract's
// validation shape: one {"msg":...} entry per violated field.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		msgs := validator.Translate(err, request.Messages)
		list := make([]gin.H, 0, len(msgs))
		for _, m := range msgs {
			list = append(list, gin.H{"msg": m})
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": list})
		return false
	}
	return true
}

// pathID parses a numeric path parameter. The bool reports success; the
// caller decides which not-found message the route contract wants.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
