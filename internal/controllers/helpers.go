package controllers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report JSON field names (not Go field names) in validation details.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondError writes the uniform error body:
// {"error": {"message": ..., "details": [...]}}.
func respondError(c *gin.Context, status int, message string, details []gin.H) {
	body := gin.H{"message": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, gin.H{"error": body})
}

// respondBindingError maps a ShouldBindJSON failure to a 400. Field rule
// violations produce one details entry each; anything else (malformed JSON,
// wrong types) gets a bare message.
func respondBindingError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()),
			})
		}
		respondError(c, http.StatusBadRequest, "Validation fails", details)
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
}

// parseIDParam parses the :id path parameter. A second return of false means
// a 400 has already been written.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id format", nil)
		return 0, false
	}
	return uint(id), true
}
