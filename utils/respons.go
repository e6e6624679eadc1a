package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondJSON mengirim response sukses dengan payload apa adanya
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// RespondError mengirim response error dengan format {status: "error", message: ...}
// Kode HTTP diambil dari AppError bila ada, selain itu 500.
func RespondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	c.JSON(code, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// RespondErrorCode sama seperti RespondError tapi dengan kode eksplisit
// (dipakai untuk binding error dan sejenisnya).
func RespondErrorCode(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}
