package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seolargo/skivori-case/pkg/discord"
	pkgErrors "github.com/seolargo/skivori-case/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Known HTTPErrors keep their status code and
// message; anything else becomes a 500 and is reported to Discord so it is
// never silently swallowed.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notify(c.Request.Context(), d, "Internal error", err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// BadRequest writes a 400 with the given message. Used for request binding failures.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   message,
	})
}

// PanicError writes a 500 for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notify(c.Request.Context(), d, "Panic recovered", fmt.Errorf("%v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

func notify(ctx context.Context, d discord.IDiscord, title string, err error) {
	if d == nil {
		return
	}
	// Best effort only. A dead webhook must never affect the response.
	_ = d.SendError(ctx, title, "Unhandled error in request path", err)
}
