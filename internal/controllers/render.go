package controllers

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
)

// Renderer writes JSON responses, indented when Pretty is set
type Renderer struct {
	Pretty bool
}

// JSON writes obj with the given status code
func (r Renderer) JSON(ctx *gin.Context, status int, obj any) {
	if r.Pretty {
		ctx.IndentedJSON(status, obj)
		return
	}
	ctx.JSON(status, obj)
}

// requestLogger returns a logger entry tagged with the request id
func requestLogger(ctx *gin.Context) *log.Entry {
	return log.WithField("request_id", middleware.GetRequestID(ctx))
}
