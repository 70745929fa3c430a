package httpserver

import "github.com/gin-gonic/gin"

// Context wraps gin.Context behind the subset of request/response methods
// this service's handlers actually use.
type Context struct {
	ginCtx *gin.Context
}

func newContext(c *gin.Context) *Context {
	return &Context{ginCtx: c}
}

func (c *Context) Param(key string) string {
	return c.ginCtx.Param(key)
}

func (c *Context) Query(key string) string {
	return c.ginCtx.Query(key)
}

func (c *Context) QueryDefault(key, fallback string) string {
	return c.ginCtx.DefaultQuery(key, fallback)
}

func (c *Context) BindJSON(obj any) error {
	return c.ginCtx.ShouldBindJSON(obj)
}

func (c *Context) JSON(code int, obj any) {
	c.ginCtx.JSON(code, obj)
}

func (c *Context) Gin() *gin.Context {
	return c.ginCtx
}
