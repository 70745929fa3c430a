package httpserver

import "net/http"

// Response is the envelope every handler in this service responds with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	CodeSuccess      = 0
	CodeInvalidParam = 10001
	CodeNotFound     = 10004
	CodeServerError  = 10005
)

func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, Response{Code: CodeSuccess, Message: "success", Data: data})
}

func (c *Context) BadRequest(message string) {
	c.JSON(http.StatusBadRequest, Response{Code: CodeInvalidParam, Message: message})
}

func (c *Context) NotFound(message string) {
	c.JSON(http.StatusNotFound, Response{Code: CodeNotFound, Message: message})
}

func (c *Context) ServerError(message string) {
	c.JSON(http.StatusInternalServerError, Response{Code: CodeServerError, Message: message})
}
