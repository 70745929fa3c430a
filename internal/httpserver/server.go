// Package httpserver wraps gin behind a small Server/Context pair so route
// handlers return an error instead of writing the response themselves,
// matching the rest of this service's explicit-error-return style.
package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*Context) error
type MiddlewareFunc func(*Context) error

type Server struct {
	engine *gin.Engine
	server *http.Server
	port   int
}

type Option func(*Server)

func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

func WithMode(mode string) Option {
	return func(s *Server) { gin.SetMode(mode) }
}

func New(opts ...Option) *Server {
	s := &Server{engine: gin.New(), port: 8080}
	for _, opt := range opts {
		opt(s)
	}
	s.engine.Use(gin.Logger())
	s.engine.Use(gin.Recovery())
	return s
}

func (s *Server) wrap(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := handler(ctx); err != nil {
			ctx.ServerError(err.Error())
		}
	}
}

func (s *Server) wrapMiddleware(middleware MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := newContext(c)
		if err := middleware(ctx); err != nil {
			ctx.ServerError(err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) GET(path string, handler HandlerFunc)  { s.engine.GET(path, s.wrap(handler)) }
func (s *Server) POST(path string, handler HandlerFunc) { s.engine.POST(path, s.wrap(handler)) }

func (s *Server) Use(middlewares ...MiddlewareFunc) {
	for _, m := range middlewares {
		s.engine.Use(s.wrapMiddleware(m))
	}
}

func (s *Server) Group(relativePath string, middlewares ...MiddlewareFunc) *RouterGroup {
	group := s.engine.Group(relativePath)
	for _, m := range middlewares {
		group.Use(s.wrapMiddleware(m))
	}
	return &RouterGroup{group: group, server: s}
}

type RouterGroup struct {
	group  *gin.RouterGroup
	server *Server
}

func (g *RouterGroup) GET(path string, handler HandlerFunc) {
	g.group.GET(path, g.server.wrap(handler))
}

func (g *RouterGroup) POST(path string, handler HandlerFunc) {
	g.group.POST(path, g.server.wrap(handler))
}

func (s *Server) Start() error {
	s.server = &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: s.engine}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
