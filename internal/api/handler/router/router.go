package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route declara um endpoint: método, caminho e os middlewares que valem só
// para ele (os globais entram na cadeia do servidor).
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

// Router envolve o httprouter e registra rotas declaradas em fatias.
type Router struct {
	mux *httprouter.Router
}

type Option func(*Router)

// WithRoutes registra um grupo de rotas na construção do router.
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.register(routes...)
	}
}

func New(opts ...Option) *Router {
	r := &Router{mux: httprouter.New()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// register aplica os middlewares da rota do último para o primeiro, de modo
// que o primeiro da lista seja o mais externo.
func (r *Router) register(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}
		r.mux.Handler(route.Method, route.Path, handler)
	}
}
