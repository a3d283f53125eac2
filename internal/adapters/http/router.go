package http

import (
	"net/http"

	"clienteapi/internal/adapters/http/middleware"
	"clienteapi/internal/config"
)

type RouterDeps struct {
	Auth       *AuthHandler
	Cliente    *ClienteHandler
	Logradouro *LogradouroHandler
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(cfg))

	authStack := middleware.New()
	authStack.Use(middleware.JWT(cfg))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	// search-by-sp must be registered explicitly so it is not swallowed by
	// the {id} pattern.
	mux.Handle("GET /api/clientes/search-by-sp", authStack.Then(http.HandlerFunc(deps.Cliente.SearchBySP)))
	mux.Handle("GET /api/clientes", authStack.Then(http.HandlerFunc(deps.Cliente.Index)))
	mux.Handle("GET /api/clientes/{id}", authStack.Then(http.HandlerFunc(deps.Cliente.Show)))
	mux.Handle("POST /api/clientes", authStack.Then(http.HandlerFunc(deps.Cliente.Store)))
	mux.Handle("PUT /api/clientes/{id}", authStack.Then(http.HandlerFunc(deps.Cliente.Update)))
	mux.Handle("DELETE /api/clientes/{id}", authStack.Then(http.HandlerFunc(deps.Cliente.Destroy)))

	mux.Handle("GET /api/logradouros", authStack.Then(http.HandlerFunc(deps.Logradouro.Index)))
	mux.Handle("GET /api/logradouros/{id}", authStack.Then(http.HandlerFunc(deps.Logradouro.Show)))
	mux.Handle("GET /api/logradouros/ByCliente/{clienteId}", authStack.Then(http.HandlerFunc(deps.Logradouro.ByCliente)))
	mux.Handle("POST /api/logradouros", authStack.Then(http.HandlerFunc(deps.Logradouro.Store)))
	mux.Handle("PUT /api/logradouros/{id}", authStack.Then(http.HandlerFunc(deps.Logradouro.Update)))
	mux.Handle("DELETE /api/logradouros/{id}", authStack.Then(http.HandlerFunc(deps.Logradouro.Destroy)))

	return globalMw.Apply(mux)
}
