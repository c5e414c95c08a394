package api

import (
	"net/http"

	"github.com/RafifFarandHariri/jasaku/internal/config"
	"github.com/RafifFarandHariri/jasaku/internal/db"
	"github.com/RafifFarandHariri/jasaku/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// mux middleware only runs on matched routes; this catch-all lets the
	// CORS middleware answer preflight requests for every path
	r.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	chatsHandler := NewChatsHandler(repo)
	ordersHandler := NewOrdersHandler(repo)
	servicesHandler := NewServicesHandler(repo)
	usersHandler := NewUsersHandler(repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// Protected auth endpoints
	authV1 := r.PathPrefix("/v1/auth").Subrouter()
	authV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	authV1.HandleFunc("/me", authHandler.Me).Methods("GET")
	authV1.HandleFunc("/signout", authHandler.Signout).Methods("POST")

	// Resource endpoints. Update/Delete are also mounted on the collection
	// path so a request without an id answers 400 instead of a router 404.
	r.HandleFunc("/v1/chats", chatsHandler.List).Methods("GET")
	r.HandleFunc("/v1/chats", chatsHandler.Create).Methods("POST")
	r.HandleFunc("/v1/chats", chatsHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/chats", chatsHandler.Delete).Methods("DELETE")
	r.HandleFunc("/v1/chats/{id}", chatsHandler.Get).Methods("GET")
	r.HandleFunc("/v1/chats/{id}", chatsHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/chats/{id}", chatsHandler.Delete).Methods("DELETE")

	r.HandleFunc("/v1/orders", ordersHandler.List).Methods("GET")
	r.HandleFunc("/v1/orders", ordersHandler.Create).Methods("POST")
	r.HandleFunc("/v1/orders", ordersHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/orders", ordersHandler.Delete).Methods("DELETE")
	r.HandleFunc("/v1/orders/{id}", ordersHandler.Get).Methods("GET")
	r.HandleFunc("/v1/orders/{id}", ordersHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/orders/{id}", ordersHandler.Delete).Methods("DELETE")

	r.HandleFunc("/v1/services", servicesHandler.List).Methods("GET")
	r.HandleFunc("/v1/services", servicesHandler.Create).Methods("POST")
	r.HandleFunc("/v1/services", servicesHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/services", servicesHandler.Delete).Methods("DELETE")
	r.HandleFunc("/v1/services/{id}", servicesHandler.Get).Methods("GET")
	r.HandleFunc("/v1/services/{id}", servicesHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/services/{id}", servicesHandler.Delete).Methods("DELETE")

	// users have no create path; rows come from auth signup
	r.HandleFunc("/v1/users", usersHandler.List).Methods("GET")
	r.HandleFunc("/v1/users", usersHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/users", usersHandler.Delete).Methods("DELETE")
	r.HandleFunc("/v1/users/{id}", usersHandler.Get).Methods("GET")
	r.HandleFunc("/v1/users/{id}", usersHandler.Update).Methods("PUT")
	r.HandleFunc("/v1/users/{id}", usersHandler.Delete).Methods("DELETE")

	return r
}
