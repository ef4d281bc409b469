// internal/matching/routes.go

package matching

import (
	"github.com/gorilla/mux"

	"github.com/johnbekele/pokojowo-web-project/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matching").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetMatches).Methods("GET")
	api.HandleFunc("/user/{userId}", handler.GetMatchWithUser).Methods("GET")
	api.HandleFunc("/refresh", handler.RefreshMatches).Methods("POST")
	api.HandleFunc("/stats/summary", handler.GetStatsSummary).Methods("GET")
	api.HandleFunc("/dashboard", handler.GetDashboard).Methods("GET")
	api.HandleFunc("/notify", handler.NotifyMatches).Methods("POST")
}
