package httpserver

import (
	"net/http"
	"time"

	"friendkb-go/internal/config"
	"friendkb-go/internal/transport/httpserver/handler"
	authmw "friendkb-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.Me)
			r.Delete("/auth/me", handlers.DeleteAccount)

			r.Get("/friends", handlers.ListFriends)
			r.Post("/friends", handlers.CreateFriend)
			r.Get("/friends/{id}", handlers.GetFriend)
			r.Patch("/friends/{id}", handlers.UpdateFriend)
			r.Delete("/friends/{id}", handlers.DeleteFriend)

			r.Get("/friends/{id}/labels", handlers.ListFriendLabels)
			r.Post("/friends/{id}/labels", handlers.AddFriendLabel)
			r.Patch("/labels/{id}", handlers.UpdateFriendLabel)
			r.Delete("/labels/{id}", handlers.RemoveFriendLabel)

			r.Get("/friends/{id}/attributes", handlers.ListAttributes)
			r.Post("/friends/{id}/attributes", handlers.CreateAttribute)
			r.Put("/friends/{id}/attributes/{key}", handlers.SetAttribute)
			r.Get("/attributes/{id}", handlers.GetAttribute)
			r.Patch("/attributes/{id}", handlers.UpdateAttribute)
			r.Delete("/attributes/{id}", handlers.DeleteAttribute)

			r.Get("/groups", handlers.ListGroups)
			r.Post("/groups", handlers.CreateGroup)
			r.Get("/groups/{id}", handlers.GetGroup)
			r.Patch("/groups/{id}", handlers.UpdateGroup)
			r.Delete("/groups/{id}", handlers.DeleteGroup)
			r.Get("/groups/{id}/friends", handlers.ListGroupFriends)
			r.Put("/groups/{id}/friends/{friend_id}", handlers.AddGroupFriend)
			r.Delete("/groups/{id}/friends/{friend_id}", handlers.RemoveGroupFriend)
			r.Get("/friends/{id}/groups", handlers.ListFriendGroups)

			r.Get("/relationships", handlers.ListRelationships)
			r.Post("/relationships", handlers.CreateRelationship)
			r.Get("/relationships/resolve", handlers.ResolveRelationship)
			r.Get("/relationships/{id}", handlers.GetRelationship)
			r.Patch("/relationships/{id}", handlers.UpdateRelationship)
			r.Delete("/relationships/{id}", handlers.DeleteRelationship)
			r.Get("/friends/{id}/relationships", handlers.ListFriendRelationships)
		})
	})

	return r
}
