// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// account
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// saved list, addressed by the user id in the path
	router.Group(func(r chi.Router) {
		r.Get("/user/{id}", h.getUser)
		r.Post("/user/{id}/add_anime", h.addAnime)
		r.Delete("/user/{id}/remove_anime", h.removeAnime)
		r.Put("/user/{id}/update_anime", h.updateAnime)
	})

	// shared lists
	router.Group(func(r chi.Router) {
		r.Post("/share-list", h.shareList)
		r.Get("/shared-list/{link_id}", h.getSharedList)
	})

	// MyAnimeList proxy
	router.Group(func(r chi.Router) {
		r.Get("/search_anime", h.searchAnime)
		r.Get("/anime/{id}", h.getAnime)
		r.Get("/top-anime", h.topAnime)
		r.Get("/seasonal-anime", h.seasonalAnime)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/admin/data", h.adminData)
	})

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
