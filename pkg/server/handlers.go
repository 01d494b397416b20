// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package server

import (
	"log"
	"net/http"

	"github.com/kusaridev/oauth-webclient/pkg/auth"
	"github.com/kusaridev/oauth-webclient/pkg/session"
)

const (
	pathIndex     = "/"
	pathAuthorize = "/authorize"
	pathCallback  = "/oauth2callback"
	pathLogout    = "/logout"

	genericError = "An error occurred."
)

type Server struct {
	flow    *auth.Flow
	cookies session.Cookies
}

// New returns the routed handler. With verbose set every request is logged.
func New(flow *auth.Flow, cookies session.Cookies, verbose bool) http.Handler {
	s := &Server{flow: flow, cookies: cookies}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+pathIndex+"{$}", s.handleIndex)
	mux.HandleFunc("GET "+pathAuthorize, s.handleAuthorize)
	mux.HandleFunc("GET "+pathCallback, s.handleCallback)
	mux.HandleFunc("GET "+pathLogout, s.handleLogout)

	if verbose {
		return logRequests(mux)
	}
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sessionID := s.cookies.ID(w, r)

	profile, err := s.flow.Profile(r.Context(), sessionID)
	if auth.IsCode(err, auth.ErrUnauthenticated) {
		http.Redirect(w, r, pathAuthorize, http.StatusFound)
		return
	}
	if err != nil {
		log.Printf("session %s: profile fetch failed: %v", sessionID, err)
		http.Error(w, genericError, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(profile)
}

func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	sessionID := s.cookies.ID(w, r)

	authURL, err := s.flow.Begin(r.Context(), sessionID)
	if err != nil {
		log.Printf("session %s: failed to begin authorization: %v", sessionID, err)
		http.Error(w, genericError, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	sessionID := s.cookies.ID(w, r)

	if _, err := s.flow.Complete(r.Context(), sessionID, r.URL.RequestURI()); err != nil {
		log.Printf("session %s: authorization callback failed: %v", sessionID, err)
		switch {
		case auth.IsCode(err, auth.ErrStateMismatch):
			http.Error(w, "Invalid state", http.StatusBadRequest)
		case auth.IsCode(err, auth.ErrAuthorizationDenied), auth.IsCode(err, auth.ErrTokenExchangeFailed):
			http.Error(w, "Authentication failed", http.StatusBadRequest)
		default:
			http.Error(w, genericError, http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, pathIndex, http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := s.cookies.ID(w, r)

	_, err := s.flow.Logout(r.Context(), sessionID)
	if auth.IsCode(err, auth.ErrRevocationFailed) {
		log.Printf("session %s: %v", sessionID, err)
		_, _ = w.Write([]byte(genericError))
		return
	}
	if err != nil {
		log.Printf("session %s: logout failed: %v", sessionID, err)
		http.Error(w, genericError, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, pathIndex, http.StatusFound)
}
