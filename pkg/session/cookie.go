// Copyright (c) Kusari <https://www.kusari.dev/>
// SPDX-License-Identifier: MIT

package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const CookieName = "webclient_session"

// Cookies hands out session identifiers through a cookie.
type Cookies struct {
	Secure bool
	TTL    time.Duration
}

// ID returns the request's session identifier, issuing a new one in a
// cookie on w when the request carries none or an unparseable one. With a
// TTL the cookie is re-sent on every request so its lifetime slides at
// least as far as the store's.
func (c Cookies) ID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			if c.TTL > 0 {
				c.set(w, id.String())
			}
			return id.String()
		}
	}

	id := uuid.NewString()
	c.set(w, id)
	return id
}

func (c Cookies) set(w http.ResponseWriter, id string) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.TTL > 0 {
		cookie.MaxAge = int(c.TTL.Seconds())
	}
	http.SetCookie(w, cookie)
}
