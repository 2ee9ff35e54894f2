package web

import (
	"encoding/json"
	"net/http"
	"strings"

	ai "github.com/spetersoncode/egglens"
	"github.com/spetersoncode/egglens/store"
)

// SessionCookie is the cookie that carries the session ID.
const SessionCookie = "egglens_session"

const maxBodyBytes = 64 << 10

// session returns the caller's session, issuing a new cookie when the
// request had none or an expired one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *store.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	sess := s.sessions.GetOrCreate(id)
	if sess.ID() != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			MaxAge:   int(s.sessions.TTL().Seconds()),
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// handleIndex handles GET /, the page with examples, input and history.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := s.renderer.renderIndex(w, sess.Snapshot()); err != nil {
		s.logger.Error("template render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleAsk handles POST /ask from the page form.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	query := r.PostFormValue("query")
	sess.Do(func(h *ai.History) {
		s.lens.Submit(r.Context(), query, h)
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleClear handles POST /clear.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Do(s.lens.Clear)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type historyResponse struct {
	Entries []ai.HistoryEntry `json:"entries"`
}

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Entry ai.HistoryEntry `json:"entry"`
}

// handleAPIHistory handles GET /api/history.
func (s *Server) handleAPIHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	renderJSON(w, http.StatusOK, historyResponse{Entries: sess.Snapshot()})
}

// handleAPIAsk handles POST /api/ask.
func (s *Server) handleAPIAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		renderJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		renderJSONError(w, http.StatusBadRequest, ai.ErrEmptyQuery.Error())
		return
	}

	sess := s.session(w, r)
	var (
		entry ai.HistoryEntry
		ok    bool
	)
	sess.Do(func(h *ai.History) {
		entry, ok = s.lens.Submit(r.Context(), req.Query, h)
	})
	if !ok {
		renderJSONError(w, http.StatusBadRequest, ai.ErrEmptyQuery.Error())
		return
	}
	renderJSON(w, http.StatusOK, askResponse{Entry: entry})
}

// handleAPIClear handles POST /api/clear.
func (s *Server) handleAPIClear(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Do(s.lens.Clear)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
