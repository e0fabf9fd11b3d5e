package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"resumatch-engine/internal/domain"
	"resumatch-engine/internal/vocab"
)

// Matcher is what the handler needs from the engine.
type Matcher interface {
	Match(ctx context.Context, p domain.CandidateProfile) domain.MatchResult
}

type MatchHandler struct {
	Engine Matcher
}

type matchRequest struct {
	Skills     []string `json:"skills"`
	Region     string   `json:"region"`
	Roles      []string `json:"roles"`
	Countries  []string `json:"countries"`
	Mode       string   `json:"mode"`
	ResumeText string   `json:"resume_text"`
}

// Match runs one ranking request. A resume_text field augments the explicit
// skill list with allowlisted technology terms scanned from the prose.
func (h MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}

	skills := req.Skills
	if req.ResumeText != "" {
		skills = append(skills, vocab.ScanText(req.ResumeText)...)
	}

	res := h.Engine.Match(r.Context(), domain.CandidateProfile{
		Skills:    skills,
		Region:    req.Region,
		Roles:     req.Roles,
		Countries: req.Countries,
		Mode:      req.Mode,
	})
	WriteJSON(w, http.StatusOK, res)
}

type scanRequest struct {
	Text string `json:"text"`
}

type scanResponse struct {
	Skills []string `json:"skills"`
}

// Scan extracts canonical technology terms from free text, for callers that
// want to preview what a resume would contribute to a match.
func (h MatchHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid request body")
		return
	}
	WriteJSON(w, http.StatusOK, scanResponse{Skills: vocab.ScanText(req.Text)})
}
