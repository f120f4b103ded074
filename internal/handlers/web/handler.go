package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cluetrail/cluetrail/internal/metrics"
	"github.com/cluetrail/cluetrail/internal/models"
	"github.com/cluetrail/cluetrail/internal/services/hunt"
)

const (
	sessionCookieName = "sessionId"
	sessionCookieAge  = 24 * 60 * 60

	qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
)

// Config holds configuration for the web handler
type Config struct {
	// HuntService drives every page
	HuntService hunt.Service

	// BaseURL is the absolute prefix encoded into printed QR codes
	BaseURL string

	// AdminKey gates the /admin endpoints
	AdminKey string
}

// Handler serves the scavenger hunt's HTML surface
type Handler struct {
	service   hunt.Service
	baseURL   string
	adminKey  string
	templates *template.Template
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.HuntService == nil {
		return nil, errors.New("hunt service cannot be nil")
	}

	if cfg.AdminKey == "" {
		return nil, errors.New("admin key cannot be empty")
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		service:   cfg.HuntService,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		adminKey:  cfg.AdminKey,
		templates: templates,
	}, nil
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /admin/leaderboard/{event}", withLogging(h.AdminLeaderboard))
	mux.HandleFunc("GET /admin/print-qr/{event}", withLogging(h.PrintQR))

	mux.HandleFunc("GET /{event}", withLogging(h.StartPage))
	mux.HandleFunc("POST /{event}/start", withLogging(h.StartRace))
	mux.HandleFunc("GET /{event}/qr/{code}", withLogging(h.Scan))
	mux.HandleFunc("GET /{event}/leaderboard", withLogging(h.Leaderboard))

	return mux
}

// boardRow is one rendered leaderboard line
type boardRow struct {
	Rank        int
	Name        string
	Email       string
	Time        string
	CurrentClue string
}

// boardData feeds the shared leaderboard list template
type boardData struct {
	Completed      []boardRow
	InProgress     []boardRow
	HighlightEmail string
}

func (h *Handler) board(r *http.Request, eventID, highlightEmail string) (*boardData, error) {
	out, err := h.service.GetLeaderboard(r.Context(), &hunt.GetLeaderboardInput{EventID: eventID})
	if err != nil {
		return nil, err
	}

	board := &boardData{HighlightEmail: highlightEmail}
	for i, entry := range out.Completed {
		board.Completed = append(board.Completed, boardRow{
			Rank:  i + 1,
			Name:  entry.Name,
			Email: entry.Email,
			Time:  formatTime(entry.BestTime),
		})
	}
	for _, race := range out.InProgress {
		board.InProgress = append(board.InProgress, boardRow{
			Name:  race.Name,
			Email: race.Email,
		})
	}
	return board, nil
}

// teamNamesAttr builds the URI-encoded JSON list of taken team names
// embedded on the start page for collision hinting
func teamNamesAttr(board *boardData) string {
	names := make([]string, 0, len(board.Completed)+len(board.InProgress))
	for _, row := range board.Completed {
		names = append(names, strings.ToLower(row.Name))
	}
	for _, row := range board.InProgress {
		names = append(names, strings.ToLower(row.Name))
	}

	encoded, err := json.Marshal(names)
	if err != nil {
		return "[]"
	}
	return url.QueryEscape(string(encoded))
}

type startPageData struct {
	Title     string
	Event     *models.Event
	TeamNames string
	Board     *boardData
	Error     string
}

// StartPage renders the event landing page with the sign-up form
func (h *Handler) StartPage(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("event")

	out, err := h.service.GetEvent(r.Context(), &hunt.GetEventInput{EventID: eventID})
	if err != nil {
		h.renderNotFound(w, eventID)
		return
	}

	h.renderStartPage(w, r, out.Event, "", http.StatusOK)
}

func (h *Handler) renderStartPage(w http.ResponseWriter, r *http.Request, event *models.Event, formError string, status int) {
	board, err := h.board(r, event.ID, "")
	if err != nil {
		h.serverError(w, "load leaderboard", err)
		return
	}

	h.render(w, status, "start_page", &startPageData{
		Title:     fmt.Sprintf("%s - %s", event.Title, event.Host),
		Event:     event,
		TeamNames: teamNamesAttr(board),
		Board:     board,
		Error:     formError,
	})
}

// StartRace handles the sign-up form and opens the team's session
func (h *Handler) StartRace(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("event")

	eventOut, err := h.service.GetEvent(r.Context(), &hunt.GetEventInput{EventID: eventID})
	if err != nil {
		h.renderNotFound(w, eventID)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	out, err := h.service.StartRace(r.Context(), &hunt.StartRaceInput{
		EventID: eventID,
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
	})
	if err != nil {
		if errors.Is(err, hunt.ErrInvalidInput) {
			h.renderStartPage(w, r, eventOut.Event, "Team name and email are required.", http.StatusUnprocessableEntity)
			return
		}
		h.serverError(w, "start race", err)
		return
	}

	metrics.RacesStartedTotal.WithLabelValues(eventID).Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    out.SessionID,
		Path:     "/",
		MaxAge:   sessionCookieAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, fmt.Sprintf("/%s/qr/%s", eventID, out.RedirectCode), http.StatusSeeOther)
}

type cluePageData struct {
	Title           string
	ClueNumber      int
	TotalClues      int
	Clue            string
	AlreadyRedeemed bool
}

type finishedPageData struct {
	Title      string
	ClueNumber int
	TotalClues int
	Clue       string
	Seconds    string
	Board      *boardData
}

type simplePageData struct {
	Title string
}

// Scan is the QR redemption path: it invokes the progress engine and
// renders according to the decision
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("event")

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		http.Redirect(w, r, "/"+eventID, http.StatusSeeOther)
		return
	}

	out, err := h.service.RedeemCode(r.Context(), &hunt.RedeemCodeInput{
		EventID:   eventID,
		SessionID: cookie.Value,
		Code:      r.PathValue("code"),
	})
	if err != nil {
		switch {
		case errors.Is(err, hunt.ErrEventNotFound):
			h.renderNotFound(w, eventID)
		case errors.Is(err, hunt.ErrSessionNotFound), errors.Is(err, hunt.ErrRaceNotFound):
			// Expired or orphaned session: send the team back to the start
			http.Redirect(w, r, "/"+eventID, http.StatusSeeOther)
		case errors.Is(err, hunt.ErrProgressConflict):
			// A concurrent scan moved the session; re-read and re-render
			http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		default:
			h.serverError(w, "redeem code", err)
		}
		return
	}

	metrics.ScansTotal.WithLabelValues(eventID, string(out.Decision)).Inc()

	switch out.Decision {
	case hunt.DecisionFinished:
		h.clearSessionCookie(w)

		board, err := h.board(r, eventID, out.Email)
		if err != nil {
			h.serverError(w, "load leaderboard", err)
			return
		}

		h.render(w, http.StatusOK, "finished_page", &finishedPageData{
			Title:      "You finished!",
			ClueNumber: out.ClueNumber,
			TotalClues: out.TotalClues,
			Clue:       out.Clue,
			Seconds:    fmt.Sprintf("%.1f", out.TimeTaken.Seconds()),
			Board:      board,
		})

	case hunt.DecisionAlreadyFinished:
		http.Redirect(w, r, fmt.Sprintf("/%s/leaderboard", eventID), http.StatusSeeOther)

	case hunt.DecisionOutOfOrder:
		h.render(w, http.StatusOK, "out_of_order_page", &simplePageData{Title: "Not so fast"})

	case hunt.DecisionInvalidCode:
		h.render(w, http.StatusOK, "invalid_code_page", &simplePageData{Title: "Invalid QR code"})

	default:
		h.render(w, http.StatusOK, "clue_page", &cluePageData{
			Title:           fmt.Sprintf("Clue %d/%d", out.ClueNumber, out.TotalClues),
			ClueNumber:      out.ClueNumber,
			TotalClues:      out.TotalClues,
			Clue:            out.Clue,
			AlreadyRedeemed: out.Decision == hunt.DecisionAlreadyRedeemed,
		})
	}
}

type leaderboardPageData struct {
	Title string
	Event *models.Event
	Board *boardData
}

// Leaderboard renders the public ranking page
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("event")

	eventOut, err := h.service.GetEvent(r.Context(), &hunt.GetEventInput{EventID: eventID})
	if err != nil {
		h.renderNotFound(w, eventID)
		return
	}

	board, err := h.board(r, eventID, "")
	if err != nil {
		h.serverError(w, "load leaderboard", err)
		return
	}

	h.render(w, http.StatusOK, "leaderboard_page", &leaderboardPageData{
		Title: eventOut.Event.Title + " Leaderboard",
		Event: eventOut.Event,
		Board: board,
	})
}

type adminLeaderboardPageData struct {
	Title      string
	Event      *models.Event
	Completed  []boardRow
	InProgress []boardRow
}

// AdminLeaderboard renders the host dashboard with emails and per-team
// clue positions
func (h *Handler) AdminLeaderboard(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	eventID := r.PathValue("event")

	eventOut, err := h.service.GetEvent(r.Context(), &hunt.GetEventInput{EventID: eventID})
	if err != nil {
		h.renderNotFound(w, eventID)
		return
	}
	event := eventOut.Event

	out, err := h.service.GetLeaderboard(r.Context(), &hunt.GetLeaderboardInput{EventID: eventID})
	if err != nil {
		h.serverError(w, "load leaderboard", err)
		return
	}

	data := &adminLeaderboardPageData{
		Title: event.Title + " Dashboard",
		Event: event,
	}
	for i, entry := range out.Completed {
		data.Completed = append(data.Completed, boardRow{
			Rank:  i + 1,
			Name:  entry.Name,
			Email: entry.Email,
			Time:  formatTime(entry.BestTime),
		})
	}
	for _, race := range out.InProgress {
		clue := "Finished"
		if race.CurrentClue < len(event.OrderedCodes) {
			code := event.OrderedCodes[race.CurrentClue]
			clue = fmt.Sprintf("%d/%d — %s", race.CurrentClue+1, event.TotalClues(), event.Clues[code])
		}
		data.InProgress = append(data.InProgress, boardRow{
			Name:        race.Name,
			Email:       race.Email,
			CurrentClue: clue,
		})
	}

	h.render(w, http.StatusOK, "admin_leaderboard_page", data)
}

type qrItem struct {
	ClueNumber int
	ImageURL   string
	Link       string
}

type printQRPageData struct {
	Title string
	Event *models.Event
	Items []qrItem
}

// PrintQR renders the printable sheet of QR images, one per clue code
func (h *Handler) PrintQR(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	eventID := r.PathValue("event")

	eventOut, err := h.service.GetEvent(r.Context(), &hunt.GetEventInput{EventID: eventID})
	if err != nil {
		h.renderNotFound(w, eventID)
		return
	}
	event := eventOut.Event

	data := &printQRPageData{
		Title: event.Title + " QR Codes",
		Event: event,
	}
	for i, code := range event.OrderedCodes {
		link := fmt.Sprintf("%s/%s/qr/%s", h.baseURL, event.ID, code)
		data.Items = append(data.Items, qrItem{
			ClueNumber: i + 1,
			ImageURL:   qrImageEndpoint + "?size=300x300&data=" + url.QueryEscape(link),
			Link:       link,
		})
	}

	h.render(w, http.StatusOK, "print_qr_page", data)
}

func (h *Handler) authorized(r *http.Request) bool {
	key := r.Header.Get("X-Admin-Key")
	if key == "" {
		key = r.URL.Query().Get("key")
	}
	return key != "" && key == h.adminKey
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type notFoundPageData struct {
	Title   string
	EventID string
}

func (h *Handler) renderNotFound(w http.ResponseWriter, eventID string) {
	h.render(w, http.StatusNotFound, "not_found_page", &notFoundPageData{
		Title:   "Event not found",
		EventID: eventID,
	})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	slog.Error("request failed", "op", op, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	// Execute into a buffer first so a template failure becomes a clean
	// 500 instead of a truncated page under a committed status
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}
