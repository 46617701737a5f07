package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/note"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
)

type NoteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type noteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &noteHandlerImpl{noteService: noteService}
}

// List implements NoteHandler. The view is capped to the three soonest
// reminders unless all=true.
func (h *noteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Get("all") == "true"

	result, err := h.noteService.List(r.Context(), all)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements NoteHandler.
func (h *noteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req note.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode note", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.noteService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Note added", result)
}

// Update implements NoteHandler.
func (h *noteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req note.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode note", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.noteService.Edit(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note updated", result)
}

// Delete implements NoteHandler.
func (h *noteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.noteService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note deleted", nil)
}
