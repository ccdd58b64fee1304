package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quillpad-server/internal/domain"
	"quillpad-server/internal/middleware"
	"quillpad-server/internal/service"
	"quillpad-server/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user := middleware.GetUser(r)

	note, err := h.service.Create(r.Context(), user.Email, &req)
	if err != nil {
		response.InternalError(w, "failed to create note")
		return
	}

	response.Created(w, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)

	notes, err := h.service.List(r.Context(), user.Email)
	if err != nil {
		response.InternalError(w, "failed to list notes")
		return
	}

	response.Success(w, notes)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		response.BadRequest(w, "invalid note id")
		return
	}

	var req domain.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user := middleware.GetUser(r)

	note, err := h.service.Update(r.Context(), user.Email, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to update note")
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		response.BadRequest(w, "invalid note id")
		return
	}

	user := middleware.GetUser(r)

	if err := h.service.Delete(r.Context(), user.Email, id); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to delete note")
		return
	}

	response.Success(w, map[string]string{"message": "deleted"})
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
