package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/errs"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/ksalau/learnflow-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	validate    *validator.Validate
}

func newContactHandler(contactRepo *database.ContactRepo, validate *validator.Validate) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		validate:    validate,
	}
}

// createContactSubmission is the public contact form endpoint. The
// notification email is fired on a goroutine; its outcome never affects the
// response.
func (h contactHandler) createContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.InsertContact
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact submission request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := h.validate.Struct(input); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		submission := models.NewContactSubmission(input)
		if err := h.contactRepo.Add(submission); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact submission", err))
			return
		}

		go services.SendContactNotification(submission)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, submission)
	}
}

func (h contactHandler) getAllContactSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact submissions", err))
			return
		}

		h.responder.WriteJSON(w, submissions)
	}
}

func (h contactHandler) getContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid submissionID"))
			return
		}

		submission, err := h.contactRepo.FindByID(submissionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact submission", err))
			return
		}
		if submission == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		h.responder.WriteJSON(w, submission)
	}
}

func (h contactHandler) deleteContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissionID, err := uuid.Parse(chi.URLParam(r, "submissionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid submissionID"))
			return
		}

		deleted, err := h.contactRepo.Delete(submissionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact submission", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
