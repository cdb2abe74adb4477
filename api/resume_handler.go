package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/errs"
	"github.com/ksalau/learnflow-backend/models"
	"github.com/ksalau/learnflow-backend/uploads"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxResumeSize caps resume uploads at 100MB.
const maxResumeSize = 100 << 20

// allowedResumeTypes lists the document MIME types accepted for resume
// uploads.
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain":       true,
	"application/zip":  true,
	"application/x-zip-compressed": true,
}

type resumeHandler struct {
	responder  Responder
	logger     zerolog.Logger
	resumeRepo *database.ResumeRepo
	store      uploads.Store
	validate   *validator.Validate
}

func newResumeHandler(resumeRepo *database.ResumeRepo, store uploads.Store, validate *validator.Validate) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		resumeRepo: resumeRepo,
		store:      store,
		validate:   validate,
	}
}

func (h resumeHandler) getAllResumes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumes, err := h.resumeRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resumes", err))
			return
		}

		h.responder.WriteJSON(w, resumes)
	}
}

func (h resumeHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		resume, err := h.resumeRepo.FindByID(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not found"))
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}

// getActiveResume returns the single resume currently surfaced publicly.
func (h resumeHandler) getActiveResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumeRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "active resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("active resume not found"))
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}

// createResume stores an uploaded resume document and records it. A newly
// uploaded resume starts inactive; activation is a separate operation.
func (h resumeHandler) createResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file uploaded"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedResumeTypes[contentType] {
			h.responder.WriteError(w, errs.NewBadRequestError("unsupported file type"))
			return
		}

		filename := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(header.Filename))
		fileURL, err := h.store.Save(r.Context(), "resumes/"+filename, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to store resume upload")
			h.responder.WriteError(w, errs.NewInternalError("failed to store resume"))
			return
		}

		resume := models.NewResume(models.InsertResume{
			Filename:     filename,
			OriginalName: header.Filename,
			FileURL:      fileURL,
			IsActive:     false,
		})
		if err := h.resumeRepo.Add(resume); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "resume", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, resume)
	}
}

// updateResume merges a partial update onto an existing resume. A multipart
// request replaces the stored document; a JSON body updates metadata only.
func (h resumeHandler) updateResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		resume, err := h.resumeRepo.FindByID(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not found"))
			return
		}

		var input models.UpdateResume
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
			file, header, err := r.FormFile("file")
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("no file uploaded"))
				return
			}
			defer file.Close()

			contentType := header.Header.Get("Content-Type")
			if !allowedResumeTypes[contentType] {
				h.responder.WriteError(w, errs.NewBadRequestError("unsupported file type"))
				return
			}

			filename := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(header.Filename))
			fileURL, err := h.store.Save(r.Context(), "resumes/"+filename, contentType, file)
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to store resume upload")
				h.responder.WriteError(w, errs.NewInternalError("failed to store resume"))
				return
			}

			input.Filename = &filename
			input.OriginalName = &header.Filename
			input.FileURL = &fileURL
		} else if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode resume request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		resume.Apply(input)
		if err := h.resumeRepo.Update(resume); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "resume", err))
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}

func (h resumeHandler) deleteResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		deleted, err := h.resumeRepo.Delete(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "resume", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// setActiveResume makes the given resume the single active one.
func (h resumeHandler) setActiveResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeID, err := uuid.Parse(chi.URLParam(r, "resumeID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid resumeID"))
			return
		}

		resume, err := h.resumeRepo.SetActive(resumeID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("activate", "resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("resume not found"))
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}
