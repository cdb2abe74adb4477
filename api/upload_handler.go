package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ksalau/learnflow-backend/errs"
	"github.com/ksalau/learnflow-backend/uploads"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxBlogImageSize caps blog image uploads at 5MB.
const maxBlogImageSize = 5 << 20

// allowedImageTypes maps the accepted sniffed image MIME types to the file
// extension used for the stored copy.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     uploads.Store
}

func newUploadHandler(store uploads.Store) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadBlogImage accepts a single multipart image. The content type is
// sniffed from the payload rather than trusted from the client, and a
// rejected file is never written to storage.
func (h uploadHandler) uploadBlogImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBlogImageSize)

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no image file uploaded"))
			return
		}
		defer file.Close()

		head := make([]byte, 512)
		n, err := io.ReadFull(file, head)
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			h.logger.Error().Err(err).Msg("Failed to read image upload")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded image"))
			return
		}

		contentType := http.DetectContentType(head[:n])
		ext, ok := allowedImageTypes[contentType]
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("only image files are allowed"))
			return
		}

		filename := fmt.Sprintf("blog-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
		content := io.MultiReader(bytes.NewReader(head[:n]), file)
		url, err := h.store.Save(r.Context(), "blog-images/"+filename, contentType, content)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to store blog image")
			h.responder.WriteError(w, errs.NewInternalError("failed to store blog image"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":      true,
			"filename":     filename,
			"originalName": header.Filename,
			"url":          url,
			"mimetype":     contentType,
		})
	}
}
