package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"knowcore/application/services"
	"knowcore/pkg/common"
	apperrors "knowcore/pkg/errors"
	"knowcore/pkg/utils"
)

// KnowledgeHandler handles knowledge-unit HTTP requests.
type KnowledgeHandler struct {
	service *services.KnowledgeService
	logger  *zap.Logger
}

// NewKnowledgeHandler creates a knowledge handler.
func NewKnowledgeHandler(service *services.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{service: service, logger: logger}
}

// CreateUnitRequest is the body for POST /knowledge.
type CreateUnitRequest struct {
	AuthorID    string   `json:"author_id" validate:"required"`
	ContentText string   `json:"content_text" validate:"required"`
	SceneURL    string   `json:"scene_url" validate:"omitempty,uri"`
	Tags        []string `json:"tags"`
}

// UpdateUnitRequest is the body for PUT /knowledge/{unitID}.
type UpdateUnitRequest struct {
	ContentText string   `json:"content_text"`
	Tags        []string `json:"tags"`
}

// CreateUnit handles POST /knowledge.
func (h *KnowledgeHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	unit, err := h.service.Create(r.Context(), services.CreateUnitInput{
		AuthorID:    req.AuthorID,
		ContentText: req.ContentText,
		SceneURL:    req.SceneURL,
		Tags:        req.Tags,
	})
	if err != nil {
		h.respondAppError(w, err, "failed to create knowledge unit")
		return
	}

	common.RespondJSON(w, http.StatusCreated, unit)
}

// GetUnit handles GET /knowledge/{unitID}.
func (h *KnowledgeHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")
	if unitID == "" {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Unit ID is required")
		return
	}

	unit, err := h.service.Get(r.Context(), unitID)
	if err != nil {
		h.respondAppError(w, err, "failed to get knowledge unit")
		return
	}

	common.RespondJSON(w, http.StatusOK, unit)
}

// ListUnits handles GET /knowledge.
func (h *KnowledgeHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.List(r.Context())
	if err != nil {
		h.respondAppError(w, err, "failed to list knowledge units")
		return
	}

	common.RespondJSON(w, http.StatusOK, units)
}

// UpdateUnit handles PUT /knowledge/{unitID}.
func (h *KnowledgeHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")
	if unitID == "" {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Unit ID is required")
		return
	}

	var req UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}

	unit, err := h.service.Update(r.Context(), unitID, req.ContentText, req.Tags)
	if err != nil {
		h.respondAppError(w, err, "failed to update knowledge unit")
		return
	}

	common.RespondJSON(w, http.StatusOK, unit)
}

// DeleteUnit handles DELETE /knowledge/{unitID}.
func (h *KnowledgeHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")
	if unitID == "" {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Unit ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), unitID); err != nil {
		h.respondAppError(w, err, "failed to delete knowledge unit")
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": unitID, "status": "deleted"})
}

func (h *KnowledgeHandler) respondAppError(w http.ResponseWriter, err error, logMsg string) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(logMsg, zap.Error(err))
	}
	common.RespondError(w, status, string(apperrors.KindOf(err)), err.Error())
}
