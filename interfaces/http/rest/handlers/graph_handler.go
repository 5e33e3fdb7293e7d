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

// GraphHandler handles relation-graph HTTP requests.
type GraphHandler struct {
	service *services.GraphService
	logger  *zap.Logger
}

// NewGraphHandler creates a graph handler.
func NewGraphHandler(service *services.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{service: service, logger: logger}
}

// CreateLinkRequest is the body for POST /graph/links. Weight validation is
// enforced again by the graph itself; the tags here just give clients a
// field-level message.
type CreateLinkRequest struct {
	FromID string  `json:"from_id" validate:"required"`
	ToID   string  `json:"to_id" validate:"required"`
	Weight float64 `json:"weight" validate:"min=0,max=1"`
}

// CreateLink handles POST /graph/links.
func (h *GraphHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	if err := h.service.Link(r.Context(), req.FromID, req.ToID, req.Weight); err != nil {
		status := apperrors.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to upsert link", zap.Error(err))
		}
		common.RespondError(w, status, string(apperrors.KindOf(err)), err.Error())
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"from_id": req.FromID,
		"to_id":   req.ToID,
		"weight":  req.Weight,
	})
}

// GetOutgoingLinks handles GET /graph/links/{unitID}.
func (h *GraphHandler) GetOutgoingLinks(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")
	if unitID == "" {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Unit ID is required")
		return
	}

	links := h.service.Outgoing(r.Context(), unitID)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"from_id": unitID,
		"links":   links,
	})
}

// GetGraph handles GET /graph, returning a snapshot of every link.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.service.Snapshot(r.Context()))
}
