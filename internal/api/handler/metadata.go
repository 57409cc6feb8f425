package handler

import (
	"net/http"

	"github.com/homestash/homestash/internal/api/models"
	"github.com/homestash/homestash/internal/api/response"
	"github.com/homestash/homestash/internal/wfh"
)

// MetadataHandler handles metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// GetEnums handles GET /v1/metadata/enums - get enum values used by the API.
func (h *MetadataHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	enums := models.Enums{
		Placements: []models.Placement{
			models.PlacementBefore,
			models.PlacementAfter,
		},
		AlternateGapOffsets: wfh.AlternateGapOffsets(),
		HealthStatuses: []models.HealthStatus{
			models.HealthStatusOK,
			models.HealthStatusDegraded,
			models.HealthStatusFail,
		},
	}
	response.JSON(w, r, http.StatusOK, enums)
}
