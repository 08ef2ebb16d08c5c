package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/constant"
	"github.com/wiralabs/campaign-api/domain/campaign"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
)

// Service defines the campaign operations the API depends on
type Service interface {
	Create(ctx context.Context, input campaign.CreateInput) (*campaign.Campaign, error)
	Get(ctx context.Context, id uint) (*campaign.Campaign, error)
	List(ctx context.Context) ([]campaign.Campaign, error)
	Validate(ctx context.Context, id uint) (*campaign.ValidationResult, error)
	Setup(ctx context.Context, id uint) (*campaign.SetupResult, error)
	Launch(ctx context.Context, id uint) (*campaign.Campaign, error)
}

// QRGenerator produces share-link QR codes
type QRGenerator interface {
	Generate(campaignID uint, size int) ([]byte, error)
}

// Handler contains service dependencies for API handlers
type Handler struct {
	service   Service
	qr        QRGenerator
	responder *apperr.Responder
}

// CreateCampaignRequest is the request object for the create endpoint
type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewHandler creates a new API handler
func NewHandler(service Service, qr QRGenerator, responder *apperr.Responder) *Handler {
	return &Handler{
		service:   service,
		qr:        qr,
		responder: responder,
	}
}

// CreateCampaign handles campaign creation
func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgHandlingCreate, appLogger.LoggerInfo{
		ContextFunction: constant.CtxCreateCampaign,
	})

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		appLogger.CtxWarn(ctx, "Error decoding request body", appLogger.LoggerInfo{
			ContextFunction: constant.CtxCreateCampaign,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIDecodeRequest,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})

		h.responder.Respond(w, apperr.RequestInfoFrom(r), apperr.KindValidation, http.StatusBadRequest, "Invalid request format")
		return
	}

	c, err := h.service.Create(ctx, campaign.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, c, http.StatusCreated)
}

// GetCampaign handles retrieving a single campaign
func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, c, http.StatusOK)
}

// ListCampaigns handles listing all campaigns
func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.List(r.Context())
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, campaigns, http.StatusOK)
}

// ValidateCampaign handles launch-readiness validation
func (h *Handler) ValidateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Validate(r.Context(), id)
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

// SetupCampaign handles launch preparation
func (h *Handler) SetupCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Setup(r.Context(), id)
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}

// LaunchCampaign handles campaign launch
func (h *Handler) LaunchCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgHandlingLaunch, appLogger.LoggerInfo{
		ContextFunction: constant.CtxLaunchCampaign,
	})

	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Launch(ctx, id)
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	WriteJSON(w, c, http.StatusOK)
}

// CampaignQR renders the campaign share link as a PNG QR code
func (h *Handler) CampaignQR(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r)
	if !ok {
		return
	}

	// The campaign must exist before a share link makes sense.
	if _, err := h.service.Get(r.Context(), id); err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	png, err := h.qr.Generate(id, 256)
	if err != nil {
		h.responder.RespondError(w, apperr.RequestInfoFrom(r), err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// campaignID parses the path parameter, responding with a Validation
// envelope on malformed input.
func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "campaignID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.responder.Respond(w, apperr.RequestInfoFrom(r), apperr.KindValidation, http.StatusBadRequest, constant.ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
