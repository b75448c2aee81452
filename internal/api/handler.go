package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/prompt-playground/internal/api/middleware"
	"github.com/povarna/prompt-playground/internal/compare"
	"github.com/povarna/prompt-playground/internal/record"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/povarna/prompt-playground/internal/templates"
	"github.com/rs/zerolog"
)

type Handler struct {
	registry *technique.Registry
	comparer *compare.Runner
	recorder *record.Recorder
	logger   *zerolog.Logger
}

func NewHandler(registry *technique.Registry, comparer *compare.Runner, recorder *record.Recorder, logger *zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		comparer: comparer,
		recorder: recorder,
		logger:   logger,
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type TechniqueListResponse struct {
	Techniques []string `json:"techniques"`
}

type CompareRequest struct {
	Prompt     string   `json:"prompt"`
	Techniques []string `json:"techniques,omitempty"`
}

type FillTemplateRequest struct {
	Category string            `json:"category"`
	Name     string            `json:"name"`
	Values   map[string]string `json:"values"`
}

type FilledTemplateResponse struct {
	Prompt string `json:"prompt"`
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

// ListTechniques handler GET /api/v1/techniques
func (h *Handler) ListTechniques(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, TechniqueListResponse{
		Techniques: h.registry.Names(),
	})
}

// RunTechnique handler POST /api/v1/techniques/{technique_name}/run
func (h *Handler) RunTechnique(req *restful.Request, resp *restful.Response) {
	techniqueName := req.PathParameter("technique_name")

	var args technique.Args
	if err := req.ReadEntity(&args); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("technique", techniqueName).
		Msg("Start technique run")

	ctx := req.Request.Context()
	result, err := h.registry.Invoke(ctx, techniqueName, args)
	if err != nil {
		h.writeInvokeError(resp, err)
		return
	}

	h.logger.Info().
		Str("technique", techniqueName).
		Int("tokens", result.Tokens).
		Float64("cost", result.Cost).
		Msg("Technique run complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Compare handler POST /api/v1/compare
func (h *Handler) Compare(req *restful.Request, resp *restful.Response) {
	var compareRequest CompareRequest
	if err := req.ReadEntity(&compareRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if compareRequest.Prompt == "" {
		middleware.HandleError(resp, errors.New("prompt is required"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	result := h.comparer.Compare(ctx, compareRequest.Prompt, compareRequest.Techniques)

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// ListTemplates handler GET /api/v1/templates
func (h *Handler) ListTemplates(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, templates.Catalog())
}

// FillTemplate handler POST /api/v1/templates/fill
func (h *Handler) FillTemplate(req *restful.Request, resp *restful.Response) {
	var fillRequest FillTemplateRequest
	if err := req.ReadEntity(&fillRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	prompt, err := templates.Fill(fillRequest.Category, fillRequest.Name, fillRequest.Values)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, templates.ErrCategoryNotFound) || errors.Is(err, templates.ErrTemplateNotFound) {
			status = http.StatusNotFound
		}
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, FilledTemplateResponse{Prompt: prompt})
}

// RecordDemonstration handler POST /api/v1/demonstrations/{technique_name}
func (h *Handler) RecordDemonstration(req *restful.Request, resp *restful.Response) {
	techniqueName := req.PathParameter("technique_name")

	var args technique.Args
	if err := req.ReadEntity(&args); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	demoRecord, err := h.recorder.Record(ctx, techniqueName, args)
	if err != nil {
		h.writeInvokeError(resp, err)
		return
	}

	h.logger.Info().
		Str("technique", techniqueName).
		Msg("Demonstration recorded")

	resp.WriteHeaderAndEntity(http.StatusOK, demoRecord)
}

func (h *Handler) writeInvokeError(resp *restful.Response, err error) {
	switch {
	case errors.Is(err, technique.ErrUnknownTechnique):
		middleware.HandleError(resp, err, http.StatusNotFound)
	case errors.Is(err, technique.ErrInvalidArguments):
		middleware.HandleError(resp, err, http.StatusBadRequest)
	default:
		middleware.HandleError(resp, err, http.StatusInternalServerError)
	}
}
