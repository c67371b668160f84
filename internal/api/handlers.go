package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeweaver_server/internal/ai"
	"codeweaver_server/internal/metrics"
	"codeweaver_server/internal/project"
	"codeweaver_server/internal/storage"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator    *ai.Generator
	uploader     *storage.Uploader
	exporter     *project.Exporter
	defaultModel string
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(generator *ai.Generator, uploader *storage.Uploader, exporter *project.Exporter, defaultModel string) *APIHandler {
	return &APIHandler{
		generator:    generator,
		uploader:     uploader,
		exporter:     exporter,
		defaultModel: defaultModel,
	}
}

// --- Structs for API requests/responses ---

type GenerateProjectRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Model     string `json:"model"`
	Framework string `json:"framework"`
}

type ChatRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Model     string `json:"model"`
	SessionID string `json:"sessionId"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

// --- API handlers ---

func (h *APIHandler) resolveRequest(model, framework string) (ai.ModelSelector, string) {
	if model == "" {
		model = h.defaultModel
	}
	if framework == "" {
		framework = "react"
	}
	return ai.ResolveModel(model), framework
}

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sel, framework := h.resolveRequest(req.Model, req.Framework)
	log.Printf("Received project generation request (model %s/%s)", sel.Provider, sel.ModelName)

	result := h.generator.AssembleProject(c.Request.Context(), req.Prompt, sel, framework)
	metrics.ObserveGeneration(result.Degraded, result.DegradationReason)

	// Disk export is best-effort; the response stands on its own.
	if h.exporter != nil {
		if _, err := h.exporter.Export(result); err != nil {
			log.Printf("WARN: project export incomplete for %s: %v", result.ProjectID, err)
		}
	}

	c.JSON(http.StatusCreated, result)
}

// POST /website/generate
func (h *APIHandler) GenerateWebsite(c *gin.Context) {
	var req GenerateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sel, framework := h.resolveRequest(req.Model, req.Framework)
	log.Printf("Received single-pass website request (model %s/%s)", sel.Provider, sel.ModelName)

	result := h.generator.GenerateWebsite(c.Request.Context(), req.Prompt, sel, framework)
	metrics.ObserveGeneration(result.Degraded, result.DegradationReason)

	if h.exporter != nil {
		if _, err := h.exporter.Export(result); err != nil {
			log.Printf("WARN: project export incomplete for %s: %v", result.ProjectID, err)
		}
	}

	c.JSON(http.StatusCreated, result)
}

// POST /chat/respond
func (h *APIHandler) ChatRespond(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = ai.NewConversationHandle("chat")
	}
	model := req.Model
	if model == "" {
		model = h.defaultModel
	}

	c.JSON(http.StatusOK, h.generator.GenerateResponse(c.Request.Context(), req.Prompt, model, sessionID))
}

// POST /image/generate
func (h *APIHandler) GenerateImage(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ImageResponse{URL: h.generator.GenerateImage(c.Request.Context(), req.Prompt)})
}

// POST /upload
func (h *APIHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'file' form field is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to open uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
		return
	}

	key := storage.ObjectKey(c.PostForm("folder"), fileHeader.Filename)
	url, err := h.uploader.Store(c.Request.Context(), key, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		// Upload failures degrade to a placeholder URL rather than an error.
		var storageErr *storage.StorageError
		if !errors.As(err, &storageErr) {
			log.Printf("WARN: unexpected upload error type: %v", err)
		}
		url = storage.PlaceholderURL(key)
		metrics.UploadsTotal.WithLabelValues("placeholder").Inc()
		log.Printf("WARN: upload failed, using placeholder URL %s: %v", url, err)
	} else {
		metrics.UploadsTotal.WithLabelValues("ok").Inc()
	}

	c.JSON(http.StatusOK, UploadResponse{URL: url})
}
