package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SuyashJain1994/Contract-Analyzer/database"
	"github.com/SuyashJain1994/Contract-Analyzer/middleware"
	"github.com/SuyashJain1994/Contract-Analyzer/model"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/apperrors"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/logger"
	"github.com/SuyashJain1994/Contract-Analyzer/service"
)

type AnalysisHandler struct {
	extractor *service.Extractor
	analyzer  *service.Analyzer
	archive   *service.ArchiveService
	db        *database.Database
}

func NewAnalysisHandler(extractor *service.Extractor, analyzer *service.Analyzer, archive *service.ArchiveService, db *database.Database) *AnalysisHandler {
	return &AnalysisHandler{
		extractor: extractor,
		analyzer:  analyzer,
		archive:   archive,
		db:        db,
	}
}

// Upload accepts one or more contract files and analyzes each independently.
// A failure on one file never aborts processing of the others.
func (h *AnalysisHandler) Upload(c *gin.Context) {
	user := middleware.GetUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	contractType, ok := model.ParseContractType(formValue(form, "contract_type", string(model.ContractGeneral)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract_type"})
		return
	}
	depth, ok := model.ParseAnalysisDepth(formValue(form, "analysis_depth", string(model.DepthStandard)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis_depth"})
		return
	}

	results := make([]model.FileResult, 0, len(files))
	for _, file := range files {
		if file.Filename == "" {
			continue
		}
		results = append(results, h.processFile(c, file, user, contractType, depth))
	}

	c.JSON(http.StatusOK, model.UploadResponse{
		Success: true,
		Message: fmt.Sprintf("Processed %d files", len(results)),
		Results: results,
	})
}

func (h *AnalysisHandler) processFile(c *gin.Context, file *multipart.FileHeader, user *model.User, contractType model.ContractType, depth model.AnalysisDepth) model.FileResult {
	ctx := c.Request.Context()

	fail := func(err error) model.FileResult {
		logger.Error(ctx, "failed to process file",
			"filename", file.Filename,
			"kind", string(apperrors.KindOf(err)),
			"error", err,
		)
		return model.FileResult{
			Filename: file.Filename,
			Status:   model.StatusError,
			Error:    errorMessage(err),
		}
	}

	// Declared size first, so oversized uploads fail before content is read.
	// The actual byte count is re-checked after reading.
	if err := h.extractor.Validate(file.Filename, file.Size); err != nil {
		return fail(err)
	}

	content, err := readUpload(file)
	if err != nil {
		return fail(apperrors.Internal(err))
	}
	if err := h.extractor.Validate(file.Filename, int64(len(content))); err != nil {
		return fail(err)
	}

	text, err := h.extractor.Extract(content, file.Filename)
	if err != nil {
		return fail(err)
	}

	analysis, err := h.analyzer.AnalyzeContract(ctx, text, contractType, depth, file.Filename)
	if err != nil {
		return fail(err)
	}

	if h.archive != nil {
		contentType := file.Header.Get("Content-Type")
		if err := h.archive.StoreUpload(ctx, user.ID, analysis.ID, file.Filename, content, contentType); err != nil {
			// Archival is best effort; the analysis still succeeded
			logger.Warn(ctx, "failed to archive upload", "filename", file.Filename, "error", err)
		}
	}

	return model.FileResult{
		Filename: file.Filename,
		Status:   model.StatusSuccess,
		Analysis: analysis,
	}
}

// GetAnalysis returns a stored analysis by id
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("id")

	if h.db == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	record, err := h.db.AnalysisByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
			return
		}
		logger.Error(c.Request.Context(), "analysis lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func formValue(form *multipart.Form, key, fallback string) string {
	values := form.Value[key]
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return fallback
	}
	return strings.TrimSpace(values[0])
}

// errorMessage returns the client-facing message for a processing failure
func errorMessage(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperrors.KindInternal {
			return "Internal server error"
		}
		return appErr.Message
	}
	return "Internal server error"
}
