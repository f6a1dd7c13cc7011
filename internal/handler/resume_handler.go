package handler

import (
	"strings"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/dto"
	"virtual-interviewer/internal/logger"
	"virtual-interviewer/internal/middleware"
	"virtual-interviewer/internal/service"
	"virtual-interviewer/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResumeHandler handles resume upload and indexing requests
type ResumeHandler struct {
	service   service.ResumeService
	validator *validation.Validator
}

func NewResumeHandler(service service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Upload godoc
// @Summary Upload a resume
// @Description Stores a PDF, DOCX or TXT resume under a sanitized unique name
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Success 200 {object} dto.UploadResumeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Get().Debug("Upload without file part", zap.Error(err))
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	resume, err := h.service.Upload(c.UserContext(), file)
	if err != nil {
		return err
	}
	return c.JSON(dto.UploadResumeResponse{
		Message:  "Resume uploaded.",
		Path:     resume.FilePath,
		ResumeID: resume.ID,
	})
}

func (h *ResumeHandler) parseRef(c *fiber.Ctx) (service.ResumeRef, error) {
	var req dto.ResumeRefRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ResumeRef{}, invalidBody(err)
	}
	if errs := h.validator.ValidateResumeRef(req.FilePath, req.ResumeID); len(errs) > 0 {
		return service.ResumeRef{}, errs
	}
	return service.ResumeRef{
		ResumeID: strings.TrimSpace(req.ResumeID),
		FilePath: strings.TrimSpace(req.FilePath),
	}, nil
}

// Extract godoc
// @Summary Index a resume
// @Description Extracts the text, chunks it, embeds the chunks and stores them in the vector store
// @Tags resume
// @Accept json
// @Produce json
// @Param request body dto.ResumeRefRequest true "Stored file path or resume id"
// @Success 200 {object} dto.ExtractResumeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /resume/extract [post]
func (h *ResumeHandler) Extract(c *fiber.Ctx) error {
	ref, err := h.parseRef(c)
	if err != nil {
		return err
	}

	result, err := h.service.Extract(c.UserContext(), ref)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExtractResumeResponse{
		Message:  "Resume processed.",
		ResumeID: result.ResumeID,
		Chunks:   result.Chunks,
	})
}

// Chunks godoc
// @Summary Preview resume chunks
// @Description Splits the resume text into large overlapping chunks without indexing
// @Tags resume
// @Accept json
// @Produce json
// @Param request body dto.ResumeRefRequest true "Stored file path or resume id"
// @Success 200 {object} dto.ChunksResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /resume/chunks [post]
func (h *ResumeHandler) Chunks(c *fiber.Ctx) error {
	ref, err := h.parseRef(c)
	if err != nil {
		return err
	}

	chunks, err := h.service.Chunks(c.UserContext(), ref)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChunksResponse{Chunks: chunks})
}

// Search godoc
// @Summary Search a resume
// @Description Returns the indexed chunks of one resume closest to the query
// @Tags resume
// @Accept json
// @Produce json
// @Param request body dto.SearchResumeRequest true "Query"
// @Success 200 {object} dto.SearchResumeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /resume/search [post]
func (h *ResumeHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	if errs := h.validator.ValidateSearchRequest(req.ResumeID, req.Query, req.TopK); len(errs) > 0 {
		return errs
	}

	matches, err := h.service.Search(c.UserContext(), req.ResumeID, req.Query, req.TopK)
	if err != nil {
		return err
	}
	if matches == nil {
		matches = []domain.ChunkMatch{}
	}
	return c.JSON(dto.SearchResumeResponse{Results: matches})
}

// Get godoc
// @Summary Get a resume record
// @Tags resume
// @Produce json
// @Param id path string true "Resume ID"
// @Success 200 {object} domain.Resume
// @Failure 404 {object} middleware.ErrorResponse
// @Router /resume/{id} [get]
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalResumeID).(string)
	resume, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resume)
}
