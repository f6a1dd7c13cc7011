package handler

import (
	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/dto"
	"virtual-interviewer/internal/middleware"
	"virtual-interviewer/internal/service"
	"virtual-interviewer/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler handles interview-related HTTP requests
type InterviewHandler struct {
	service   service.InterviewService
	validator *validation.Validator
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func invalidBody(err error) error {
	return domain.NewInvalidInputError("invalid request body", err)
}

// StartInterview godoc
// @Summary Start an interview
// @Description Creates an interview session for a role and optional candidate profile
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.StartInterviewRequest true "Interview config and candidate"
// @Success 200 {object} dto.StartInterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interview/start [post]
func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	req, err := dto.ParseStartInterviewRequest(c.Body())
	if err != nil {
		return invalidBody(err)
	}

	session, msg, err := h.service.StartInterview(c.UserContext(), *req.Config, req.Candidate)
	if err != nil {
		return err
	}
	return c.JSON(dto.StartInterviewResponse{Message: msg, SessionID: session.ID})
}

// Ask godoc
// @Summary Answer the current question
// @Description Records the candidate's answer in the session (when given) and returns the follow-up question
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Candidate response"
// @Success 200 {object} dto.FollowUpResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/ask [post]
func (h *InterviewHandler) Ask(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	if errs := h.validateAnswer(req); len(errs) > 0 {
		return errs
	}

	followUp, err := h.service.Ask(c.UserContext(), req.SessionID, req.InterviewResponse)
	if err != nil {
		return err
	}
	return c.JSON(dto.FollowUpResponse{FollowUp: followUp})
}

func (h *InterviewHandler) validateAnswer(req dto.AnswerRequest) domain.ValidationErrors {
	errs := h.validator.ValidateOptionalID("session_id", req.SessionID)
	return append(errs, h.validator.ValidateInterviewResponse(req.InterviewResponse)...)
}

// ScoreAnswer godoc
// @Summary Score an answer
// @Description Token-overlap recall, precision and F1 of the candidate response against the model answer
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.AnswerRequest true "Question, model answer and candidate response"
// @Success 200 {object} domain.FeedbackOutput
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/score [post]
func (h *InterviewHandler) ScoreAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	if errs := h.validateAnswer(req); len(errs) > 0 {
		return errs
	}

	feedback, err := h.service.ScoreAnswer(c.UserContext(), req.SessionID, req.InterviewResponse)
	if err != nil {
		return err
	}
	return c.JSON(feedback)
}

// GenerateQuestions godoc
// @Summary Generate interview questions
// @Description Returns the raw model output for the question prompt of a session or an ad-hoc config
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.QuestionsRequest true "Session id or config"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interview/questions [post]
func (h *InterviewHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.QuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	var (
		out string
		err error
	)
	switch {
	case req.SessionID != "":
		if errs := h.validator.ValidateID("session_id", req.SessionID); len(errs) > 0 {
			return errs
		}
		out, err = h.service.GenerateSessionQuestions(c.UserContext(), req.SessionID, req.Candidate)
	case req.Config != nil:
		var candidate domain.CandidateInfo
		if req.Candidate != nil {
			candidate = *req.Candidate
		}
		out, err = h.service.GenerateQuestions(c.UserContext(), *req.Config, candidate)
	default:
		return domain.ValidationErrors{domain.NewMissingFieldError("session_id")}
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionsResponse{Questions: out})
}

// Summarize godoc
// @Summary Summarize an interview
// @Description Returns the raw model summary of a session or a posted transcript
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest true "Session id or conversation"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /interview/summary [post]
func (h *InterviewHandler) Summarize(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}

	var (
		out string
		err error
	)
	if req.SessionID != "" {
		if errs := h.validator.ValidateID("session_id", req.SessionID); len(errs) > 0 {
			return errs
		}
		out, err = h.service.SummarizeSession(c.UserContext(), req.SessionID)
	} else {
		if errs := h.validator.ValidateConversation(req.Conversation); len(errs) > 0 {
			return errs
		}
		out, err = h.service.Summarize(c.UserContext(), req.Conversation)
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{Summary: out})
}

// GetSession godoc
// @Summary Get an interview session
// @Tags interview
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.InterviewSession
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/sessions/{id} [get]
func (h *InterviewHandler) GetSession(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalSessionID).(string)
	session, err := h.service.GetSession(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// EndInterview godoc
// @Summary End an interview
// @Description Deletes the session and its history
// @Tags interview
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/sessions/{id} [delete]
func (h *InterviewHandler) EndInterview(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalSessionID).(string)
	if err := h.service.EndInterview(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
