package handler

import (
	"virtual-interviewer/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the interview and resume endpoints on router.
func RegisterRoutes(router fiber.Router, interview *InterviewHandler, resume *ResumeHandler, vm *middleware.ValidationMiddleware) {
	router.Get("/", Welcome)

	ig := router.Group("/interview")
	ig.Post("/start", interview.StartInterview)
	ig.Post("/ask", interview.Ask)
	ig.Post("/questions", interview.GenerateQuestions)
	ig.Post("/score", interview.ScoreAnswer)
	ig.Post("/summary", interview.Summarize)
	ig.Get("/sessions/:id", vm.ValidateSessionIDParam(), interview.GetSession)
	ig.Delete("/sessions/:id", vm.ValidateSessionIDParam(), interview.EndInterview)

	rg := router.Group("/resume")
	rg.Post("/upload", resume.Upload)
	rg.Post("/extract", resume.Extract)
	rg.Post("/chunks", resume.Chunks)
	rg.Post("/search", resume.Search)
	rg.Get("/:id", vm.ValidateResumeIDParam(), resume.Get)
}

// Welcome godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to GenAI Virtual Interviewer!"})
}
