package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/middleware"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/pdf"
)

// ExamController handles exam scheduling and convocations
type ExamController struct {
	examService        *services.ExamService
	convocationService *services.ConvocationService
	renderer           *pdf.Renderer
	logger             zerolog.Logger
}

// NewExamController creates a new ExamController
func NewExamController(
	examService *services.ExamService,
	convocationService *services.ConvocationService,
	renderer *pdf.Renderer,
	logger zerolog.Logger,
) *ExamController {
	return &ExamController{
		examService:        examService,
		convocationService: convocationService,
		renderer:           renderer,
		logger:             logger,
	}
}

// CreateExam schedules an exam
// @Summary Create exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExamRequest true "Exam"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Subject/Room/Stream not found"
// @Router /exams/ [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	exam, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.examService.CreateExam(ctx.Request.Context(), exam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewExamResponse(detail))
}

// UpdateExam replaces an exam
// @Summary Update exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Param request body dto.ExamRequest true "Exam"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	exam, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.examService.UpdateExam(ctx.Request.Context(), id, exam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewExamResponse(detail))
}

// DeleteExam removes an exam and its convocations
// @Summary Delete exam
// @Tags exams
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{exam_id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.DeleteExam(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListExams returns every exam
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Router /exams/ [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewExamResponses(exams))
}

// ListStudentExams returns the exams of the caller's stream
// @Summary Exams of my stream
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /exams/student [get]
func (c *ExamController) ListStudentExams(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	exams, err := c.examService.ListForStudent(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewExamResponses(exams))
}

// ListTeacherExams returns the exams assigned to the caller
// @Summary Exams I supervise
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /exams/teacher [get]
func (c *ExamController) ListTeacherExams(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}
	exams, err := c.examService.ListForTeacher(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewExamResponses(exams))
}

// Convocation returns the caller's convocation for an exam as a PDF
// @Summary Download convocation
// @Description Draws a table number on the first call and reuses it afterwards
// @Tags exams
// @Produce application/pdf
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {file} file
// @Failure 403 {object} dto.ErrorResponse "Only students can get convocation"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/convocation [get]
func (c *ExamController) Convocation(ctx *gin.Context) {
	examID, ok := pathID(ctx, "exam_id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	slip, err := c.convocationService.Issue(ctx.Request.Context(), user, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, toPrintable(slip)); err != nil {
		c.logger.Error().Err(err).Int64("examID", examID).Msg("Failed to render convocation")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "inline; filename=convocation.pdf")
	ctx.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func toPrintable(slip *services.ConvocationSlip) pdf.Convocation {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return pdf.Convocation{
		StudentName: slip.Student.FullName,
		CNE:         deref(slip.Student.CNE),
		CodeApoge:   deref(slip.Student.CodeApoge),
		StreamName:  slip.Exam.Stream.Name,
		SubjectName: slip.Exam.Subject.Name,
		RoomName:    slip.Exam.Room.Name,
		TableNumber: slip.Convocation.TableNumber,
		StartsAt:    slip.Exam.StartsAt(),
	}
}
