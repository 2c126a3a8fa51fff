package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/app/services"
	"github.com/yigit/examdesk/internal/middleware"
)

// CatalogController serves streams, subjects and rooms
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListStreams returns every stream
// @Summary List streams
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.StreamResponse
// @Router /streams/ [get]
// @Router /auth/streams [get]
// @Router /exams/streams [get]
func (c *CatalogController) ListStreams(ctx *gin.Context) {
	streams, err := c.catalogService.ListStreams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStreamResponses(streams))
}

// CreateStream adds a stream
// @Summary Create stream
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StreamRequest true "Stream"
// @Success 201 {object} dto.StreamResponse
// @Failure 409 {object} dto.ErrorResponse "Stream exists"
// @Router /streams/ [post]
func (c *CatalogController) CreateStream(ctx *gin.Context) {
	var req dto.StreamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	stream, err := c.catalogService.CreateStream(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.StreamResponse{ID: stream.ID, Name: stream.Name})
}

// ListSubjects returns subjects, optionally filtered by the stream_id query parameter
// @Summary List subjects
// @Tags catalog
// @Produce json
// @Param stream_id query int false "Stream filter"
// @Success 200 {array} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /subjects/ [get]
// @Router /auth/subjects [get]
// @Router /exams/subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	streamID, ok := optionalQueryID(ctx, "stream_id")
	if !ok {
		return
	}
	c.respondSubjects(ctx, streamID)
}

// SubjectsOfStream returns the subjects of the stream in the path
// @Summary List subjects of a stream
// @Tags catalog
// @Produce json
// @Param id path int true "Stream ID"
// @Success 200 {array} dto.SubjectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /streams/{id}/subjects [get]
// @Router /subjects/stream/{id} [get]
func (c *CatalogController) SubjectsOfStream(ctx *gin.Context) {
	streamID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	c.respondSubjects(ctx, &streamID)
}

func (c *CatalogController) respondSubjects(ctx *gin.Context, streamID *int64) {
	subjects, err := c.catalogService.ListSubjects(ctx.Request.Context(), streamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSubjectResponses(subjects))
}

// CreateSubject adds a subject to a stream
// @Summary Create subject
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubjectRequest true "Subject"
// @Success 201 {object} dto.SubjectResponse
// @Failure 404 {object} dto.ErrorResponse "Stream not found"
// @Router /subjects/ [post]
func (c *CatalogController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.catalogService.CreateSubject(ctx.Request.Context(), &models.Subject{Name: req.Name, StreamID: req.StreamID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSubjectResponse(subject))
}

// ListRooms returns every room
// @Summary List rooms
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Router /rooms/ [get]
// @Router /auth/rooms [get]
// @Router /exams/rooms [get]
func (c *CatalogController) ListRooms(ctx *gin.Context) {
	rooms, err := c.catalogService.ListRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRoomResponses(rooms))
}

// CreateRoom adds a room
// @Summary Create room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoomRequest true "Room"
// @Success 201 {object} dto.RoomResponse
// @Failure 409 {object} dto.ErrorResponse "Room exists"
// @Router /rooms/ [post]
func (c *CatalogController) CreateRoom(ctx *gin.Context) {
	var req dto.RoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.catalogService.CreateRoom(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewRoomResponse(room))
}

// UpdateRoom replaces a room
// @Summary Update room
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.RoomRequest true "Room"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room exists"
// @Router /rooms/{id} [put]
func (c *CatalogController) UpdateRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.RoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.catalogService.UpdateRoom(ctx.Request.Context(), id, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewRoomResponse(room))
}

// DeleteRoom removes a room and its exams
// @Summary Delete room
// @Tags catalog
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [delete]
func (c *CatalogController) DeleteRoom(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.catalogService.DeleteRoom(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
