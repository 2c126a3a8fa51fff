package dto

import "github.com/yigit/examdesk/internal/app/models"

// StreamRequest creates a stream
type StreamRequest struct {
	Name string `json:"name" binding:"required"`
}

// StreamResponse is the public view of a stream
type StreamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SubjectRequest creates a subject
type SubjectRequest struct {
	Name     string `json:"name" binding:"required"`
	StreamID int64  `json:"stream_id" binding:"required,gt=0"`
}

// SubjectResponse is the public view of a subject
type SubjectResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StreamID int64  `json:"stream_id"`
}

// RoomRequest creates or replaces a room. Capacity defaults to 30.
type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity *int   `json:"capacity" binding:"omitempty,gt=0"`
}

// RoomResponse is the public view of a room
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// NewStreamResponses maps streams
func NewStreamResponses(streams []*models.Stream) []StreamResponse {
	out := make([]StreamResponse, 0, len(streams))
	for _, s := range streams {
		out = append(out, StreamResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

// NewSubjectResponse maps a subject
func NewSubjectResponse(s *models.Subject) SubjectResponse {
	return SubjectResponse{ID: s.ID, Name: s.Name, StreamID: s.StreamID}
}

// NewSubjectResponses maps subjects
func NewSubjectResponses(subjects []*models.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, NewSubjectResponse(s))
	}
	return out
}

// NewRoomResponse maps a room
func NewRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.Name, Capacity: r.Capacity}
}

// NewRoomResponses maps rooms
func NewRoomResponses(rooms []*models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, NewRoomResponse(r))
	}
	return out
}

// ToModel builds the room described by the request
func (r RoomRequest) ToModel() *models.Room {
	capacity := models.DefaultRoomCapacity
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	return &models.Room{Name: r.Name, Capacity: capacity}
}
