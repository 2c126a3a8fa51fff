package models

// DefaultRoomCapacity is used when a room is created without a capacity.
const DefaultRoomCapacity = 30

// Stream is an academic track grouping users, subjects and exams.
type Stream struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Subject belongs to exactly one stream.
type Subject struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	StreamID int64  `db:"stream_id"`
}

// Room is an exam location.
type Room struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
}
