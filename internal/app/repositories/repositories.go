package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/db"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	ExistsWithRole(ctx context.Context, role models.Role) (bool, error)
}

// IStreamRepository defines stream persistence
type IStreamRepository interface {
	Create(ctx context.Context, stream *models.Stream) error
	GetByID(ctx context.Context, id int64) (*models.Stream, error)
	GetByName(ctx context.Context, name string) (*models.Stream, error)
	List(ctx context.Context) ([]*models.Stream, error)
}

// ISubjectRepository defines subject persistence
type ISubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	// List returns every subject, or only those of streamID when it is set.
	List(ctx context.Context, streamID *int64) ([]*models.Subject, error)
	Exists(ctx context.Context, streamID int64, name string) (bool, error)
}

// IRoomRepository defines room persistence
type IRoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetByName(ctx context.Context, name string) (*models.Room, error)
	List(ctx context.Context) ([]*models.Room, error)
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
}

// ExamFilter narrows exam listings. Nil fields are ignored.
type ExamFilter struct {
	StreamID  *int64
	TeacherID *int64
}

// IExamRepository defines exam persistence
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id int64) (*models.ExamDetail, error)
	List(ctx context.Context, filter ExamFilter) ([]*models.ExamDetail, error)
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) error
}

// IConvocationRepository defines convocation persistence
type IConvocationRepository interface {
	GetByStudentAndExam(ctx context.Context, studentID, examID int64) (*models.Convocation, error)
	// Create stores c unless the student already holds a convocation for the
	// exam. Either way the stored row is returned; created reports which.
	Create(ctx context.Context, c *models.Convocation) (stored *models.Convocation, created bool, err error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        IUserRepository
	StreamRepository      IStreamRepository
	SubjectRepository     ISubjectRepository
	RoomRepository        IRoomRepository
	ExamRepository        IExamRepository
	ConvocationRepository IConvocationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database.Pool),
		StreamRepository:      NewStreamRepository(database.Pool),
		SubjectRepository:     NewSubjectRepository(database.Pool),
		RoomRepository:        NewRoomRepository(database.Pool),
		ExamRepository:        NewExamRepository(database.Pool),
		ConvocationRepository: NewConvocationRepository(database),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
