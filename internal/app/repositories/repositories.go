package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one connection pool.
type Repositories struct {
	User     *UserRepository
	College  *CollegeRepository
	Post     *PostRepository
	Comment  *CommentRepository
	Reaction *ReactionRepository
	Alumni   *AlumniRepository
	Student  *StudentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		College:  NewCollegeRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Reaction: NewReactionRepository(db),
		Alumni:   NewAlumniRepository(db),
		Student:  NewStudentRepository(db),
	}
}
