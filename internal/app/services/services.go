package services

import (
	"github.com/campusbridge/campusbridge/internal/app/repositories"
	"github.com/campusbridge/campusbridge/internal/pkg/auth"
)

// Services bundles all service instances.
type Services struct {
	Auth    *AuthService
	User    *UserService
	College *CollegeService
	Feed    *FeedService
	Alumni  *AlumniService
	Student *StudentService
}

func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.College, jwtService),
		User:    NewUserService(repos.User),
		College: NewCollegeService(repos.College),
		Feed:    NewFeedService(repos.Post, repos.Comment, repos.Reaction),
		Alumni:  NewAlumniService(repos.Alumni, repos.User),
		Student: NewStudentService(repos.Student),
	}
}
