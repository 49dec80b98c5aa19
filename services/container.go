package services

import "github.com/nguyentuanthien2384/unishare-be-main/repositories"

type Container struct {
	Auth     AuthService
	User     UserService
	Document DocumentService
	Admin    AdminService
	Catalog  CatalogService
	Stats    StatsService
}

func NewContainer(repos repositories.Container) *Container {
	return &Container{
		Auth:     NewAuthService(repos.Users, repos.Stats),
		User:     NewUserService(repos.Users, repos.Documents, repos.Stats),
		Document: NewDocumentService(repos.Documents, repos.Users, repos.Subjects, repos.Logs, repos.Stats),
		Admin:    NewAdminService(repos.Users, repos.Documents, repos.Logs, repos.Stats),
		Catalog:  NewCatalogService(repos.Subjects, repos.Majors),
		Stats:    NewStatsService(repos.Stats, repos.Documents),
	}
}
