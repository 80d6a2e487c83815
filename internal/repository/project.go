package repository

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	GetProjectByTitleAndOwner(title string, ownerID uint) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	ListProjects() ([]project.Project, error)
	ListProjectsByUserID(userID uint) ([]project.Project, error)
	IsAssigned(userID, projectID uint) (bool, error)
	AddAssignment(userID, projectID uint) error
	RemoveAssignmentsByUserID(userID uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

// withDetails preloads the nested users and tickets used by project listings.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("AssignedUsers", func(db *gorm.DB) *gorm.DB { return db.Order("users.id") }).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("tickets.id") }).
		Preload("Tickets.AssignedUser").
		Preload("Tickets.Creator")
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := withDetails(r.db).First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectByTitleAndOwner(title string, ownerID uint) (project.Project, error) {
	var p project.Project
	err := r.db.Where("title = ? AND owner_id = ?", title, ownerID).Order("id").First(&p).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Omit("AssignedUsers", "Tickets").Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Omit("AssignedUsers", "Tickets").Save(p).Error
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := withDetails(r.db).Order("projects.id").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByUserID(userID uint) ([]project.Project, error) {
	var projects []project.Project
	err := withDetails(r.db).
		Joins("JOIN project_assignments pa ON pa.project_id = projects.id").
		Where("pa.user_id = ?", userID).
		Order("projects.id").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) IsAssigned(userID, projectID uint) (bool, error) {
	var count int64
	err := r.db.Model(&project.Assignment{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProjectRepo) AddAssignment(userID, projectID uint) error {
	return r.db.Create(&project.Assignment{UserID: userID, ProjectID: projectID}).Error
}

func (r *DBProjectRepo) RemoveAssignmentsByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&project.Assignment{}).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
