package repository

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsers() ([]user.User, error)
	ListUsersByProjectID(projectID uint) ([]user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByProjectID(projectID uint) ([]user.User, error) {
	var users []user.User
	err := r.db.
		Joins("JOIN project_assignments pa ON pa.user_id = users.id").
		Where("pa.project_id = ?", projectID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
