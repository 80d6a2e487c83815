package repository

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	GetTicketByID(id uint) (ticket.Ticket, error)
	CreateTicket(t *ticket.Ticket) error
	SaveTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	ListTicketsByProjectID(projectID uint) ([]ticket.Ticket, error)
	ListTicketsByAssignee(userID uint) ([]ticket.Ticket, error)
	ListTicketIDsByCreator(userID uint) ([]uint, error)
	UnassignUser(userID uint) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("AssignedUser").Preload("Creator").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Omit("AssignedUser", "Creator").Create(t).Error
}

func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Omit("AssignedUser", "Creator").Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) ListTicketsByProjectID(projectID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("AssignedUser").Preload("Creator").
		Where("project_id = ?", projectID).
		Order("id").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsByAssignee(userID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("AssignedUser").Preload("Creator").
		Where("assigned_user_id = ?", userID).
		Order("id").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketIDsByCreator(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&ticket.Ticket{}).Where("created_by_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) UnassignUser(userID uint) error {
	return r.db.Model(&ticket.Ticket{}).
		Where("assigned_user_id = ?", userID).
		Update("assigned_user_id", nil).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
