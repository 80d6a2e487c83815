package repository

import (
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"gorm.io/gorm"
)

type HistoryRepo interface {
	CreateHistory(h *ticket.History) error
	ListHistoryByTicketID(ticketID uint) ([]ticket.History, error)
	DeleteHistoryByTicketID(ticketID uint) error
	DeleteHistoryByAuthor(userID uint) error
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{
		db: db,
	}
}

func (r *DBHistoryRepo) CreateHistory(h *ticket.History) error {
	return r.db.Omit("ChangedBy").Create(h).Error
}

// ListHistoryByTicketID returns the most recent change first.
func (r *DBHistoryRepo) ListHistoryByTicketID(ticketID uint) ([]ticket.History, error) {
	var entries []ticket.History
	err := r.db.Preload("ChangedBy").
		Where("ticket_id = ?", ticketID).
		Order("changed_at DESC").
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) DeleteHistoryByTicketID(ticketID uint) error {
	return r.db.Where("ticket_id = ?", ticketID).Delete(&ticket.History{}).Error
}

func (r *DBHistoryRepo) DeleteHistoryByAuthor(userID uint) error {
	return r.db.Where("changed_by_id = ?", userID).Delete(&ticket.History{}).Error
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{
		db: tx,
	}
}
