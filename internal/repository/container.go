package repository

//go:generate mockgen -source=user.go -destination=mock/user_mock.go -package=mock
//go:generate mockgen -source=project.go -destination=mock/project_mock.go -package=mock
//go:generate mockgen -source=ticket.go -destination=mock/ticket_mock.go -package=mock
//go:generate mockgen -source=history.go -destination=mock/history_mock.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	User    UserRepo
	Project ProjectRepo
	Ticket  TicketRepo
	History HistoryRepo
	Audit   AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:    NewUserRepo(db),
		Project: NewProjectRepo(db),
		Ticket:  NewTicketRepo(db),
		History: NewHistoryRepo(db),
		Audit:   NewAuditRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:    r.User.WithTx(tx),
		Project: r.Project.WithTx(tx),
		Ticket:  r.Ticket.WithTx(tx),
		History: r.History.WithTx(tx),
		Audit:   r.Audit.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn as one unit of work bound to ctx. Repos assembled without a
// connection (unit tests with mocked repositories) run fn against themselves.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// WithContext binds ctx to every repository for single-statement reads.
func (r *Repos) WithContext(ctx context.Context) *Repos {
	if r.db == nil {
		return r
	}
	return r.WithTx(r.db.WithContext(ctx))
}

// Ping checks that the underlying database connection is alive.
func (r *Repos) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
