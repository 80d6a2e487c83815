package application

import (
	"context"
	"strings"
	"time"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{
		Repos: repos,
	}
}

func (s *TicketService) CreateTicket(ctx context.Context, caller *user.User, input ticket.CreateTicketInput) (*ticket.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" || input.Description == nil || input.ProjectID == 0 {
		return nil, newError(ErrValidation, "title, description, and project_id are required")
	}

	t := &ticket.Ticket{
		Title:          strings.TrimSpace(input.Title),
		Description:    *input.Description,
		Status:         ticket.StatusToDo,
		Priority:       ticket.PriorityMedium,
		ProjectID:      input.ProjectID,
		AssignedUserID: input.AssignedUserID,
		CreatedByID:    caller.ID,
	}
	if input.Status != nil && *input.Status != "" {
		t.Status = *input.Status
	}
	if input.Priority != nil && *input.Priority != "" {
		t.Priority = *input.Priority
	}

	var created ticket.Ticket
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetProjectByID(input.ProjectID); err != nil {
			return notFound(err, ErrProjectNotFound)
		}
		if t.AssignedUserID != nil {
			if _, err := tx.User.GetUserByID(*t.AssignedUserID); err != nil {
				return notFound(err, ErrUserNotFound)
			}
		}
		if err := tx.Ticket.CreateTicket(t); err != nil {
			return err
		}
		reloaded, err := tx.Ticket.GetTicketByID(t.ID)
		if err != nil {
			return err
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTicket applies a sparse patch and appends one history row for each
// status or priority value that actually changed.
func (s *TicketService) UpdateTicket(ctx context.Context, caller *user.User, id uint, input ticket.UpdateTicketInput) (*ticket.Ticket, error) {
	var updated ticket.Ticket
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		t, err := tx.Ticket.GetTicketByID(id)
		if err != nil {
			return notFound(err, ErrTicketNotFound)
		}

		now := time.Now()
		var changes []ticket.History
		if input.Status != nil && *input.Status != t.Status {
			changes = append(changes, ticket.History{
				TicketID:    t.ID,
				ChangedByID: caller.ID,
				ChangeType:  ticket.ChangeStatus,
				OldValue:    t.Status,
				NewValue:    *input.Status,
				ChangedAt:   now,
			})
			t.Status = *input.Status
		}
		if input.Priority != nil && *input.Priority != t.Priority {
			changes = append(changes, ticket.History{
				TicketID:    t.ID,
				ChangedByID: caller.ID,
				ChangeType:  ticket.ChangePriority,
				OldValue:    t.Priority,
				NewValue:    *input.Priority,
				ChangedAt:   now,
			})
			t.Priority = *input.Priority
		}
		if input.Title != nil {
			t.Title = *input.Title
		}
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.AssignedUserID != nil {
			if *input.AssignedUserID == 0 {
				t.AssignedUserID = nil
			} else {
				if _, err := tx.User.GetUserByID(*input.AssignedUserID); err != nil {
					return notFound(err, ErrUserNotFound)
				}
				assignee := *input.AssignedUserID
				t.AssignedUserID = &assignee
			}
			t.AssignedUser = nil
		}
		t.UpdatedAt = now

		if err := tx.Ticket.SaveTicket(&t); err != nil {
			return err
		}
		for i := range changes {
			if err := tx.History.CreateHistory(&changes[i]); err != nil {
				return err
			}
		}

		reloaded, err := tx.Ticket.GetTicketByID(t.ID)
		if err != nil {
			return err
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTicket removes the ticket and its history.
func (s *TicketService) DeleteTicket(ctx context.Context, id uint) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Ticket.GetTicketByID(id); err != nil {
			return notFound(err, ErrTicketNotFound)
		}
		if err := tx.History.DeleteHistoryByTicketID(id); err != nil {
			return err
		}
		return tx.Ticket.DeleteTicket(id)
	})
}

// GetTicketHistory returns the ticket's history, newest first.
func (s *TicketService) GetTicketHistory(ctx context.Context, id uint) ([]ticket.History, error) {
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Ticket.GetTicketByID(id); err != nil {
		return nil, notFound(err, ErrTicketNotFound)
	}
	return repos.History.ListHistoryByTicketID(id)
}

// ListMyTickets returns the tickets assigned to caller.
func (s *TicketService) ListMyTickets(ctx context.Context, caller *user.User) ([]ticket.Ticket, error) {
	return s.Repos.WithContext(ctx).Ticket.ListTicketsByAssignee(caller.ID)
}
