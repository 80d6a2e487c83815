package ticket

import "github.com/Piero-Micciulla/project-management-dashboard/pkg/types"

type CreateTicketInput struct {
	Title          string  `json:"title" binding:"required" example:"Write release notes"`
	Description    *string `json:"description" binding:"required" example:"Summarise Q1 changes"`
	ProjectID      uint    `json:"project_id" binding:"required" example:"1"`
	AssignedUserID *uint   `json:"assigned_user_id,omitempty" example:"2"`
	Status         *string `json:"status,omitempty" example:"To Do"`
	Priority       *string `json:"priority,omitempty" example:"Medium"`
}

// UpdateTicketInput is a sparse patch. AssignedUserID 0 clears the assignee;
// null is treated as absent.
type UpdateTicketInput struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	Status         *string `json:"status,omitempty" example:"In Progress"`
	Priority       *string `json:"priority,omitempty" example:"High"`
	AssignedUserID *uint   `json:"assigned_user_id,omitempty" example:"0"`
}

type TicketDTO struct {
	ID             uint    `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	CreatedAt      string  `json:"created_at" example:"2025-01-01 09:30:00"`
	UpdatedAt      string  `json:"updated_at" example:"2025-01-01 09:30:00"`
	ProjectID      uint    `json:"project_id"`
	AssignedUserID *uint   `json:"assigned_user_id"`
	AssignedUser   *string `json:"assigned_user"`
	Creator        *string `json:"creator"`
}

type HistoryDTO struct {
	ID         uint       `json:"id"`
	TicketID   uint       `json:"ticket_id"`
	ChangedBy  string     `json:"changed_by"`
	ChangeType ChangeType `json:"change_type"`
	OldValue   string     `json:"old_value"`
	NewValue   string     `json:"new_value"`
	ChangedAt  string     `json:"changed_at"`
}

func ToDTO(t Ticket) TicketDTO {
	dto := TicketDTO{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		CreatedAt:      t.CreatedAt.Format(types.TimestampLayout),
		UpdatedAt:      t.UpdatedAt.Format(types.TimestampLayout),
		ProjectID:      t.ProjectID,
		AssignedUserID: t.AssignedUserID,
	}
	if t.AssignedUser != nil {
		name := t.AssignedUser.Username
		dto.AssignedUser = &name
	}
	if t.Creator != nil {
		name := t.Creator.Username
		dto.Creator = &name
	}
	return dto
}

func ToDTOs(tickets []Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToDTO(t))
	}
	return out
}

func ToHistoryDTOs(entries []History) []HistoryDTO {
	out := make([]HistoryDTO, 0, len(entries))
	for _, h := range entries {
		dto := HistoryDTO{
			ID:         h.ID,
			TicketID:   h.TicketID,
			ChangeType: h.ChangeType,
			OldValue:   h.OldValue,
			NewValue:   h.NewValue,
			ChangedAt:  h.ChangedAt.Format(types.TimestampLayout),
		}
		if h.ChangedBy != nil {
			dto.ChangedBy = h.ChangedBy.Username
		}
		out = append(out, dto)
	}
	return out
}
