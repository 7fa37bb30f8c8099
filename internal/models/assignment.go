package models

import "time"

// ProjectManager represents the active project-manager pairing for a project.
// A manager holds at most one assignment at a time, and so does a project.
type ProjectManager struct {
	ID              int       `json:"id"`
	ProjetID        int       `json:"projet_id"`
	ManagerCIN      string    `json:"manager_cin"`
	DateAssignation time.Time `json:"date_assignation"`
}

// ProjectManagerDetails is the assignment joined with the manager's profile
type ProjectManagerDetails struct {
	CIN             string    `json:"cin"`
	Nom             string    `json:"nom"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	Poste           string    `json:"poste,omitempty"`
	NumTele         string    `json:"num_tele,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	DateAssignation time.Time `json:"date_assignation"`
}

// AssignManagerRequest represents a request to assign a manager to a project
type AssignManagerRequest struct {
	ProjetID   int    `json:"projet_id" validate:"required"`
	ManagerCIN string `json:"manager_cin" validate:"required"`
}
