package models

import "time"

// ProjectStatus is the closed set of project statuses
type ProjectStatus string

// Project status constants
const (
	StatusPending    ProjectStatus = "Pending"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusOnHold     ProjectStatus = "On Hold"
)

// Valid reports whether the status is one of the known constants
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

// Project represents a project with its required competences
type Project struct {
	ID          int           `json:"id"`
	NomProjet   string        `json:"nom_projet"`
	Description string        `json:"description"`
	Delai       time.Time     `json:"delai"`
	Budget      float64       `json:"budget"`
	Statut      ProjectStatus `json:"statut"`
	Competences []Competence  `json:"competences"`
}

// ProjectRequest represents a request to create or update a project.
// The competence set always replaces the previous one in full.
type ProjectRequest struct {
	NomProjet     string        `json:"nom_projet" validate:"required"`
	Description   string        `json:"description" validate:"required"`
	Delai         string        `json:"delai" validate:"required"`
	Budget        float64       `json:"budget" validate:"gte=0"`
	Statut        ProjectStatus `json:"statut" validate:"required"`
	CompetenceIDs []int         `json:"competence_ids" validate:"required,min=1"`
}

// DashboardStats holds the aggregate counts shown on the admin dashboard
type DashboardStats struct {
	TotalUsers    int                 `json:"totalUsers"`
	TotalProjects int                 `json:"totalProjects"`
	ProjectStatus ProjectStatusCounts `json:"projectStatus"`
}

// ProjectStatusCounts holds per-status project counts
type ProjectStatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"onHold"`
}
