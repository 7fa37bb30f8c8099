package models

// Competence represents a skill tag attachable to projects
type Competence struct {
	ID            int    `json:"id"`
	NomCompetence string `json:"nom_competence"`
}

// CompetenceRequest represents a request to create or rename a competence
type CompetenceRequest struct {
	NomCompetence string `json:"nom_competence" validate:"required"`
}
