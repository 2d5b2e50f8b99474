package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// TechnicianInput carries the caller-supplied fields for a new technician.
type TechnicianInput struct {
	Name       string
	Role       string
	Email      string
	Phone      string
	Active     bool
	Skills     []string
	HourlyRate float64
}

// AddTechnician registers a new technician.
func (s *Store) AddTechnician(in TechnicianInput) models.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	tech := models.Technician{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Role:       in.Role,
		Email:      in.Email,
		Phone:      in.Phone,
		Active:     in.Active,
		Skills:     in.Skills,
		HourlyRate: in.HourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if tech.Skills == nil {
		tech.Skills = []string{}
	}
	s.technicians = append(s.technicians, tech)
	return tech
}

// UpdateTechnician merges the patch onto the stored technician.
func (s *Store) UpdateTechnician(id string, patch models.TechnicianPatch) (models.Technician, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.technicianIndex(id)
	if idx < 0 {
		return models.Technician{}, false
	}
	tech := s.technicians[idx]
	if patch.Name != nil {
		tech.Name = *patch.Name
	}
	if patch.Role != nil {
		tech.Role = *patch.Role
	}
	if patch.Email != nil {
		tech.Email = *patch.Email
	}
	if patch.Phone != nil {
		tech.Phone = *patch.Phone
	}
	if patch.Active != nil {
		tech.Active = *patch.Active
	}
	if patch.Skills != nil {
		tech.Skills = patch.Skills
	}
	if patch.HourlyRate != nil {
		tech.HourlyRate = *patch.HourlyRate
	}
	tech.UpdatedAt = time.Now().UTC()
	s.technicians[idx] = tech
	return tech, true
}

// GetTechnician returns the technician with the given id.
func (s *Store) GetTechnician(id string) (models.Technician, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.technicianIndex(id)
	if idx < 0 {
		return models.Technician{}, false
	}
	return s.technicians[idx], true
}

// ListTechnicians returns a copy of all technicians.
func (s *Store) ListTechnicians() []models.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Technician, len(s.technicians))
	copy(out, s.technicians)
	return out
}

// ActiveTechnicians returns technicians available for assignment.
func (s *Store) ActiveTechnicians() []models.Technician {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Technician
	for _, t := range s.technicians {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}

// technicianIndex returns the index for id, or -1. Callers must hold the lock.
func (s *Store) technicianIndex(id string) int {
	for i := range s.technicians {
		if s.technicians[i].ID == id {
			return i
		}
	}
	return -1
}
