package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/maintkit/cmms/internal/models"
)

// LocationInput carries the caller-supplied fields for a new location.
type LocationInput struct {
	Name        string
	Code        string
	ParentID    string
	Description string
}

// AddLocation registers a new location in the flat list.
func (s *Store) AddLocation(in LocationInput) models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	loc := models.Location{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		ParentID:    in.ParentID,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.locations = append(s.locations, loc)
	return loc
}

// UpdateLocation merges the patch onto the stored location.
func (s *Store) UpdateLocation(id string, patch models.LocationPatch) (models.Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.locationIndex(id)
	if idx < 0 {
		return models.Location{}, false
	}
	loc := s.locations[idx]
	if patch.Name != nil {
		loc.Name = *patch.Name
	}
	if patch.Code != nil {
		loc.Code = *patch.Code
	}
	if patch.ParentID != nil {
		loc.ParentID = *patch.ParentID
	}
	if patch.Description != nil {
		loc.Description = *patch.Description
	}
	loc.UpdatedAt = time.Now().UTC()
	s.locations[idx] = loc
	return loc, true
}

// RemoveLocation deletes a location from the flat list. Children are not
// touched; the tree projection reparents them to the root level on the next
// read via the dangling-parent fallback.
func (s *Store) RemoveLocation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.locationIndex(id)
	if idx < 0 {
		return false
	}
	s.locations = append(s.locations[:idx], s.locations[idx+1:]...)
	return true
}

// GetLocation returns the location with the given id.
func (s *Store) GetLocation(id string) (models.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.locationIndex(id)
	if idx < 0 {
		return models.Location{}, false
	}
	return s.locations[idx], true
}

// ListLocations returns a copy of the flat location list.
func (s *Store) ListLocations() []models.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// LocationTree projects the flat location list into a parent/child tree.
// The tree is rebuilt from scratch on every call; nothing is cached.
//
// A location whose ParentID points at a missing record is kept as a root
// instead of being dropped. Re-running the pass over the same data cannot
// duplicate children: insertion is guarded by an id check. The final filter
// strips any parented node that ended up in the root set, so the advertised
// roots are exactly the nodes with no parent.
func (s *Store) LocationTree() []*models.LocationNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make(map[string]*models.LocationNode, len(s.locations))
	for _, loc := range s.locations {
		nodes[loc.ID] = &models.LocationNode{Location: loc, Children: []*models.LocationNode{}}
	}

	var roots []*models.LocationNode
	for _, loc := range s.locations {
		node := nodes[loc.ID]
		if loc.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[loc.ParentID]
		if !ok {
			// Dangling parent reference: surface the node as a root.
			roots = append(roots, node)
			continue
		}
		duplicate := false
		for _, child := range parent.Children {
			if child.ID == loc.ID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			parent.Children = append(parent.Children, node)
		}
	}

	out := make([]*models.LocationNode, 0, len(roots))
	for _, node := range roots {
		if node.ParentID == "" {
			out = append(out, node)
		} else if _, ok := nodes[node.ParentID]; !ok {
			out = append(out, node)
		}
	}
	return out
}

// locationIndex returns the index for id, or -1. Callers must hold the lock.
func (s *Store) locationIndex(id string) int {
	for i := range s.locations {
		if s.locations[i].ID == id {
			return i
		}
	}
	return -1
}
