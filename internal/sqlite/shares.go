package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

// newShareID generates a UUID v7 for a share group.
func newShareID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

// loadShareGroups reads share_groups ordered so rows of one group are
// contiguous, then folds them into ShareGroup values.
func (s *Store) loadShareGroups() ([]model.ShareGroup, error) {
	rows, err := s.db.Query(`SELECT share_id, obj_id FROM share_groups ORDER BY share_id, obj_id`)
	if err != nil {
		return nil, fmt.Errorf("loading share groups: %w", err)
	}
	defer rows.Close()

	var groups []model.ShareGroup
	for rows.Next() {
		var shareID string
		var objID int64
		if err := rows.Scan(&shareID, &objID); err != nil {
			return nil, fmt.Errorf("scanning share group row: %w", err)
		}
		if len(groups) == 0 || groups[len(groups)-1].ShareID != shareID {
			groups = append(groups, model.ShareGroup{ShareID: shareID})
		}
		last := &groups[len(groups)-1]
		last.ObjectIDs = append(last.ObjectIDs, objID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading share groups: %w", err)
	}
	return groups, nil
}

// SaveShareGroups rewrites the share_groups table from doc in one
// transaction. Groups without a ShareID are assigned one first.
func (s *Store) SaveShareGroups(doc *model.Document) error {
	if err := s.guard(); err != nil {
		return err
	}

	for i := range doc.ShareGroups {
		if doc.ShareGroups[i].ShareID == "" {
			doc.ShareGroups[i].ShareID = newShareID()
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving share groups: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM share_groups`); err != nil {
		return fmt.Errorf("saving share groups: %w", err)
	}
	for _, g := range doc.ShareGroups {
		for _, objID := range g.ObjectIDs {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO share_groups (share_id, obj_id) VALUES (?, ?)`,
				g.ShareID, objID,
			); err != nil {
				return fmt.Errorf("saving share groups: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving share groups: %w", err)
	}
	return nil
}
