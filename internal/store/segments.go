package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpdateSegmentChoices upserts the choices array on a story segment and
// marks the set as engine-corrected.
func (s *Store) UpdateSegmentChoices(ctx context.Context, segmentID uuid.UUID, choices []string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO story_segments (id, choices, choices_source, updated_at)
		VALUES ($1, $2, 'choice-engine', now())
		ON CONFLICT (id) DO UPDATE
		SET choices = EXCLUDED.choices, choices_source = EXCLUDED.choices_source, updated_at = now()`,
		segmentID, choices,
	)
	if err != nil {
		return fmt.Errorf("upsert segment choices: %w", err)
	}
	return nil
}

// GetSegmentChoices fetches the stored choices array for a segment.
func (s *Store) GetSegmentChoices(ctx context.Context, segmentID uuid.UUID) ([]string, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT choices FROM story_segments WHERE id = $1`, segmentID)

	var choices []string
	if err := row.Scan(&choices); err != nil {
		return nil, fmt.Errorf("scan segment choices: %w", err)
	}
	return choices, nil
}
