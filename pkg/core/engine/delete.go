package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
)

// Delete removes an assignment unconditionally. A missing id is reported
// as false, not an error; callers decide whether that matters.
func Delete(ctx context.Context, store db.AssignmentStore, logger *zap.Logger, id string) (bool, error) {
	deleted, err := store.DeleteAssignment(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete assignment: %w", err)
	}
	if !deleted {
		logger.Debug("Delete of unknown assignment ignored", zap.String("assignment_id", id))
		return false, nil
	}

	logger.Info("Assignment deleted", zap.String("assignment_id", id))
	return true, nil
}
