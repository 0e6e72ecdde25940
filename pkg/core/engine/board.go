package engine

import (
	"context"
	"fmt"

	"github.com/nextshift/shiftboard/pkg/db"
)

// BoardView is every assignment grouped by team, for the schedule board.
// TeamNames preserves a stable display order for the groups.
type BoardView struct {
	Teams     map[string][]db.AssignmentDetail
	TeamNames []string
}

const unassignedTeam = "No Team"

// Board builds the full schedule board. Snapshot times of "00:00" are
// placeholder values from non-timed templates and render as absent.
func Board(ctx context.Context, store db.AssignmentStore) (*BoardView, error) {
	details, err := store.GetAssignmentDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	view := &BoardView{Teams: make(map[string][]db.AssignmentDetail)}
	for _, detail := range details {
		if detail.StartTime == "00:00" {
			detail.StartTime = ""
		}
		if detail.EndTime == "00:00" {
			detail.EndTime = ""
		}

		team := detail.Team
		if team == "" {
			team = unassignedTeam
		}
		if _, seen := view.Teams[team]; !seen {
			view.TeamNames = append(view.TeamNames, team)
		}
		view.Teams[team] = append(view.Teams[team], detail)
	}

	return view, nil
}

// PendingRequests lists the REST/OFF assignments still awaiting a decision.
func PendingRequests(ctx context.Context, store db.AssignmentStore) ([]db.AssignmentDetail, error) {
	requests, err := store.GetPendingRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}
