package cache

import (
	"github.com/google/uuid"
	"github.com/nkaz/questline/internal/authz"
	"github.com/nkaz/questline/pkg/entity"
)

// The transforms below replay the server's mutation rules against a cached
// goal list. They work on shallow clones of affected nodes and leave the
// input slice untouched.

func SpeculateToggle(stepID uuid.UUID, completed bool) Speculation {
	return func(goals []*entity.GoalNode) []*entity.GoalNode {
		var step *entity.GoalNode
		for _, g := range goals {
			if g.ID == stepID {
				step = g
				break
			}
		}
		// Same idempotence guard as the transaction: a step already in the
		// target state moves no counters.
		if step == nil || step.Type != entity.GoalTypeStep ||
			(step.Status == entity.GoalStatusCompleted) == completed {
			return goals
		}
		status := entity.GoalStatusActive
		delta := -1
		if completed {
			status = entity.GoalStatusCompleted
			delta = 1
		}
		out := make([]*entity.GoalNode, 0, len(goals))
		for _, g := range goals {
			switch {
			case g.ID == stepID:
				clone := *g
				clone.Status = status
				out = append(out, &clone)
			case authz.Contains(step.Ancestors, g.ID):
				clone := *g
				clone.CompletedSteps += delta
				out = append(out, &clone)
			default:
				out = append(out, g)
			}
		}
		return out
	}
}

func SpeculateStatus(goalID uuid.UUID, completed bool) Speculation {
	return func(goals []*entity.GoalNode) []*entity.GoalNode {
		status := entity.GoalStatusActive
		if completed {
			status = entity.GoalStatusCompleted
		}
		out := make([]*entity.GoalNode, 0, len(goals))
		for _, g := range goals {
			if g.ID == goalID {
				clone := *g
				clone.Status = status
				out = append(out, &clone)
				continue
			}
			out = append(out, g)
		}
		return out
	}
}

func SpeculateReorder(items []entity.OrderUpdate) Speculation {
	orders := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		orders[item.ID] = item.Order
	}
	return func(goals []*entity.GoalNode) []*entity.GoalNode {
		out := make([]*entity.GoalNode, 0, len(goals))
		for _, g := range goals {
			if order, ok := orders[g.ID]; ok {
				clone := *g
				cloneOrder := order
				clone.Order = &cloneOrder
				out = append(out, &clone)
				continue
			}
			out = append(out, g)
		}
		return out
	}
}

// SpeculateDelete removes the target and its descendants and rewinds counters
// on surviving ancestors, mirroring the cascade transaction.
func SpeculateDelete(goalID uuid.UUID) Speculation {
	return func(goals []*entity.GoalNode) []*entity.GoalNode {
		var target *entity.GoalNode
		for _, g := range goals {
			if g.ID == goalID {
				target = g
				break
			}
		}
		if target == nil {
			return goals
		}
		removedTotal, removedCompleted := 0, 0
		countStep := func(g *entity.GoalNode) {
			if g.Type != entity.GoalTypeStep {
				return
			}
			removedTotal++
			if g.Status == entity.GoalStatusCompleted {
				removedCompleted++
			}
		}
		out := make([]*entity.GoalNode, 0, len(goals))
		for _, g := range goals {
			if g.ID == goalID || authz.Contains(g.Ancestors, goalID) {
				countStep(g)
				continue
			}
			out = append(out, g)
		}
		if removedTotal == 0 {
			return out
		}
		for i, g := range out {
			if authz.Contains(target.Ancestors, g.ID) {
				clone := *g
				clone.TotalSteps -= removedTotal
				clone.CompletedSteps -= removedCompleted
				out[i] = &clone
			}
		}
		return out
	}
}
