package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	AvatarURL    string
	PasswordHash string
}

// Actor is the authenticated identity every mutation is authorized against.
// It is built from verified token claims, never from request payloads.
type Actor struct {
	ID     uuid.UUID
	Name   string
	Avatar string
}

type GoalType string

const (
	GoalTypeGoal    GoalType = "goal"
	GoalTypeSubGoal GoalType = "sub-goal"
	GoalTypeStep    GoalType = "step"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeGoal, GoalTypeSubGoal, GoalTypeStep:
		return true
	}
	return false
}

type GoalStatus string

const (
	GoalStatusActive              GoalStatus = "active"
	GoalStatusCompleted           GoalStatus = "completed"
	GoalStatusPendingVerification GoalStatus = "pending_verification"
)

// GoalNode is one element of the goal tree. Ancestors holds the materialized
// path from root to immediate parent, so progress deltas can be applied to a
// whole path with a single array-membership update.
type GoalNode struct {
	ID             uuid.UUID   `json:"id"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Title          string      `json:"title"`
	Type           GoalType    `json:"type"`
	Status         GoalStatus  `json:"status"`
	ParentID       *uuid.UUID  `json:"parent_id"`
	Ancestors      []uuid.UUID `json:"ancestors"`
	GroupID        *uuid.UUID  `json:"group_id"`
	SharedWith     []uuid.UUID `json:"shared_with"`
	TotalSteps     int         `json:"total_steps"`
	CompletedSteps int         `json:"completed_steps"`
	Deadline       *time.Time  `json:"deadline,omitempty"`
	Order          *int        `json:"order,omitempty"`
	VerificationID *uuid.UUID  `json:"verification_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// OrderUpdate is one entry of a sibling reorder batch.
type OrderUpdate struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type Verification struct {
	ID            uuid.UUID          `json:"id"`
	GoalID        uuid.UUID          `json:"goal_id"`
	RequesterID   uuid.UUID          `json:"requester_id"`
	RequesterName string             `json:"requester_name"`
	ProofURL      string             `json:"proof_url,omitempty"`
	ProofText     string             `json:"proof_text,omitempty"`
	Status        VerificationStatus `json:"status"`
	ApproverID    *uuid.UUID         `json:"approver_id,omitempty"`
	ApproverName  string             `json:"approver_name,omitempty"`
	XPReward      int                `json:"xp_reward"`
	CreatedAt     time.Time          `json:"created_at"`
	ResolvedAt    *time.Time         `json:"resolved_at,omitempty"`
}

type FocusStatus struct {
	GoalID    uuid.UUID `json:"goal_id"`
	GoalTitle string    `json:"goal_title"`
	StartedAt time.Time `json:"started_at"`
}

// UserStats tracks gamification state per user. LastActiveDate is a
// YYYY-MM-DD date compared as a string when computing streaks.
type UserStats struct {
	UserID         uuid.UUID    `json:"user_id"`
	XP             int          `json:"xp"`
	Level          int          `json:"level"`
	Streak         int          `json:"streak"`
	LastActiveDate string       `json:"last_active_date"`
	FocusStatus    *FocusStatus `json:"focus_status,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type Group struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Members   []uuid.UUID `json:"members"`
	CreatedBy uuid.UUID   `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
}

type ActivityType string

const (
	ActivityCompletion           ActivityType = "completion"
	ActivityLevelUp              ActivityType = "level_up"
	ActivityVerificationRequest  ActivityType = "verification_request"
	ActivityVerificationApproved ActivityType = "verification_approved"
)

type Activity struct {
	ID         uuid.UUID    `json:"id"`
	Type       ActivityType `json:"type"`
	UserID     uuid.UUID    `json:"user_id"`
	UserName   string       `json:"user_name"`
	UserAvatar string       `json:"user_avatar,omitempty"`
	GroupID    uuid.UUID    `json:"group_id"`
	GoalID     *uuid.UUID   `json:"goal_id,omitempty"`
	GoalTitle  string       `json:"goal_title,omitempty"`
	ProofURL   string       `json:"proof_url,omitempty"`
	XPGained   int          `json:"xp_gained,omitempty"`
	Level      int          `json:"level,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
