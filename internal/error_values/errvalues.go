package errorvalues

import "errors"

var (
	// Users / auth
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	// Not found
	ErrGoalNotFound         = errors.New("goal doesn't exist")
	ErrParentNotFound       = errors.New("parent goal doesn't exist")
	ErrGroupNotFound        = errors.New("group doesn't exist")
	ErrVerificationNotFound = errors.New("verification doesn't exist")
	ErrStatsNotFound        = errors.New("user stats don't exist")

	// Authorization
	ErrUnauthorizedAccess = errors.New("no access to this goal")
	ErrNotGroupMember     = errors.New("actor is not a member of the group")
	ErrWrongOwner         = errors.New("actor is not the owner")
	ErrSelfVerification   = errors.New("cannot verify own goal")

	// Invalid state
	ErrVerificationResolved = errors.New("verification already resolved")
	ErrVerificationPending  = errors.New("step is awaiting verification")
	ErrNotAStep             = errors.New("only steps can be toggled")
	ErrNotAGoal             = errors.New("steps cannot be completed directly")

	// Validation
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidGoalType = errors.New("unknown goal type")
	ErrProofRequired   = errors.New("exactly one proof form is required")

	// Store
	ErrTransactionConflict = errors.New("transaction retries exhausted")
)
