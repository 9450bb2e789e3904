// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Roster errors
	CodeRosterEmpty     Code = "ROSTER_EMPTY"
	CodePlayerNameEmpty Code = "PLAYER_NAME_EMPTY"

	// Game lifecycle errors
	CodeGameNotPlaying     Code = "GAME_NOT_PLAYING"
	CodeGameAlreadyPlaying Code = "GAME_ALREADY_PLAYING"

	// Turn errors
	CodeNoRollsRemaining   Code = "NO_ROLLS_REMAINING"
	CodeTurnUndecided      Code = "TURN_UNDECIDED"
	CodeTurnAlreadyDecided Code = "TURN_ALREADY_DECIDED"

	// Dice errors
	CodeDieIndexOutOfRange Code = "DIE_INDEX_OUT_OF_RANGE"

	// Score table errors
	CodeCategoryUnknown   Code = "CATEGORY_UNKNOWN"
	CodeRowAlreadyDecided Code = "ROW_ALREADY_DECIDED"
	CodeRowNotEligible    Code = "ROW_NOT_ELIGIBLE"
)

// Kind groups codes by how a caller should react to them.
type Kind int

const (
	// KindInternal is an unexpected failure.
	KindInternal Kind = iota
	// KindInvalidArgument is bad caller input that can be corrected and retried.
	KindInvalidArgument
	// KindFailedPrecondition means the current game state does not allow the action.
	KindFailedPrecondition
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindFailedPrecondition:
		return "failed precondition"
	case KindNotFound:
		return "not found"
	default:
		return "internal"
	}
}

// Kind classifies the code.
func (c Code) Kind() Kind {
	switch c {
	case CodeRosterEmpty,
		CodePlayerNameEmpty,
		CodeDieIndexOutOfRange:
		return KindInvalidArgument

	case CodeGameNotPlaying,
		CodeGameAlreadyPlaying,
		CodeNoRollsRemaining,
		CodeTurnUndecided,
		CodeTurnAlreadyDecided,
		CodeRowAlreadyDecided,
		CodeRowNotEligible:
		return KindFailedPrecondition

	case CodeCategoryUnknown:
		return KindNotFound

	default:
		return KindInternal
	}
}
