package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle or a requested
// operation.  It can produce an error message in English, but it
// also carries enough structure for localized error messaging by
// clients: it tells the caller "this thing failed to meet this
// condition", and provides supplemental details about the thing
// and the condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, the textual form of a
// board, or the puzzle itself.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	FormatScope
	PuzzleScope
	MaxScope
)

// An ErrorAttribute names the attribute that has a problem.  When
// an Error carries an Attribute, the first entry of its Values is
// the attribute's offending value.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	RowAttribute
	ColumnAttribute
	ValueAttribute
	LineAttribute
	DifficultyAttribute
	MaxAttribute
)

// The ErrorCondition is the predicate that the scope or attribute
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	TooLargeCondition
	TooSmallCondition
	WrongLineCountCondition
	WrongLineLengthCondition
	BadCharacterCondition
	UnsolvableCondition
	UnknownDifficultyCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as the bound that was exceeded).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so embedding applications can pass Errors to
// their own clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case FormatScope:
		es = "Invalid board text: "
	case PuzzleScope:
		es = "Puzzle problem: "
	default:
		es = "Unknown error: "
	}
	if e.Attribute != UnknownAttribute {
		switch e.Attribute {
		case RowAttribute:
			es += "Row"
		case ColumnAttribute:
			es += "Column"
		case ValueAttribute:
			es += "Value"
		case LineAttribute:
			es += "Line"
		case DifficultyAttribute:
			es += "Difficulty"
		default:
			es += "<unknown attribute>"
		}
		es += " (" + fmt.Sprint(nextVal()) + "): "
	}
	switch e.Condition {
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case WrongLineCountCondition:
		es += fmt.Sprintf("Must have exactly %v lines, found %v", nextVal(), nextVal())
	case WrongLineLengthCondition:
		es += fmt.Sprintf("Must have exactly %v characters, found %v", nextVal(), nextVal())
	case BadCharacterCondition:
		es += fmt.Sprintf("Character %q at position %v is not a digit, '0', or '.'",
			nextVal(), nextVal())
	case UnsolvableCondition:
		es += "No solution exists"
	case UnknownDifficultyCondition:
		es += fmt.Sprintf("Must be one of %v", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Error constructors

*/

// rangeError returns an Error that describes an out-of-range argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// lineError returns an Error for a malformed line of board text.
// The line number is 1-based, as in editors.
func lineError(line int, cond ErrorCondition, values ...interface{}) Error {
	return Error{
		Scope:     FormatScope,
		Attribute: LineAttribute,
		Condition: cond,
		Values:    append(ErrorData{line}, values...),
	}
}

// unsolvableError returns the Error for a puzzle with no solution.
// This is an expected outcome of solving, not a failure of the
// solver, so callers should branch on IsUnsolvable rather than
// treating it as fatal.
func unsolvableError() Error {
	return Error{
		Scope:     PuzzleScope,
		Condition: UnsolvableCondition,
	}
}

// difficultyError returns the Error for an unrecognized difficulty
// label.
func difficultyError(d Difficulty) Error {
	return Error{
		Scope:     ArgumentScope,
		Attribute: DifficultyAttribute,
		Condition: UnknownDifficultyCondition,
		Values:    ErrorData{string(d), Difficulties()},
	}
}

/*

Predicates

*/

// condition extracts the ErrorCondition from an error, if it is
// an Error.
func condition(err error) ErrorCondition {
	if e, ok := err.(Error); ok {
		return e.Condition
	}
	return UnknownCondition
}

// IsUnsolvable reports whether an error says a puzzle has no
// solution.
func IsUnsolvable(err error) bool {
	return condition(err) == UnsolvableCondition
}

// IsOutOfRange reports whether an error says an argument was out
// of its allowed range.
func IsOutOfRange(err error) bool {
	c := condition(err)
	return c == TooLargeCondition || c == TooSmallCondition
}

// IsParseError reports whether an error says board text was
// malformed.
func IsParseError(err error) bool {
	if e, ok := err.(Error); ok {
		return e.Scope == FormatScope
	}
	return false
}

// IsUnknownDifficulty reports whether an error says a difficulty
// label was not recognized.
func IsUnknownDifficulty(err error) bool {
	return condition(err) == UnknownDifficultyCondition
}
