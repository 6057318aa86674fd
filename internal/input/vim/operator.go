package vim

// Operator represents a Vim operator command.
// Operators perform an action on the range produced by a text object.
type Operator struct {
	// Name is the operator identifier (e.g., "delete", "change", "yank").
	Name string

	// Key is the key that triggers this operator.
	Key rune

	// ChangesText indicates if this operator modifies the buffer.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// Standard operators.
var (
	// OpSelect marks the object range as the visual selection.
	OpSelect = Operator{
		Name: "select",
		Key:  'v',
	}

	// OpDelete deletes the object range.
	OpDelete = Operator{
		Name:        "delete",
		Key:         'd',
		ChangesText: true,
	}

	// OpChange deletes the object range and enters insert mode.
	OpChange = Operator{
		Name:         "change",
		Key:          'c',
		ChangesText:  true,
		EntersInsert: true,
	}

	// OpYank copies the object range.
	OpYank = Operator{
		Name: "yank",
		Key:  'y',
	}
)

// operators maps operator keys to their definitions.
var operators = map[rune]*Operator{
	'v': &OpSelect,
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
}

// GetOperator returns the operator for the given key.
// Returns nil if the key is not an operator.
func GetOperator(key rune) *Operator {
	return operators[key]
}

// IsOperator returns true if the key is an operator.
func IsOperator(key rune) bool {
	_, ok := operators[key]
	return ok
}

// OperatorKeys returns all operator key characters.
func OperatorKeys() []rune {
	keys := make([]rune, 0, len(operators))
	for k := range operators {
		keys = append(keys, k)
	}
	return keys
}
