package vim

// ParseStatus indicates the result of feeding a key to the parser.
type ParseStatus uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the sequence is invalid.
	StatusInvalid
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateInitial is waiting for initial input.
	StateInitial ParseState = iota

	// StateOperator has received an operator, waiting for a text object.
	StateOperator

	// StatePrefix has received 'i' or 'a', waiting for the object key.
	StatePrefix
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateOperator:
		return "operator"
	case StatePrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Command represents a parsed text object command.
type Command struct {
	// Count is the combined repeat count, at least 1.
	Count int

	// Operator is the operator, or nil for a bare object selection.
	Operator *Operator

	// Prefix is the inner/around variant.
	Prefix Prefix

	// Key is the text object key.
	Key rune
}

// Parser is a state machine for the object command grammar:
//
//	[count][operator][count](i|a)<object>
//
// A bare (i|a)<object> with no operator is a selection command as
// typed in visual mode. The parser validates grammar shape only; the
// registry decides whether the object key resolves.
type Parser struct {
	state    ParseState
	count    *CountState
	opCount  *CountState
	operator *Operator
	prefix   Prefix
}

// NewParser creates a parser in the initial state.
func NewParser() *Parser {
	return &Parser{
		count:   NewCountState(),
		opCount: NewCountState(),
	}
}

// Reset returns the parser to the initial state.
func (p *Parser) Reset() {
	p.state = StateInitial
	p.count.Reset()
	p.opCount.Reset()
	p.operator = nil
	p.prefix = PrefixNone
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// Feed advances the parser with one key. On StatusComplete the
// returned command is valid and the parser has reset; on
// StatusInvalid the parser has reset and the command is zero.
func (p *Parser) Feed(key rune) (Command, ParseStatus) {
	switch p.state {
	case StateInitial:
		if p.count.AccumulateDigit(key) {
			return Command{}, StatusPending
		}
		if op := GetOperator(key); op != nil {
			p.operator = op
			p.state = StateOperator
			return Command{}, StatusPending
		}
		if IsPrefix(key) {
			p.prefix = PrefixFor(key)
			p.state = StatePrefix
			return Command{}, StatusPending
		}

	case StateOperator:
		if p.opCount.AccumulateDigit(key) {
			return Command{}, StatusPending
		}
		if IsPrefix(key) {
			p.prefix = PrefixFor(key)
			p.state = StatePrefix
			return Command{}, StatusPending
		}

	case StatePrefix:
		cmd := Command{
			Count:    CombineCounts(p.count.Value, p.opCount.Value),
			Operator: p.operator,
			Prefix:   p.prefix,
			Key:      key,
		}
		p.Reset()
		return cmd, StatusComplete
	}

	p.Reset()
	return Command{}, StatusInvalid
}
