package pgcodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgio"
)

// Record and operator tags from src/include/tsearch/ts_type.h.
const (
	tsQueryValTag  = 1
	tsQueryOperTag = 2

	tsOperNot    = 1
	tsOperAnd    = 2
	tsOperOr     = 3
	tsOperPhrase = 4
)

// Operator priorities used when rendering infix text. Operands bind tighter than any operator.
const (
	tsPriorityOr      = 1
	tsPriorityAnd     = 2
	tsPriorityPhrase  = 3
	tsPriorityNot     = 4
	tsPriorityOperand = 5
)

// Lexeme weight mask bits for TSQueryLexeme.Weight.
const (
	TSQueryWeightD = 1 << iota
	TSQueryWeightC
	TSQueryWeightB
	TSQueryWeightA
)

// TSQueryNode is a node of a tsquery expression tree. It is implemented by TSQueryLexeme, TSQueryNot, TSQueryAnd,
// TSQueryOr, and TSQueryPhrase.
type TSQueryNode interface {
	tsQueryNode()
}

// TSQueryLexeme is an operand. Weight is a mask of the TSQueryWeight bits; zero matches any weight. Prefix marks a
// prefix match such as 'sup':*.
type TSQueryLexeme struct {
	Text   string
	Weight uint8
	Prefix bool
}

type TSQueryNot struct {
	Child TSQueryNode
}

type TSQueryAnd struct {
	Left  TSQueryNode
	Right TSQueryNode
}

type TSQueryOr struct {
	Left  TSQueryNode
	Right TSQueryNode
}

// TSQueryPhrase matches Left followed by Right Distance positions later. 'a' <-> 'b' has a Distance of 1.
type TSQueryPhrase struct {
	Left     TSQueryNode
	Right    TSQueryNode
	Distance int16
}

func (TSQueryLexeme) tsQueryNode() {}
func (TSQueryNot) tsQueryNode()    {}
func (TSQueryAnd) tsQueryNode()    {}
func (TSQueryOr) tsQueryNode()     {}
func (TSQueryPhrase) tsQueryNode() {}

// TSQuery represents a PostgreSQL tsquery value.
type TSQuery struct {
	Root TSQueryNode
}

// tsQueryPostorder flattens the tree rooted at root into postorder: children before their parent, left before right.
func tsQueryPostorder(root TSQueryNode) ([]TSQueryNode, error) {
	type frame struct {
		node     TSQueryNode
		expanded bool
	}

	var nodes []TSQueryNode
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			nodes = append(nodes, f.node)
			continue
		}

		// The right child is pushed first so the left subtree is emitted first.
		switch n := f.node.(type) {
		case TSQueryLexeme:
			nodes = append(nodes, n)
		case TSQueryNot:
			stack = append(stack, frame{node: n, expanded: true}, frame{node: n.Child})
		case TSQueryAnd:
			stack = append(stack, frame{node: n, expanded: true}, frame{node: n.Right}, frame{node: n.Left})
		case TSQueryOr:
			stack = append(stack, frame{node: n, expanded: true}, frame{node: n.Right}, frame{node: n.Left})
		case TSQueryPhrase:
			stack = append(stack, frame{node: n, expanded: true}, frame{node: n.Right}, frame{node: n.Left})
		case nil:
			return nil, newEncodeError("tsquery", ErrMalformedTree, fmt.Sprintf("nil node after %d nodes", len(nodes)))
		default:
			return nil, newEncodeError("tsquery", ErrMalformedTree, fmt.Sprintf("unknown node type %T", n))
		}
	}

	return nodes, nil
}

// TSQueryCodec encodes and decodes tsquery. Nodes are written in postorder, so the decoder rebuilds the tree with a
// stack.
type TSQueryCodec struct{}

func (TSQueryCodec) AppendBinary(buf []byte, v TSQuery) ([]byte, error) {
	nodes, err := tsQueryPostorder(v.Root)
	if err != nil {
		return nil, err
	}

	buf = pgio.AppendInt32(buf, int32(len(nodes)))
	for i, node := range nodes {
		switch n := node.(type) {
		case TSQueryLexeme:
			if err := validateLexeme("tsquery", n.Text); err != nil {
				err.Detail = fmt.Sprintf("node %d: %s", i, err.Detail)
				return nil, err
			}
			if n.Weight > 0x0F {
				return nil, newEncodeError("tsquery", ErrInvalidLexeme, fmt.Sprintf("node %d: invalid weight mask %#x", i, n.Weight))
			}
			buf = append(buf, tsQueryValTag, n.Weight)
			buf = appendBool(buf, n.Prefix)
			buf = append(buf, n.Text...)
			buf = append(buf, 0)
		case TSQueryNot:
			buf = append(buf, tsQueryOperTag, tsOperNot)
		case TSQueryAnd:
			buf = append(buf, tsQueryOperTag, tsOperAnd)
		case TSQueryOr:
			buf = append(buf, tsQueryOperTag, tsOperOr)
		case TSQueryPhrase:
			buf = append(buf, tsQueryOperTag, tsOperPhrase)
			buf = pgio.AppendInt16(buf, n.Distance)
		}
	}

	return buf, nil
}

func (TSQueryCodec) DecodeBinary(src []byte) (TSQuery, error) {
	r := NewValueReader("tsquery", src)

	// The smallest record is an operator: a tag and an operator code.
	n := r.ReadCount(2)
	if r.Err() != nil {
		return TSQuery{}, r.Err()
	}
	if n == 0 {
		r.Fail(ErrMalformedTree, "no nodes")
		return TSQuery{}, r.Err()
	}

	stack := make([]TSQueryNode, 0, 8)
	pop := func() TSQueryNode {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return node
	}

	for i := 0; i < n && r.Err() == nil; i++ {
		tag := r.ReadUint8()
		if r.Err() != nil {
			break
		}

		switch tag {
		case tsQueryValTag:
			weight := r.ReadUint8()
			prefix := r.ReadUint8()
			if r.Err() == nil && weight > 0x0F {
				r.Fail(ErrInvalidLexeme, fmt.Sprintf("node %d: invalid weight mask %#x", i, weight))
			}
			text := r.ReadCString()
			if r.Err() != nil {
				break
			}
			stack = append(stack, TSQueryLexeme{Text: text, Weight: weight, Prefix: prefix != 0})

		case tsQueryOperTag:
			oper := r.ReadUint8()
			var distance int16
			if oper == tsOperPhrase {
				distance = r.ReadInt16()
			}
			if r.Err() != nil {
				break
			}

			switch oper {
			case tsOperNot:
				if len(stack) < 1 {
					r.Fail(ErrArityError, fmt.Sprintf("node %d: NOT needs 1 operand, have 0", i))
					break
				}
				stack = append(stack, TSQueryNot{Child: pop()})
			case tsOperAnd, tsOperOr, tsOperPhrase:
				if len(stack) < 2 {
					r.Fail(ErrArityError, fmt.Sprintf("node %d: operator %d needs 2 operands, have %d", i, oper, len(stack)))
					break
				}
				right := pop()
				left := pop()
				switch oper {
				case tsOperAnd:
					stack = append(stack, TSQueryAnd{Left: left, Right: right})
				case tsOperOr:
					stack = append(stack, TSQueryOr{Left: left, Right: right})
				default:
					stack = append(stack, TSQueryPhrase{Left: left, Right: right, Distance: distance})
				}
			default:
				r.Fail(ErrMalformedTree, fmt.Sprintf("node %d: unknown operator %d", i, oper))
			}

		default:
			r.Fail(ErrMalformedTree, fmt.Sprintf("node %d: unknown record type %d", i, tag))
		}
	}

	if r.Err() == nil && len(stack) != 1 {
		r.Fail(ErrMalformedTree, fmt.Sprintf("%d trees remain after %d nodes", len(stack), n))
	}
	if err := r.Finish(); err != nil {
		return TSQuery{}, err
	}
	return TSQuery{Root: stack[0]}, nil
}

// String renders q in PostgreSQL's infix form, e.g. 'fat' & ( 'rat' | 'cat' ). A tree that cannot be encoded renders
// as the empty string.
func (q TSQuery) String() string {
	nodes, err := tsQueryPostorder(q.Root)
	if err != nil {
		return ""
	}

	type part struct {
		text     string
		priority int
		phrase   bool
	}

	wrap := func(p part, needParens bool) string {
		if needParens {
			return "( " + p.text + " )"
		}
		return p.text
	}

	stack := make([]part, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case TSQueryLexeme:
			stack = append(stack, part{text: formatTSQueryLexeme(n), priority: tsPriorityOperand})
		case TSQueryNot:
			child := stack[len(stack)-1]
			stack[len(stack)-1] = part{text: "!" + wrap(child, child.priority < tsPriorityNot), priority: tsPriorityNot}
		default:
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var op string
			var priority int
			var phrase bool
			switch n := n.(type) {
			case TSQueryAnd:
				op, priority = "&", tsPriorityAnd
			case TSQueryOr:
				op, priority = "|", tsPriorityOr
			case TSQueryPhrase:
				op, priority, phrase = formatPhraseOperator(n.Distance), tsPriorityPhrase, true
			}

			text := wrap(left, left.priority < priority) + " " + op + " " + wrap(right, right.priority < priority || (phrase && right.phrase))
			stack = append(stack, part{text: text, priority: priority, phrase: phrase})
		}
	}

	return stack[0].text
}

func formatPhraseOperator(distance int16) string {
	if distance == 1 {
		return "<->"
	}
	return "<" + strconv.Itoa(int(distance)) + ">"
}

func formatTSQueryLexeme(lexeme TSQueryLexeme) string {
	var sb strings.Builder
	writeQuotedLexeme(&sb, lexeme.Text)
	if lexeme.Prefix || lexeme.Weight != 0 {
		sb.WriteByte(':')
		if lexeme.Prefix {
			sb.WriteByte('*')
		}
		if lexeme.Weight&TSQueryWeightA != 0 {
			sb.WriteByte('A')
		}
		if lexeme.Weight&TSQueryWeightB != 0 {
			sb.WriteByte('B')
		}
		if lexeme.Weight&TSQueryWeightC != 0 {
			sb.WriteByte('C')
		}
		if lexeme.Weight&TSQueryWeightD != 0 {
			sb.WriteByte('D')
		}
	}
	return sb.String()
}
