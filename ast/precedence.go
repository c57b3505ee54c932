package ast

// Precedence orders the binding power of infix operators from loosest to
// tightest. The parser's expression loop calls into the next tier up
// whenever it descends past an operator at the current tier.
type Precedence int

const (
	PrecedenceExpression Precedence = iota
	PrecedenceAssignment
	PrecedenceLogicalOr
	PrecedenceLogicalAnd
	PrecedenceBitwiseOr
	PrecedenceBitwiseXor
	PrecedenceBitwiseAnd
	PrecedenceEquality
	PrecedenceRelational
	PrecedenceShift
	PrecedenceAdd
	PrecedenceMultiply
	PrecedenceExponential
	PrecedenceMember
)

// IsRightAssociative reports whether operators at this tier group
// right-to-left. Assignment (`x = y = z` means `x = (y = z)`) and Member
// (`a.b.c` means `a.(b.c)` for the purposes of reference resolution, even
// though the conventional reading is left-to-right) are the two
// right-associative tiers.
func (p Precedence) IsRightAssociative() bool {
	return p == PrecedenceAssignment || p == PrecedenceMember
}

// IsLeftAssociative reports whether operators at this tier group
// left-to-right. Every tier other than Assignment and Member is
// left-associative, including Exponential: `a ** b ** c` parses as
// `(a ** b) ** c`.
func (p Precedence) IsLeftAssociative() bool {
	switch p {
	case PrecedenceExpression:
		return false
	default:
		return !p.IsRightAssociative()
	}
}

// BinaryOperatorPrecedence maps a binary operator kind to its tier.
func BinaryOperatorPrecedence(kind BinaryOperatorKind) Precedence {
	switch kind {
	case BinAssignment:
		return PrecedenceAssignment
	case BinLogicalOr:
		return PrecedenceLogicalOr
	case BinLogicalAnd:
		return PrecedenceLogicalAnd
	case BinBitwiseOr:
		return PrecedenceBitwiseOr
	case BinBitwiseXor:
		return PrecedenceBitwiseXor
	case BinBitwiseAnd:
		return PrecedenceBitwiseAnd
	case BinEquality, BinNonEquality:
		return PrecedenceEquality
	case BinLessThanEqual, BinLessThan, BinGreaterThanEqual, BinGreaterThan:
		return PrecedenceRelational
	case BinShiftLeft, BinShiftRight:
		return PrecedenceShift
	case BinPlus, BinMinus:
		return PrecedenceAdd
	case BinMultiply, BinDivision, BinFloorDivision, BinModulo:
		return PrecedenceMultiply
	case BinExponential:
		return PrecedenceExponential
	default:
		return PrecedenceExpression
	}
}
