package rnode

import (
	"strings"
)

// Class is a class marker of a render node.
type Class string

// Atom classes
const (
	MOrd   Class = "mord"
	MOp    Class = "mop"
	MBin   Class = "mbin"
	MRel   Class = "mrel"
	MOpen  Class = "mopen"
	MClose Class = "mclose"
	MPunct Class = "mpunct"
	MInner Class = "minner"
)

// Markers and structural classes
const (
	MSpace        Class = "mspace"
	MTight        Class = "mtight"
	NoBreak       Class = "nobreak"
	AllowBreak    Class = "allowbreak"
	Newline       Class = "newline"
	Base          Class = "base"
	Strut         Class = "strut"
	Overlay       Class = "overlay"
	Sizing        Class = "sizing"
	TextClass     Class = "text"
	NullDelimiter Class = "nulldelimiter"
	Rule          Class = "rule"
	Accent        Class = "accent"
	AccentBody    Class = "accent-body"
	MSupSub       Class = "msupsub"
	VList         Class = "vlist"
	OverlineLine  Class = "overline-line"
	Overline      Class = "overline"
	OpSymbol      Class = "op-symbol"
	SmallOp       Class = "small-op"
	LargeOp       Class = "large-op"
	OpLimits      Class = "op-limits"
)

// Font classes
const (
	MathDefault Class = "mathdefault"
	MathIt      Class = "mathit"
	MathBf      Class = "mathbf"
	MathCal     Class = "mathcal"
	AMSRm       Class = "amsrm"
	BoldSymbol  Class = "boldsymbol"
)

// IsAtomClass is true for the atom classes taking part in inter-atom spacing.
func (c Class) IsAtomClass() bool {
	switch c {
	case MOrd, MOp, MBin, MRel, MOpen, MClose, MPunct, MInner:
		return true
	}
	return false
}

// ClassSet is a set of classes. It keeps the order classes have been
// added in, but equality does not depend on it.
type ClassSet []Class

// NewClassSet creates a class set from classes, dropping duplicates and
// empty classes.
func NewClassSet(classes ...Class) ClassSet {
	cs := make(ClassSet, 0, len(classes))
	cs.Add(classes...)
	return cs
}

// Has is true if c is in the set.
func (cs ClassSet) Has(c Class) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// Add puts classes into the set. Empty classes are ignored.
func (cs *ClassSet) Add(classes ...Class) {
	for _, c := range classes {
		if c != "" && !cs.Has(c) {
			*cs = append(*cs, c)
		}
	}
}

// Remove drops a class from the set.
func (cs *ClassSet) Remove(c Class) {
	for i, x := range *cs {
		if x == c {
			*cs = append((*cs)[:i], (*cs)[i+1:]...)
			return
		}
	}
}

// Replace exchanges class old for class repl, keeping its position.
// If old is not in the set, the set is unchanged.
func (cs ClassSet) Replace(old, repl Class) {
	for i, x := range cs {
		if x == old {
			cs[i] = repl
			return
		}
	}
}

// Equal compares two class sets, ignoring order.
func (cs ClassSet) Equal(other ClassSet) bool {
	if len(cs) != len(other) {
		return false
	}
	for _, c := range cs {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of the set.
func (cs ClassSet) Copy() ClassSet {
	c := make(ClassSet, len(cs))
	copy(c, cs)
	return c
}

// AtomClass returns the first atom class of the set, if any.
func (cs ClassSet) AtomClass() (Class, bool) {
	for _, c := range cs {
		if c.IsAtomClass() {
			return c, true
		}
	}
	return "", false
}

func (cs ClassSet) String() string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = string(c)
	}
	return strings.Join(s, " ")
}
