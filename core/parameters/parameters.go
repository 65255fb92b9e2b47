/*
Package parameters holds the registers configuring the math layout engine.

Registers may be set in nested groups, mirroring TeX's grouping: values
pushed inside a group are forgotten when the group ends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"
	"math"
)

// TypesettingParameter is the key of a register.
type TypesettingParameter int

const (
	none TypesettingParameter = iota
	P_MAXNESTING  // recursion guard for nested groups
	P_BASESIZE    // base size index, 1…11
	P_MAXSIZE     // cap for explicit glue, in em
	P_DISPLAYMODE // display style vs. text style
	P_CACHESIZE   // capacity of render caches
	P_PTSIZE      // size of the base font in points
	P_STOPPER
)

var parameterNames = [...]string{
	"none", "P_MAXNESTING", "P_BASESIZE", "P_MAXSIZE", "P_DISPLAYMODE",
	"P_CACHESIZE", "P_PTSIZE",
}

func (p TypesettingParameter) String() string {
	if p < 0 || p >= P_STOPPER {
		return fmt.Sprintf("TypesettingParameter(%d)", int(p))
	}
	return parameterNames[p]
}

// ParameterGroup holds the values set within a group.
type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// TypesettingRegisters is a set of registers, organized in groups.
type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewTypesettingRegisters creates registers holding default values.
func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_MAXNESTING] = 128      // int
	p[P_BASESIZE] = 6          // int, size index with multiplier 1.0
	p[P_MAXSIZE] = math.Inf(1) // float64, em
	p[P_DISPLAYMODE] = false   // bool
	p[P_CACHESIZE] = 256       // int, number of entries
	p[P_PTSIZE] = 10.0         // float64, TeX points
}

// Begingroup opens a new group.
func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current group and drops all values set within it.
func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a register value in the current group.
func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

// Get returns the value of a register, searching from the innermost group
// outwards.
func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// N returns an integer register.
func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

// F returns a floating point register.
func (regs *TypesettingRegisters) F(key TypesettingParameter) float64 {
	return regs.Get(key).(float64)
}

// B returns a boolean register.
func (regs *TypesettingRegisters) B(key TypesettingParameter) bool {
	return regs.Get(key).(bool)
}
