// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[int]string, 16)}
	},
}

type typePrinter struct {
	idNames   map[int]string
	nameCount int
	sb        strings.Builder
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.nameCount = 0
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) varName(tv *Var) string {
	if name, ok := p.idNames[tv.Id()]; ok {
		return name
	}
	var name string
	if tv.Name() != "" {
		name = "'" + tv.Name()
	} else {
		name = nextVarName(p.nameCount)
		p.nameCount++
	}
	p.idNames[tv.Id()] = name
	return name
}

func nextVarName(i int) string {
	if i >= 26 {
		return "'" + string(byte(97+i%26)) + strconv.Itoa(i/26)
	}
	return "'" + string(byte(97+i%26))
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	p.typeString(false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// VarString returns a string representation of a type-variable, using its
// display name when one is set.
func VarString(tv *Var) string {
	if tv.Name() != "" {
		return "'" + tv.Name()
	}
	return "'_" + strconv.Itoa(tv.Id())
}

// SignatureString returns a string representation of a Signature, including
// its explicit quantifier list and constraints when present.
func SignatureString(s *Signature) string {
	p := newTypePrinter()
	if s.Quantifiers != nil {
		p.sb.WriteString("forall")
		for _, tv := range s.Quantifiers {
			p.sb.WriteByte(' ')
			p.sb.WriteString(p.varName(tv))
		}
		p.sb.WriteString(". ")
	}
	if len(s.Constraints) > 0 {
		if len(s.Constraints) > 1 {
			p.sb.WriteByte('(')
		}
		for i, c := range s.Constraints {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(c.Capability.Name)
			for _, arg := range c.Args {
				p.sb.WriteByte(' ')
				p.typeString(true, arg)
			}
		}
		if len(s.Constraints) > 1 {
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" => ")
	}
	p.typeString(false, s.Body)
	out := p.sb.String()
	p.Release()
	return out
}

func (p *typePrinter) typeString(inner bool, t Type) {
	switch t := RealType(t).(type) {
	case *Var:
		p.sb.WriteString(p.varName(t))

	case *Const:
		p.sb.WriteString(t.Name)

	case *App:
		p.sb.WriteString(t.Const)
		p.argList(t.Args)

	case *FuncApp:
		p.sb.WriteString(t.Func)
		p.argList(t.Args)

	case *Arrow:
		if inner {
			p.sb.WriteByte('(')
		}
		if len(t.Args) == 1 {
			p.typeString(true, t.Args[0])
		} else {
			p.sb.WriteByte('(')
			for i, arg := range t.Args {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.typeString(false, arg)
			}
			p.sb.WriteByte(')')
		}
		p.sb.WriteString(" -> ")
		p.typeString(false, t.Return)
		if inner {
			p.sb.WriteByte(')')
		}
	}
}

func (p *typePrinter) argList(args []Type) {
	if len(args) == 0 {
		return
	}
	p.sb.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.typeString(false, arg)
	}
	p.sb.WriteByte(']')
}
