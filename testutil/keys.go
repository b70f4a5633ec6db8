// Package testutil provides shared key-type fixtures covering every shape
// the containers support. Tests, benchmarks and examples all build their
// maps over these types so the same declarations exercise the whole
// storage selection path.
package testutil

import "github.com/comalice/fixedmap/shape"

// Part is a four-variant enumeration key. Its storage is a fixed array of
// four cells addressed by ordinal.
type Part int

const (
	PartA Part = iota
	PartB
	PartC
	PartD
)

// KeyShape declares Part as a four-variant enumeration.
func (Part) KeyShape() shape.Shape { return shape.Enum[Part](4) }

func (p Part) String() string {
	switch p {
	case PartA:
		return "A"
	case PartB:
		return "B"
	case PartC:
		return "C"
	case PartD:
		return "D"
	default:
		return "?"
	}
}

// Flag is a boolean-backed key: the two-variant enumeration with false at
// ordinal 0 and true at ordinal 1.
type Flag bool

// KeyShape declares Flag as the boolean domain.
func (Flag) KeyShape() shape.Shape { return shape.Bool[Flag]() }

// Unit is a key type with a single inhabitant; its storage is one optional
// cell and holds at most one entry.
type Unit struct{}

// KeyShape declares Unit as a single-value key.
func (Unit) KeyShape() shape.Shape { return shape.Singleton(Unit{}) }

// Word is an unbounded text key backed by the hash-table fallback.
type Word string

// KeyShape declares Word as an unbounded, hashed domain.
func (Word) KeyShape() shape.Shape { return shape.Hashed[Word]() }

// SignalKind discriminates Signal's variants, in declaration order.
type SignalKind int

const (
	SignalUp SignalKind = iota
	SignalDown
	SignalStop
)

// Signal is a composite key: Up and Down each carry a Part, Stop carries
// nothing. Its storage is three sub-storages selected by SignalKind.
type Signal struct {
	Kind SignalKind
	Part Part
}

// Up returns the Signal for raising p.
func Up(p Part) Signal { return Signal{Kind: SignalUp, Part: p} }

// Down returns the Signal for lowering p.
func Down(p Part) Signal { return Signal{Kind: SignalDown, Part: p} }

// Stop returns the payload-less stop Signal.
func Stop() Signal { return Signal{Kind: SignalStop} }

// KeyShape declares Signal's variant layout: two Part-carrying variants
// and one singleton variant.
func (Signal) KeyShape() shape.Shape {
	return shape.Composite(
		[]shape.Shape{
			shape.Enum[Part](4),
			shape.Enum[Part](4),
			shape.Singleton(struct{}{}),
		},
		func(key any) (int, any) {
			s := key.(Signal)
			if s.Kind == SignalStop {
				return int(SignalStop), struct{}{}
			}
			return int(s.Kind), s.Part
		},
		func(ordinal int, inner any) any {
			if SignalKind(ordinal) == SignalStop {
				return Stop()
			}
			return Signal{Kind: SignalKind(ordinal), Part: inner.(Part)}
		},
	)
}

func (s Signal) String() string {
	switch s.Kind {
	case SignalUp:
		return "Up(" + s.Part.String() + ")"
	case SignalDown:
		return "Down(" + s.Part.String() + ")"
	default:
		return "Stop"
	}
}
