// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonp

import (
	"math"
	"math/big"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/mds/value"
	"go4.org/mem"
)

// A decimal is a signed run of decimal digits, as written in the input.
type decimal struct {
	neg    bool
	digits mem.RO // ASCII digits, at least one
}

var sign = jcomb.Optional(jcomb.Either(jcomb.Lit("-"), jcomb.Lit("+")))

// integer parses an optional sign followed by one or more digits.
func integer(p *jcomb.Parser) (decimal, error) {
	s, err := sign(p)
	if err != nil {
		return decimal{}, err
	}
	return signed(p, s.Present() && s.Get() == "-")
}

// signed parses one or more digits, with the given sign.
func signed(p *jcomb.Parser, neg bool) (decimal, error) {
	run := p.TakeWhile(isDigit)
	if run.Len() == 0 {
		return decimal{}, p.Expect("digit")
	}
	return decimal{neg: neg, digits: run}, nil
}

// number parses a number with an integer part, an optional fraction, and an
// optional exponent. Once a "." or "e" is seen the part it introduces is
// required.
func (g *Grammar) number(p *jcomb.Parser) (Value, error) {
	ip, err := integer(p)
	if err != nil {
		return nil, err
	}

	var frac, exp value.Maybe[decimal]
	if c, ok := p.Peek(); ok && c == '.' {
		if _, err := p.String("."); err != nil {
			return nil, err
		}
		var d decimal
		if g.exact {
			d, err = signed(p, false)
		} else {
			d, err = integer(p)
		}
		if err != nil {
			return nil, err
		}
		frac = value.Just(d)
	}
	if c, ok := p.Peek(); ok && (c == 'e' || c == 'E') {
		if _, err := p.Take(1); err != nil {
			return nil, err
		}
		e, err := integer(p)
		if err != nil {
			return nil, err
		}
		exp = value.Just(e)
	}

	if !frac.Present() && !exp.Present() {
		if v, ok := ip.int64(); ok {
			return Int(v), nil
		}
		return Float(ip.float64()), nil
	}
	if g.exact {
		return Float(assembleExact(ip, frac, exp)), nil
	}
	return Float(assemble(ip, frac, exp)), nil
}

// assemble combines the parts of a number. The fraction D is scaled by the
// length of the decimal representation of its integer value, so leading zeros
// written in the input do not count: "1.05" assembles to 1.5. The fraction is
// added to the signed integer part, so "-1.5" assembles to -0.5.
func assemble(ip decimal, frac, exp value.Maybe[decimal]) float64 {
	f := ip.float64()
	if frac.Present() {
		d := frac.Get()
		f += d.float64() / pow10(int64(d.textLen()))
	}
	if exp.Present() {
		f *= pow10(exp.Get().clamp())
	}
	return f
}

// assembleExact combines the parts of a number, scaling the fraction by the
// number of digits written and applying it in the direction of the sign of
// the integer part.
func assembleExact(ip decimal, frac, exp value.Maybe[decimal]) float64 {
	f := decimal{digits: ip.digits}.float64()
	if frac.Present() {
		d := frac.Get()
		f += d.float64() / pow10(int64(d.digits.Len()))
	}
	if ip.neg {
		f = -f
	}
	if exp.Present() {
		f *= pow10(exp.Get().clamp())
	}
	return f
}

// int64 returns the value of d, or reports false if it is out of range.
func (d decimal) int64() (int64, bool) {
	var v uint64
	for i := 0; i < d.digits.Len(); i++ {
		c := uint64(d.digits.At(i) - '0')
		if v > (math.MaxUint64-c)/10 {
			return 0, false
		}
		v = v*10 + c
	}
	if d.neg {
		if v > 1<<63 {
			return 0, false
		}
		return -int64(v), true
	} else if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// float64 returns the float64 nearest to the value of d.
func (d decimal) float64() float64 {
	if v, ok := d.int64(); ok {
		return float64(v)
	}
	z := new(big.Int)
	ten := big.NewInt(10)
	var t big.Int
	for i := 0; i < d.digits.Len(); i++ {
		z.Mul(z, ten)
		z.Add(z, t.SetInt64(int64(d.digits.At(i)-'0')))
	}
	if d.neg {
		z.Neg(z)
	}
	f, _ := new(big.Float).SetInt(z).Float64()
	return f
}

// clamp returns the value of d, saturated to the range of int64.
func (d decimal) clamp() int64 {
	if v, ok := d.int64(); ok {
		return v
	} else if d.neg {
		return math.MinInt64
	}
	return math.MaxInt64
}

// textLen returns the length of the decimal representation of the value of
// d, without leading zeros and with a "-" if the value is negative.
func (d decimal) textLen() int {
	n := d.digits.Len()
	i := 0
	for i < n-1 && d.digits.At(i) == '0' {
		i++
	}
	size := n - i
	if d.neg && (size > 1 || d.digits.At(n-1) != '0') {
		size++
	}
	return size
}

// pow10 returns the float64 nearest to 10^n.
func pow10(n int64) float64 {
	switch {
	case n >= 0 && n <= 22:
		return math.Pow10(int(n)) // exact
	case n < 0 && n >= -22:
		return 1 / math.Pow10(int(-n))
	case n > 400:
		return math.Inf(1)
	case n < -400:
		return 0
	}
	x := new(big.Int).Exp(big.NewInt(10), big.NewInt(max(n, -n)), nil)
	f := new(big.Float).SetInt(x)
	if n < 0 {
		f = new(big.Float).SetPrec(53).Quo(big.NewFloat(1), f)
	}
	v, _ := f.Float64()
	return v
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
