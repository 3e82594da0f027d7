package path

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/Faultbox/stockscape/pkg/math"
)

// ErrSyntax is returned for malformed path data.
var ErrSyntax = errors.New("path: syntax error")

// argCount is the number of numbers each SVG command consumes.
var argCount = map[rune]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'Q': 4, 'C': 6, 'Z': 0,
}

// Parse reads SVG path data. Supported commands are M, L, H, V, Q, C
// and Z in absolute and relative form. Repeated coordinates after a
// command repeat it; coordinates after M are treated as L.
func Parse(d string) (Path, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}

	var (
		p     Path
		pen   math.Vec2
		start math.Vec2
		cmd   rune
	)
	for i := 0; i < len(toks); {
		if toks[i].cmd != 0 {
			cmd = toks[i].cmd
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: number without a command", ErrSyntax)
		}

		upper := unicode.ToUpper(cmd)
		rel := cmd != upper
		n := argCount[upper]

		if upper == 'Z' {
			p = p.Close()
			pen = start
			cmd = 0
			continue
		}

		if i+n > len(toks) {
			return nil, fmt.Errorf("%w: %c needs %d numbers", ErrSyntax, cmd, n)
		}
		args := make([]float64, n)
		for j := range args {
			if toks[i+j].cmd != 0 {
				return nil, fmt.Errorf("%w: %c needs %d numbers", ErrSyntax, cmd, n)
			}
			args[j] = toks[i+j].num
		}
		i += n

		pt := func(k int) math.Vec2 {
			v := math.Vec2{X: args[k], Y: args[k+1]}
			if rel {
				v = v.Add(pen)
			}
			return v
		}

		switch upper {
		case 'M':
			pen = pt(0)
			start = pen
			p = p.MoveTo(pen.X, pen.Y)
			// Implicit lineto for following pairs.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pen = pt(0)
			p = p.LineTo(pen.X, pen.Y)
		case 'H':
			x := args[0]
			if rel {
				x += pen.X
			}
			pen.X = x
			p = p.LineTo(pen.X, pen.Y)
		case 'V':
			y := args[0]
			if rel {
				y += pen.Y
			}
			pen.Y = y
			p = p.LineTo(pen.X, pen.Y)
		case 'Q':
			c, end := pt(0), pt(2)
			p = p.QuadTo(c.X, c.Y, end.X, end.Y)
			pen = end
		case 'C':
			c1, c2, end := pt(0), pt(2), pt(4)
			p = p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			pen = end
		}
	}
	return p, nil
}

type token struct {
	cmd rune
	num float64
}

func tokenize(d string) ([]token, error) {
	var toks []token
	rs := []rune(d)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r) || r == ',':
			i++
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			if _, ok := argCount[unicode.ToUpper(r)]; !ok {
				return nil, fmt.Errorf("%w: unsupported command %q", ErrSyntax, r)
			}
			toks = append(toks, token{cmd: r})
			i++
		default:
			j := scanNumber(rs, i)
			if j == i {
				return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, i)
			}
			v, err := strconv.ParseFloat(string(rs[i:j]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, string(rs[i:j]))
			}
			toks = append(toks, token{num: v})
			i = j
		}
	}
	return toks, nil
}

// scanNumber returns the end of the number starting at i.
func scanNumber(rs []rune, i int) int {
	j := i
	if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
		j++
	}
	digits, dot := false, false
scan:
	for ; j < len(rs); j++ {
		switch {
		case unicode.IsDigit(rs[j]):
			digits = true
		case rs[j] == '.' && !dot:
			dot = true
		default:
			break scan
		}
	}
	if !digits {
		return i
	}
	if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
		k := j + 1
		if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
			k++
		}
		if k < len(rs) && unicode.IsDigit(rs[k]) {
			for k < len(rs) && unicode.IsDigit(rs[k]) {
				k++
			}
			j = k
		}
	}
	return j
}
