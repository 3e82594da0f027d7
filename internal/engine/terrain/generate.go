package terrain

import (
	"github.com/Faultbox/stockscape/internal/engine/path"
	"github.com/Faultbox/stockscape/internal/series"
)

// PathFromSeries turns a series into a closed slab outline. Entry i is
// placed at x = i*ScaleX with higher values drawn higher (smaller y);
// the outline then drops to BaseY+Depth on both ends and closes. A
// series of n entries yields n+3 commands. When every value is equal
// the top edge is flat at BaseY.
func PathFromSeries(s series.Series, cfg Config) (path.Path, error) {
	p, _, err := outline(s, cfg)
	return p, err
}

// scaled describes how a series was mapped onto the outline.
type scaled struct {
	lo, hi float64
}

func outline(s series.Series, cfg Config) (path.Path, scaled, error) {
	lo, hi, err := s.MinMax()
	if err != nil {
		return nil, scaled{}, err
	}
	span := hi - lo

	p := make(path.Path, 0, len(s)+3)
	for i, e := range s {
		x := float64(i) * cfg.ScaleX
		y := cfg.BaseY
		if span != 0 {
			y -= (e.Value - lo) / span * cfg.HeightScale
		}
		if i == 0 {
			p = p.MoveTo(x, y)
		} else {
			p = p.LineTo(x, y)
		}
	}

	lastX := float64(len(s)-1) * cfg.ScaleX
	bottom := cfg.BaseY + cfg.Depth
	p = p.LineTo(lastX, bottom)
	p = p.LineTo(0, bottom)
	return p.Close(), scaled{lo: lo, hi: hi}, nil
}
