package levels

import (
	"math"
	"sort"

	"github.com/GlebRadaev/rebox/internal/domain"
)

// Calculator maps lifetime points to reward levels. It is immutable and safe
// for concurrent use.
type Calculator struct {
	version int
	levels  []domain.Level
}

func New(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	levels := make([]domain.Level, len(cfg.Levels))
	for i, l := range cfg.Levels {
		l.Benefits = append([]string(nil), l.Benefits...)
		levels[i] = l
	}
	return &Calculator{version: cfg.Version, levels: levels}, nil
}

// Load builds a Calculator from a YAML file, or the embedded default table.
func Load(path string) (*Calculator, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func (c *Calculator) Version() int {
	return c.version
}

func (c *Calculator) Levels() []domain.Level {
	out := make([]domain.Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// index returns the position of the highest level whose MinPoints <= lifetime,
// or 0 when lifetime is below every threshold.
func (c *Calculator) index(lifetime int64) int {
	i := sort.Search(len(c.levels), func(i int) bool {
		return c.levels[i].MinPoints > lifetime
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

func (c *Calculator) LevelFor(lifetime int64) domain.Level {
	return c.levels[c.index(lifetime)]
}

// NextLevelFor returns nil at the top level.
func (c *Calculator) NextLevelFor(lifetime int64) *domain.Level {
	i := c.index(lifetime) + 1
	if i >= len(c.levels) {
		return nil
	}
	next := c.levels[i]
	return &next
}

func (c *Calculator) ProgressToNext(lifetime int64) float64 {
	next := c.NextLevelFor(lifetime)
	if next == nil {
		return 1.0
	}
	cur := c.LevelFor(lifetime)
	p := float64(lifetime-cur.MinPoints) / float64(next.MinPoints-cur.MinPoints)
	return math.Min(math.Max(p, 0), 1)
}

func (c *Calculator) PointsToNext(lifetime int64) int64 {
	next := c.NextLevelFor(lifetime)
	if next == nil {
		return 0
	}
	return next.MinPoints - lifetime
}

// ApplyMultiplier scales base by the multiplier of the level held at lifetime,
// rounding down. A positive base never yields less than one point; results
// saturate at math.MaxInt64.
func (c *Calculator) ApplyMultiplier(lifetime, base int64) int64 {
	if base <= 0 {
		return base
	}
	scaled := math.Floor(float64(base)*c.LevelFor(lifetime).Multiplier + 1e-9)
	if scaled >= math.MaxInt64 {
		return math.MaxInt64
	}
	points := int64(scaled)
	if points < 1 {
		return 1
	}
	return points
}
