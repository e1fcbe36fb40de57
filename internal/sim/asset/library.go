package asset

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

//go:embed data/assets.yaml
var defaultAssetsYAML []byte

// Sprite names every asset table must define.
const (
	SpritePlayer     = "player"
	SpritePlayerShot = "player_shot"
	SpriteBullet     = "bullet"
)

// ExplosionPlayer is the explosion used when the player dies or self-destructs.
const ExplosionPlayer = "player"

// Library is a validated set of templates. It is read-only after loading and
// safe to share between simulations.
type Library struct {
	sprites    map[string]core.Frame
	explosions map[string]ExplosionAsset
	enemies    map[string]EnemyAsset
}

type rawExplosion struct {
	Center         []string   `yaml:"center"`
	Shrapnel       [][]string `yaml:"shrapnel"`
	Angles         []float64  `yaml:"angles"`
	ParticleFrames []int      `yaml:"particle_frames"`
	UseSpeed       bool       `yaml:"use_speed"`
	Speed          float64    `yaml:"speed"`
	Speeds         []float64  `yaml:"speeds"`
	Acceleration   float64    `yaml:"acceleration"`
	CenterDelay    int        `yaml:"center_delay"`
}

type rawEnemy struct {
	Frames         [][]string        `yaml:"frames"`
	Offsets        [][2]float64      `yaml:"offsets"`
	Points         int               `yaml:"points"`
	Explosion      string            `yaml:"explosion"`
	Palette        map[string]string `yaml:"palette"`
	FrameInterval  uint64            `yaml:"frame_interval"`
	Speed          float64           `yaml:"speed"`
	HitPoints      int               `yaml:"hit_points"`
	InvisibleFrame *int              `yaml:"invisible_frame"`
	UpFrames       int               `yaml:"up_frames"`
	FireInterval   uint64            `yaml:"fire_interval"`
	FireChance     float64           `yaml:"fire_chance"`
	MaxBullets     int               `yaml:"max_bullets"`
	BulletSpeed    float64           `yaml:"bullet_speed"`
}

type rawLibrary struct {
	Sprites    map[string][]string     `yaml:"sprites"`
	Explosions map[string]rawExplosion `yaml:"explosions"`
	Enemies    map[string]rawEnemy     `yaml:"enemies"`
}

// Load parses and validates the built-in asset tables.
func Load() (*Library, error) {
	return Parse(defaultAssetsYAML)
}

// MustLoad is Load for callers that treat a broken built-in table as fatal.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(err)
	}
	return lib
}

// Parse builds a Library from YAML and validates every template.
func Parse(data []byte) (*Library, error) {
	var raw rawLibrary
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse assets: %w", err)
	}

	lib := &Library{
		sprites:    make(map[string]core.Frame, len(raw.Sprites)),
		explosions: make(map[string]ExplosionAsset, len(raw.Explosions)),
		enemies:    make(map[string]EnemyAsset, len(raw.Enemies)),
	}

	for name, rows := range raw.Sprites {
		f, err := core.ParseFrame(rows)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", name, err)
		}
		lib.sprites[name] = f
	}
	for _, name := range []string{SpritePlayer, SpritePlayerShot, SpriteBullet} {
		if _, ok := lib.sprites[name]; !ok {
			return nil, core.Configf("load assets", "missing sprite %q", name)
		}
	}

	for name, re := range raw.Explosions {
		e, err := re.build(name)
		if err != nil {
			return nil, err
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		lib.explosions[name] = e
	}
	if _, ok := lib.explosions[ExplosionPlayer]; !ok {
		return nil, core.Configf("load assets", "missing explosion %q", ExplosionPlayer)
	}

	for name, re := range raw.Enemies {
		e, err := re.build(name)
		if err != nil {
			return nil, err
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, ok := lib.explosions[e.Explosion]; !ok {
			return nil, core.Configf("enemy "+name, "unknown explosion %q", e.Explosion)
		}
		lib.enemies[name] = e
	}

	return lib, nil
}

func (r rawExplosion) build(name string) (ExplosionAsset, error) {
	center, err := core.ParseFrame(r.Center)
	if err != nil {
		return ExplosionAsset{}, fmt.Errorf("explosion %s center: %w", name, err)
	}
	shrapnel := make([]core.Frame, len(r.Shrapnel))
	for i, rows := range r.Shrapnel {
		f, err := core.ParseFrame(rows)
		if err != nil {
			return ExplosionAsset{}, fmt.Errorf("explosion %s shrapnel %d: %w", name, i, err)
		}
		shrapnel[i] = f
	}
	return ExplosionAsset{
		Name:                 name,
		Center:               center,
		Shrapnel:             shrapnel,
		Angles:               r.Angles,
		ParticleFrameIndexes: r.ParticleFrames,
		UseSpeed:             r.UseSpeed,
		Speed:                r.Speed,
		Speeds:               r.Speeds,
		Acceleration:         r.Acceleration,
		CenterDelay:          r.CenterDelay,
	}, nil
}

func (r rawEnemy) build(name string) (EnemyAsset, error) {
	frames := make([]core.Frame, len(r.Frames))
	for i, rows := range r.Frames {
		f, err := core.ParseFrame(rows)
		if err != nil {
			return EnemyAsset{}, fmt.Errorf("enemy %s frame %d: %w", name, i, err)
		}
		frames[i] = f
	}

	// A missing offset table means every pose is drawn at the location itself.
	offsets := make([]core.GameLocation, len(r.Offsets))
	for i, o := range r.Offsets {
		offsets[i] = core.Loc(o[0], o[1])
	}
	if len(r.Offsets) == 0 {
		offsets = make([]core.GameLocation, len(frames))
	}

	var palette core.Palette
	if len(r.Palette) > 0 {
		palette = make(core.Palette, len(r.Palette))
		for from, to := range r.Palette {
			src, err := core.ParseColorName(from)
			if err != nil {
				return EnemyAsset{}, fmt.Errorf("enemy %s palette: %w", name, err)
			}
			dst, err := core.ParseColorName(to)
			if err != nil {
				return EnemyAsset{}, fmt.Errorf("enemy %s palette: %w", name, err)
			}
			palette[src] = dst
		}
	}

	invisible := -1
	if r.InvisibleFrame != nil {
		invisible = *r.InvisibleFrame
	}
	hp := r.HitPoints
	if hp == 0 {
		hp = 1
	}

	return EnemyAsset{
		Name:           name,
		Frames:         frames,
		Offsets:        offsets,
		Points:         r.Points,
		Explosion:      r.Explosion,
		Palette:        palette,
		FrameInterval:  r.FrameInterval,
		Speed:          r.Speed,
		HitPoints:      hp,
		InvisibleFrame: invisible,
		UpFrames:       r.UpFrames,
		FireInterval:   r.FireInterval,
		FireChance:     r.FireChance,
		MaxBullets:     r.MaxBullets,
		BulletSpeed:    r.BulletSpeed,
	}, nil
}

// Sprite returns a copy of a named sprite.
func (l *Library) Sprite(name string) (core.Frame, error) {
	f, ok := l.sprites[name]
	if !ok {
		return nil, core.Configf("sprite", "unknown sprite %q", name)
	}
	return f.Clone(), nil
}

// Explosion returns a copy of a named explosion template.
func (l *Library) Explosion(name string) (ExplosionAsset, error) {
	e, ok := l.explosions[name]
	if !ok {
		return ExplosionAsset{}, core.Configf("explosion", "unknown explosion %q", name)
	}
	return e.Clone(), nil
}

// Enemy returns a copy of a named enemy template.
func (l *Library) Enemy(name string) (EnemyAsset, error) {
	e, ok := l.enemies[name]
	if !ok {
		return EnemyAsset{}, core.Configf("enemy", "unknown enemy asset %q", name)
	}
	return e.Clone(), nil
}

// EnemyNames lists the enemy templates in sorted order.
func (l *Library) EnemyNames() []string {
	return sortedKeys(l.enemies)
}

// ExplosionNames lists the explosion templates in sorted order.
func (l *Library) ExplosionNames() []string {
	return sortedKeys(l.explosions)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
