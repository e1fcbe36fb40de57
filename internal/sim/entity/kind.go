// Package entity composes movement and animation strategies into the objects
// that live in a simulation: enemies and the player.
package entity

// Kind is the discriminant of every simulation object. Code that needs to tell
// objects apart switches on Kind instead of probing types.
type Kind int

const (
	KindEnemy Kind = iota
	KindPlayer
	KindShrapnel
	KindBullet
	KindPlayerShot
	KindExplosionCenter
)

func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	case KindShrapnel:
		return "shrapnel"
	case KindBullet:
		return "bullet"
	case KindPlayerShot:
		return "player_shot"
	case KindExplosionCenter:
		return "explosion_center"
	default:
		return "unknown"
	}
}
