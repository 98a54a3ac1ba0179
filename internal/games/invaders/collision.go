package invaders

// HitKind tags the result of a collision scan.
type HitKind int

const (
	NoHit HitKind = iota
	PlayerHit
	ShotHit
)

// Hit is a detected collision. Indices refer to the slices that were scanned;
// Shot is only meaningful for ShotHit.
type Hit struct {
	Kind    HitKind
	Invader int
	Shot    int
}

// detectPlayerHit finds the first alive invader in the cell directly above an
// alive player.
func detectPlayerHit(p *Player, invaders []*Invader) Hit {
	if !p.life.alive() {
		return Hit{Kind: NoHit}
	}
	above, ok := p.pos.Above()
	if !ok {
		return Hit{Kind: NoHit}
	}
	for i, inv := range invaders {
		if inv.life.alive() && inv.pos == above {
			return Hit{Kind: PlayerHit, Invader: i}
		}
	}
	return Hit{Kind: NoHit}
}

// detectShotHits pairs each alive invader with the first alive shot sitting in
// the cell directly above it. A shot is claimed by at most one invader.
func detectShotHits(shots []*Shot, invaders []*Invader) []Hit {
	var hits []Hit
	claimed := make([]bool, len(shots))

	for i, inv := range invaders {
		if !inv.life.alive() {
			continue
		}
		above, ok := inv.pos.Above()
		if !ok {
			continue
		}
		for j, s := range shots {
			if claimed[j] || !s.life.alive() {
				continue
			}
			if s.pos == above {
				claimed[j] = true
				hits = append(hits, Hit{Kind: ShotHit, Invader: i, Shot: j})
				break
			}
		}
	}
	return hits
}
