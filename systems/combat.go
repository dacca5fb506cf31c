package systems

import (
	"log"
	"math"
	"slices"

	"github.com/automoto/ascension/components"
	cfg "github.com/automoto/ascension/config"
	"github.com/automoto/ascension/shared/gamemath"
	"github.com/automoto/ascension/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	attackers   = donburi.NewQuery(filter.Contains(components.Player, components.MeleeAttack, components.Motion))
	hitboxes    = donburi.NewQuery(filter.Contains(components.Hitbox, components.Motion))
	damaged     = donburi.NewQuery(filter.Contains(components.DamageEvent, components.Health))
	invincibles = donburi.NewQuery(filter.Contains(components.Invincible))
)

// UpdateHitboxes starts melee swings for attacking players and keeps live
// swings in front of their owners. It runs after physics so the contact
// scan sees hitboxes where their owners ended up.
func UpdateHitboxes(ecs *ecs.ECS) {
	w := ecs.World
	elapsed := clock(w).ElapsedMS

	for _, id := range snapshot(w, attackers) {
		e := w.Entry(id)
		player := components.Player.Get(e)
		melee := components.MeleeAttack.Get(e)

		if melee.Cooldown > 0 {
			melee.Cooldown = math.Max(0, melee.Cooldown-elapsed)
		}
		if player.KeyAttack && !player.Dead && melee.Cooldown <= 0 && !alive(w, melee.Hitbox) {
			melee.Hitbox = factory.CreateAttackHitbox(ecs, e).Entity()
			melee.Cooldown = cfg.Combat.AttackCooldown
		}
		player.Attacking = alive(w, melee.Hitbox)
	}

	var expired []donburi.Entity
	for _, id := range snapshot(w, hitboxes) {
		e := w.Entry(id)
		hb := components.Hitbox.Get(e)
		if hb.Owner == donburi.Null {
			continue
		}
		hb.Timer -= elapsed
		if hb.Timer <= 0 || !alive(w, hb.Owner) {
			expired = append(expired, id)
			continue
		}
		factory.PlaceHitbox(components.Motion.Get(e), components.Motion.Get(w.Entry(hb.Owner)))
	}
	for _, id := range expired {
		w.Remove(id)
	}
}

// UpdateDamage reads this step's contacts and turns them into damage:
// melee swings and thrown projectiles hurt enemies, enemies hurt the
// player on touch. Queued damage is applied once per entity.
func UpdateDamage(ecs *ecs.ECS) {
	w := ecs.World
	tickInvincibility(w, clock(w).ElapsedMS)

	if contacts := collisionLog(w); contacts != nil {
		var spent []donburi.Entity
		for _, ev := range contacts.Recent() {
			if !alive(w, ev.Entity) || !alive(w, ev.Other) {
				continue
			}
			a, b := w.Entry(ev.Entity), w.Entry(ev.Other)
			switch {
			case a.HasComponent(components.Hitbox):
				hitboxHit(a, b)
			case a.HasComponent(components.Projectile):
				// A projectile is used up by the first thing it hits.
				if !slices.Contains(spent, ev.Entity) && projectileHit(a, b) {
					spent = append(spent, ev.Entity)
				}
			case a.HasComponent(components.Enemy) && b.HasComponent(components.Player):
				contactHit(a, b)
			}
		}
		for _, id := range spent {
			if w.Valid(id) {
				w.Remove(id)
			}
		}
	}

	applyDamage(w)
}

func alive(w donburi.World, e donburi.Entity) bool {
	return e != donburi.Null && w.Valid(e)
}

func hitboxHit(hbEntry, target *donburi.Entry) {
	hb := components.Hitbox.Get(hbEntry)
	if hb.Owner == donburi.Null || target.Entity() == hb.Owner {
		return
	}
	if !target.HasComponent(components.Enemy) || !target.HasComponent(components.Health) {
		return
	}
	if hb.Hit[target.Entity()] {
		return
	}
	hb.Hit[target.Entity()] = true
	queueDamage(target, hb.Damage, components.Motion.Get(hbEntry).Facing())
}

// projectileHit reports whether the projectile struck something and is
// used up. Landed projectiles, decoys and hearts never hurt.
func projectileHit(p, target *donburi.Entry) bool {
	pd := components.Projectile.Get(p)
	if pd.Landed || pd.Type == components.ProjectileDecoy || pd.Type == components.ProjectileHeart {
		return false
	}
	if !target.HasComponent(components.Health) {
		return false
	}
	if pd.Enemy && !target.HasComponent(components.Player) {
		return false
	}
	if !pd.Enemy && !target.HasComponent(components.Enemy) {
		return false
	}
	if target.HasComponent(components.Player) && components.Player.Get(target).Dead {
		return false
	}

	dir := 0.0
	if p.HasComponent(components.Physics) {
		dir = gamemath.Sign(components.Physics.Get(p).Velocity.X)
	}
	queueDamage(target, cfg.Combat.ProjectileDamage, dir)
	return true
}

func contactHit(enemy, player *donburi.Entry) {
	if components.Player.Get(player).Dead || player.HasComponent(components.Invincible) {
		return
	}
	dir := gamemath.Sign(components.Motion.Get(player).Position.X - components.Motion.Get(enemy).Position.X)
	queueDamage(player, cfg.Combat.ContactDamage, dir)
}

func queueDamage(e *donburi.Entry, amount int, dir float64) {
	if e.HasComponent(components.DamageEvent) {
		d := components.DamageEvent.Get(e)
		d.Amount += amount
		d.KnockbackX = dir * cfg.Combat.Knockback
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount:     amount,
		KnockbackX: dir * cfg.Combat.Knockback,
		KnockbackY: cfg.Combat.KnockbackUp,
	})
}

func applyDamage(w donburi.World) {
	for _, id := range snapshot(w, damaged) {
		e := w.Entry(id)
		d := *components.DamageEvent.Get(e)
		e.RemoveComponent(components.DamageEvent)

		if e.HasComponent(components.Invincible) {
			continue
		}
		health := components.Health.Get(e)
		health.Current -= d.Amount

		if e.HasComponent(components.Player) {
			damagePlayer(e, health, d)
			continue
		}
		if health.Current <= 0 {
			log.Printf("Entity %d defeated", id.Id())
			w.Remove(id)
			continue
		}
		if e.HasComponent(components.Physics) {
			physics := components.Physics.Get(e)
			physics.Velocity = components.Vector{X: d.KnockbackX, Y: d.KnockbackY}
			if e.HasComponent(components.Gravity) {
				physics.TargetVelocity.Y = d.KnockbackY
			}
		}
		donburi.Add(e, components.Invincible, &components.InvincibleData{Timer: cfg.Combat.EnemyInvuln})
	}
}

// damagePlayer knocks the player back and raises the hurt flag; the hurt
// hop itself happens in the player pre-pass once they are grounded.
func damagePlayer(e *donburi.Entry, health *components.HealthData, d components.DamageEventData) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	if health.Current <= 0 {
		health.Current = 0
		player.Dead = true
		physics.Velocity = components.Vector{}
		physics.TargetVelocity = components.Vector{}
		log.Printf("Player %d was defeated", e.Entity().Id())
		return
	}

	player.Hurt = true
	physics.Velocity.X = d.KnockbackX
	donburi.Add(e, components.Invincible, &components.InvincibleData{Timer: cfg.Combat.PlayerInvuln})
}

func tickInvincibility(w donburi.World, elapsed float64) {
	var recovered []donburi.Entity
	for _, id := range snapshot(w, invincibles) {
		inv := components.Invincible.Get(w.Entry(id))
		inv.Timer -= elapsed
		if inv.Timer <= 0 {
			recovered = append(recovered, id)
		}
	}
	for _, id := range recovered {
		w.Entry(id).RemoveComponent(components.Invincible)
	}
}
