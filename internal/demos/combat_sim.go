package demos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/inferenco/cedra-randomness-demos/internal/bestiary"
	"github.com/inferenco/cedra-randomness-demos/internal/domain/combat"
	"github.com/inferenco/cedra-randomness-demos/internal/render"
)

// Player attack profile and starting health
const (
	PlayerHP         = 100
	PlayerMinDamage  = 1
	PlayerMaxDamage  = 20
	PlayerCritChance = 10
)

const combatBeat = 500 * time.Millisecond

// CombatSim runs a turn-based fight until someone falls, the player runs or
// input ends.
func (r *Runner) CombatSim(ctx context.Context) error {
	render.ClearScreen(r.out)
	r.println(render.CombatTitle.Sprint("⚔️  INFERENCO RANDOMNESS: COMBAT DEMO  ⚔️"))

	foe := r.bestiary.Enemy(bestiary.DefaultMonsterKey)
	player := combat.NewCombatant("You", PlayerHP)
	enemy := combat.NewCombatant(foe.Name, foe.HitPoints)

	r.printf("You encounter a %s! HP: %d\n", enemy.Name, enemy.HP)

	for player.Alive() && enemy.Alive() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.printf("\nYour HP: %d | Enemy HP: %d\n", player.HP, enemy.HP)
		r.printf("[A]ttack or [R]un? ")
		line, ok := r.readLine()
		if !ok {
			r.println("\nNon-interactive mode. Exiting combat.")
			return nil
		}

		switch strings.ToUpper(line) {
		case "R":
			r.println("You ran away!")
			return nil
		case "A":
		default:
			continue
		}

		r.println("Attacking...")
		if err := r.animator.Pause(ctx, combatBeat); err != nil {
			return err
		}

		res := r.randomness.ResolveAttack(ctx, PlayerMinDamage, PlayerMaxDamage, PlayerCritChance)
		hit := res.Value

		msg := fmt.Sprintf("You hit for %d damage!", hit.Damage)
		if hit.IsCritical {
			msg += " " + render.Warning.Sprint("CRITICAL HIT!")
		}
		r.println(msg)
		enemy.TakeDamage(hit.Damage)

		if !enemy.Alive() {
			r.printf("\n%s\n", render.Success.Sprintf("VICTORY! The %s is defeated.", enemy.Name))
			r.announce(ctx, fmt.Sprintf("⚔️ Victory over the %s with %d HP left", enemy.Name, player.HP))
			return nil
		}

		r.println("Enemy attacks!")
		damage := combat.EnemyAttack(r.roller)
		player.TakeDamage(damage)
		r.printf("It hits you for %d damage.\n", damage)
		if err := r.animator.Pause(ctx, combatBeat); err != nil {
			return err
		}
	}

	r.printf("\n%s\n", render.Failure.Sprint("DEFEAT! You have fallen."))
	r.announce(ctx, fmt.Sprintf("⚔️ Defeated by the %s", enemy.Name))
	return nil
}
