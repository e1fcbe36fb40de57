package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blaster/internal/sim/asset"
	"github.com/vovakirdan/tui-blaster/internal/sim/entity"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Validate and list the asset tables",
	Long: `Loads the built-in sprite, enemy and explosion tables, validates
every template and prints a summary of each.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(_ *cobra.Command, _ []string) error {
	lib, err := asset.Load()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	fmt.Println("Enemies:")
	fmt.Printf("  %-10s %6s %4s %7s %6s %s\n", "Name", "Points", "HP", "Speed", "Frames", "Explosion")
	for _, a := range entity.Archetypes() {
		e, err := lib.Enemy(a.String())
		if err != nil {
			return fmt.Errorf("archetype %s: %w", a, err)
		}
		fmt.Printf("  %-10s %6d %4d %7.2f %6d %s\n",
			e.Name, e.Points, e.HitPoints, e.Speed, len(e.Frames), e.Explosion)
	}

	fmt.Println()
	fmt.Println("Explosions:")
	fmt.Printf("  %-10s %9s %6s %s\n", "Name", "Particles", "Burn", "Speed")
	for _, name := range lib.ExplosionNames() {
		x, err := lib.Explosion(name)
		if err != nil {
			return err
		}
		speed := "per-angle"
		if x.UseSpeed {
			speed = fmt.Sprintf("%.2f", x.Speed)
		}
		fmt.Printf("  %-10s %9d %6d %s\n", x.Name, len(x.Angles), x.CenterDelay, speed)
	}
	return nil
}
