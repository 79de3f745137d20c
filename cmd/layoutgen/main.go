// Command layoutgen writes a generated world layout to a JSON file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"stationdrive/internal/physics"
	"stationdrive/internal/world"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "layoutgen:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	defaults := world.DefaultGenOptions()

	fs := pflag.NewFlagSet("layoutgen", pflag.ContinueOnError)
	fs.SetOutput(out)
	seed := fs.String("seed", "stationdrive", "world seed")
	path := fs.StringP("out", "o", "layout.json", "output file")
	trees := fs.Int("trees", defaults.Trees, "number of trees")
	rocks := fs.Int("rocks", defaults.Rocks, "number of rocks")
	rings := fs.Int("rings", defaults.MountainRings, "number of mountain rings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := defaults
	opts.Trees = *trees
	opts.Rocks = *rocks
	opts.MountainRings = *rings

	l := world.Generate(*seed, opts)
	if err := l.SaveLayout(*path); err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s: %d stations, %d trees, %d rocks, %d mountains\n",
		*path,
		l.Stations.Len(),
		l.CountKind(physics.KindTree),
		l.CountKind(physics.KindRock),
		l.CountKind(physics.KindMountain),
	)
	return nil
}
