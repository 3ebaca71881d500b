// Package main checks a content directory (or the embedded content) for
// broken cross references before it is played.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/engine"
)

func main() {
	dir := flag.String("content", "", "directory holding world.yaml, items.yaml and enemies.yaml; empty checks the embedded content")
	flag.Parse()

	var fsys fs.FS = content.FS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	if err := validate(fsys, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "content invalid:\n%v\n", err)
		os.Exit(1)
	}
}

// validate loads the content in fsys, checks it against the handler table and
// writes a summary to w.
func validate(fsys fs.FS, w io.Writer) error {
	c, err := engine.LoadContent(fsys)
	if err != nil {
		return err
	}
	if err := c.Validate(engine.DefaultHandlers()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "ok: %d locations, %d items, %d enemies\n",
		c.World.LocationCount(), len(c.Items.All()), len(c.Enemies.All()))
	return err
}
