package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mcvoid/actson"
	"github.com/mcvoid/actson/feeder"
	"github.com/mcvoid/actson/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Build and print a value tree from a JSON document",
	Long: `tree reads a JSON document from a file argument or stdin, builds an
in-memory tree with the parser's event stream, and prints its JSON-like
rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	bf := feeder.NewBufferedFeeder(in)
	p := actson.NewParser(bf, parserOptions()...)

	v, err := tree.Build(p, func() error { return bf.FillBuf() })
	if err != nil {
		log.WithError(err).Error("build failed")
		return err
	}

	fmt.Println(v.String())
	return nil
}
