package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcvoid/actson"
	"github.com/mcvoid/actson/feeder"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the event stream for a JSON document",
	Long: `parse reads a JSON document from a file argument or stdin and prints
every event the parser emits, one per line, along with the scalar value for
events that carry one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func parserOptions() []actson.Option {
	var opts []actson.Option
	if viper.GetBool("streaming") {
		opts = append(opts, actson.WithStreaming(true))
	}
	if d := viper.GetInt("max-depth"); d > 0 {
		opts = append(opts, actson.WithMaxDepth(d))
	}
	return opts
}

func runParse(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	runID := uuid.NewString()
	logger := log.WithField("run_id", runID)

	bf := feeder.NewBufferedFeeder(in)
	p := actson.NewParser(bf, parserOptions()...)

	for {
		ev, err := p.NextEvent()
		if err != nil {
			logger.WithError(err).Error("parse failed")
			return err
		}

		switch ev {
		case actson.NeedMoreInput:
			if err := bf.FillBuf(); err != nil {
				logger.WithError(err).Error("refill failed")
				return err
			}
			continue
		case actson.FieldName, actson.ValueString:
			s, _ := p.CurrentString()
			fmt.Printf("%s %q\n", ev, s)
		case actson.ValueInt:
			n, _ := p.CurrentInt64()
			fmt.Printf("%s %d\n", ev, n)
		case actson.ValueFloat:
			f, _ := p.CurrentFloat()
			fmt.Printf("%s %v\n", ev, f)
		case actson.Eof:
			fmt.Println(ev)
			logger.WithField("bytes", p.ParsedBytes()).Debug("parse complete")
			return nil
		default:
			fmt.Println(ev)
		}
	}
}
