// Package cli implements the xcallback command: build an x-callback-url from
// arguments, fire it at the target application and print the terminal
// response.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/xcallback/callback"
	"github.com/xcallback/callback/inbound"
	"github.com/xcallback/callback/opener"
	"github.com/xcallback/callback/schema"
)

// Run executes the command with the given arguments, writing the response to
// stdout.
func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, out io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}

	logger := zap.NewNop().Sugar()
	if options.Verbose {
		development, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer development.Sync()
		logger = development.Sugar()
	}

	target, err := targetURL(options)
	if err != nil {
		return err
	}

	svc := callback.New(opener.NewCommandOpener(), &callback.Options{
		Source:  options.Source,
		Timeout: time.Duration(options.Timeout) * time.Second,
		Logger:  logger,
	})
	defer svc.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	source := inbound.NewHTTPSource(options.Listen, svc.Dispatcher, logger)
	if err := source.Start(ctx); err != nil {
		return err
	}

	response, err := svc.Client.Execute(ctx, target)
	if err != nil {
		return err
	}
	printResponse(out, response)
	return nil
}

// targetURL builds the outbound URL from CLI options; parameters without a =
// separator are rejected before any URL is built.
func targetURL(options *Options) (*schema.XCallbackURL, error) {
	params, err := parseParameters(options.Args.Parameters)
	if err != nil {
		return nil, err
	}
	target := schema.New(options.Args.Scheme)
	target.SetAction(options.Args.Action)
	target.SetActionParams(params)
	return target, nil
}

func parseParameters(raw []string) ([]schema.Param, error) {
	var ret []schema.Param
	for _, pair := range raw {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, schema.NewMalformedParameter(pair)
		}
		ret = append(ret, schema.Param{Key: key, Value: value})
	}
	return ret, nil
}

// printResponse writes the status followed by each non-empty returned
// parameter as key=value.
func printResponse(out io.Writer, response *schema.Response) {
	fmt.Fprintln(out, response.Status)
	for _, p := range response.ActionParams {
		if p.Value != "" {
			fmt.Fprintf(out, "%v=%v\n", p.Key, p.Value)
		}
	}
}
