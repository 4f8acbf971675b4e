// cmd/agent/commands.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"weather-news-agent/internal/agent"
	"weather-news-agent/internal/demo"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// exampleUtterances is the canned walkthrough run by `agent examples`.
var exampleUtterances = []string{
	"Hello there!",
	"What can you do?",
	"What's the weather in Paris?",
	"Get me news about technology",
	"What time is it?",
	"Calculate 15 * 8 + 4",
	"Tell me a joke",
}

var separator = strings.Repeat("-", 50)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "agent",
		Short: "Keyword-driven assistant for weather, news, time and arithmetic",
		Long: `agent maps a free-text request to one of a handful of intents and answers it.
Weather and news come from OpenWeatherMap and NewsAPI; set OPENWEATHER_API_KEY
and NEWS_API_KEY (or apis.*.api_key in config.yaml) to enable them.

Without a subcommand the canned examples are run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				return runExamples(cmd.Context(), cmd.OutOrStdout(), a.agent)
			})
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a config yaml (default: ./configs/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /health and /metrics on this address")

	root.AddCommand(newExamplesCmd(opts))
	root.AddCommand(newAskCmd(opts))
	root.AddCommand(newChatCmd(opts))
	root.AddCommand(newDemoCmd(opts))
	return root
}

func withApp(opts *rootOptions, fn func(a *app) error) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the canned example conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				return runExamples(cmd.Context(), cmd.OutOrStdout(), a.agent)
			})
		},
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text...>",
		Short: "Answer a single request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				printTurn(cmd.OutOrStdout(), a.agent.RespondTurn(cmd.Context(), strings.Join(args, " ")))
				return nil
			})
		},
	}
}

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Answer requests read line by line from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.agent)
			})
		},
	}
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the simulated weather intelligence walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			demo.New(demo.Options{
				Out:  cmd.OutOrStdout(),
				Rand: rand.New(rand.NewPCG(seed, seed>>1)),
				Unit: cfg.Demo.Delay(),
			}).Run()
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func runExamples(ctx context.Context, out io.Writer, a *agent.Agent) error {
	fmt.Fprintln(out, "=== Simple AI Agent Demo ===")
	fmt.Fprintln(out, "Note: You'll need to add your API keys to make weather and news work!")
	fmt.Fprintln(out)

	for _, utterance := range exampleUtterances {
		if err := ctx.Err(); err != nil {
			return err
		}
		printTurn(out, a.RespondTurn(ctx, utterance))
		fmt.Fprintln(out, separator)
	}
	return nil
}

func runChat(ctx context.Context, in io.Reader, out io.Writer, a *agent.Agent) error {
	prompt := color.New(color.FgCyan, color.Bold)
	scanner := bufio.NewScanner(in)

	for {
		prompt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		printTurn(out, a.RespondTurn(ctx, line))
		fmt.Fprintln(out, separator)
	}
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}

func printTurn(out io.Writer, turn agent.Turn) {
	fmt.Fprintf(out, "User: %s\n", turn.Utterance)
	fmt.Fprintf(out, "Agent thinking: %s\n", turn.Classification)
	fmt.Fprintf(out, "Agent: %s\n", turn.Response)
}
