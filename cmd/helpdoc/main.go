// Package main is the entry point for the helpdoc CLI: it reads command
// line help text from an argument or a pipe, parses it into a document
// tree, and writes Markdown documentation.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/helpdoc/internal/parser"
	"github.com/meshintel/helpdoc/internal/render"
	"github.com/meshintel/helpdoc/pkg/ast"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the helpdoc CLI.
var rootCmd = &cobra.Command{
	Use:   "helpdoc [helpText]",
	Short: "Generate Markdown documentation from command line help text",
	Long: `helpdoc converts the --help output of command line tools into Markdown.

Pass the help text as a single argument, or pipe it on stdin. The text is
parsed by indentation alone: a usage line, an optional brief paragraph,
and titled sections holding either prose, flag definitions, or
sub-command lists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./helpdoc.yaml or ~/.config/helpdoc/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "target Markdown file (default: stdout)")
	rootCmd.Flags().IntP("skip", "s", 0, "skip the first N lines of the input (license headers)")
	rootCmd.Flags().BoolP("raw", "r", false, "print the parsed tree as YAML before rendering")
	rootCmd.Flags().BoolP("ascii", "a", false, "print the parsed tree as a simple ASCII tree")
	rootCmd.Flags().BoolP("fancy", "f", false, "print the parsed tree as a decorated ASCII tree")

	for _, name := range []string{"output", "skip", "raw", "ascii", "fancy"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("helpdoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "helpdoc"))
		}
	}

	viper.SetDefault("color", true)

	viper.SetEnvPrefix("HELPDOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return cmd.Help()
	}
	if skip := viper.GetInt("skip"); skip > 0 {
		text = skipLines(text, skip)
	}

	doc, err := parser.Parse(text)
	if err != nil {
		printError(cmd.ErrOrStderr(), err.Error())
		return fmt.Errorf("parse: %w", err)
	}

	if viper.GetBool("raw") {
		printAction(cmd.ErrOrStderr(), "Displaying raw document tree.")
		if err := dumpYAML(cmd.OutOrStdout(), doc); err != nil {
			return err
		}
	}
	if viper.GetBool("ascii") {
		printAction(cmd.ErrOrStderr(), "Displaying document tree.")
		fmt.Fprint(cmd.OutOrStdout(), ast.Sprint(doc))
	}
	if viper.GetBool("fancy") {
		printAction(cmd.ErrOrStderr(), "Displaying decorated document tree.")
		fmt.Fprint(cmd.OutOrStdout(), ast.SprintFancy(doc))
	}

	md, err := render.Markdown(doc)
	if err != nil {
		printError(cmd.ErrOrStderr(), err.Error())
		return fmt.Errorf("render: %w", err)
	}

	if out := viper.GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		printAction(cmd.ErrOrStderr(), "Wrote "+out)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), md)
	return nil
}

// readInput returns the help text: the positional argument when present,
// otherwise anything piped on stdin. An attached terminal with no
// argument yields empty input, which shows the command help.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// skipLines drops the first n logical lines of text.
func skipLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}

// dumpYAML writes the document tree as YAML, with node kinds as names.
func dumpYAML(w io.Writer, doc *ast.Node) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling tree: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
