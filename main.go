package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bumpytrack "github.com/bumpytrack/bumpytrack/pkg"
)

const longHelp = `Bumps the version declared in a config file (default: ./.bumpytrack.yml) and in every
file listed under file_replaces, then optionally commits the changed files and tags the
commit with the new version prefixed with "v".

Examples:
  bumpytrack minor
  bumpytrack --new-version 2.0.0
  bumpytrack --git-commit --git-tag tiny
  bumpytrack --dry-run major

Positional arguments:
  <part>     One of: major, minor, tiny. Required unless --new-version is given.`

func newRootCmd(out io.Writer) *cobra.Command {
	var opts bumpytrack.Options
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "bumpytrack [flags] <part>",
		Short:         "Bump a semantic version across project files",
		Long:          longHelp,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{string(bumpytrack.PartMajor), string(bumpytrack.PartMinor), string(bumpytrack.PartTiny)},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Part = args[0]
			}
			opts.ConfigPath = v.GetString("config_path")
			opts.GitCommit = triState(cmd.Flags(), "git-commit", "no-git-commit")
			opts.GitTag = triState(cmd.Flags(), "git-tag", "no-git-tag")

			reporter := bumpytrack.NewReporter(cmd.OutOrStdout(), v.GetBool("verbose"))
			meta, err := bumpytrack.Run(cmd.Context(), opts, reporter)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), meta)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetVersionTemplate("bumpytrack CLI version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.CurrentVersion, "current-version", "", "Force current version instead of using the version in the config file")
	flags.StringVar(&opts.NewVersion, "new-version", "", "Force new version instead of incrementing <part>")
	flags.Bool("git-commit", false, "GIT: Commit files with version replacements")
	flags.Bool("no-git-commit", false, "GIT: Do not commit, even if the config file enables it")
	flags.Bool("git-tag", false, "GIT: Tag this reference with the new version")
	flags.Bool("no-git-tag", false, "GIT: Do not tag, even if the config file enables it")
	flags.String("config-path", bumpytrack.DefaultConfigPath, "Path to config file (env BUMPYTRACK_CONFIG_PATH)")
	flags.Bool("verbose", false, "Log every replacement (env BUMPYTRACK_VERBOSE)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Show the replacements without modifying any files or the git repository")
	cmd.MarkFlagsMutuallyExclusive("git-commit", "no-git-commit")
	cmd.MarkFlagsMutuallyExclusive("git-tag", "no-git-tag")

	v.SetEnvPrefix("BUMPYTRACK")
	v.AutomaticEnv()
	_ = v.BindPFlag("config_path", flags.Lookup("config-path"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	return cmd
}

// triState returns nil when neither flag was given, so the config file decides.
func triState(flags *pflag.FlagSet, positive, negative string) *bool {
	if flags.Changed(positive) {
		val, _ := flags.GetBool(positive)
		return &val
	}
	if flags.Changed(negative) {
		val, _ := flags.GetBool(negative)
		val = !val
		return &val
	}
	return nil
}

func printSummary(w io.Writer, meta bumpytrack.Result) {
	if meta.DryRun {
		fmt.Fprintln(w, "Dry run complete — no files were modified.")
	} else {
		fmt.Fprintln(w, "Version bump successful!")
	}
	fmt.Fprintf(w, "Old Version: %s\n", meta.OldVersion)
	fmt.Fprintf(w, "New Version: %s\n", meta.NewVersion)

	if len(meta.ModifiedFiles) > 0 {
		if meta.DryRun {
			fmt.Fprintln(w, "Files that would be updated:")
		} else {
			fmt.Fprintln(w, "Files updated:")
		}
		for _, f := range meta.ModifiedFiles {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if meta.Committed {
		fmt.Fprintln(w, "Committed changes.")
	}
	if meta.Tagged {
		fmt.Fprintf(w, "Tagged %s.\n", bumpytrack.TagName(meta.NewVersion))
	}
}

func execute(args []string, out io.Writer) error {
	cmd := newRootCmd(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stdout, "Error:", err)
		os.Exit(1)
	}
}
