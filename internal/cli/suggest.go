package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftmsg/draftmsg/internal/classify"
	"github.com/draftmsg/draftmsg/internal/config"
	"github.com/draftmsg/draftmsg/internal/gitctx"
	"github.com/draftmsg/draftmsg/internal/output"
)

var (
	flagFormat      string
	flagOut         string
	flagMessageOnly bool
	flagDiffFile    string
	flagCommit      bool
	flagNoColor     bool
)

func addSuggestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagMessageOnly, "message-only", false, "Print only the suggested message line")
	cmd.Flags().StringVar(&flagDiffFile, "diff-file", "", "Read diff from a file instead of git (- for stdin)")
	cmd.Flags().BoolVar(&flagCommit, "commit", false, "Commit staged changes with the suggested message after confirmation")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable terminal styling")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Analyze staged changes and suggest a commit message",
	RunE:  runSuggest,
}

func init() {
	addSuggestFlags(suggestCmd)
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagNoColor {
		m["no_color"] = "true"
	}
	return m
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if flagCommit && flagDiffFile != "" {
		return fmt.Errorf("--commit cannot be combined with --diff-file")
	}

	var (
		diffText string
		repo     *gitctx.Repo
		repoRoot string
	)

	if flagDiffFile != "" {
		text, err := readDiffFile(flagDiffFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		diffText = text
	} else {
		var err error
		repo, err = gitctx.Open(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitGitError
			return nil
		}
		repoRoot = repo.Root()

		staged, err := repo.HasStagedChanges()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitGitError
			return nil
		}
		if !staged {
			fmt.Fprintln(os.Stderr, "No staged changes found. Stage your changes first (git add).")
			exitCode = ExitNoChanges
			return nil
		}

		diffText, err = repo.StagedDiff()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitGitError
			return nil
		}
	}

	cfg, err := config.Load(repoRoot, buildOverrides())
	if err != nil {
		return err
	}

	table, err := classify.DefaultTable().Extend(cfg.ExtraKeywords())
	if err != nil {
		return err
	}

	analysis := classify.Scan(diffText, table)
	msg := classify.Suggest(analysis)

	if flagMessageOnly {
		if err := writeMessageOnly(msg, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	}

	if err := output.Write(analysis, msg, cfg.Format, flagOut, cfg.NoColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if flagCommit {
		commitWithConfirm(repo, msg)
	}
	return nil
}

func readDiffFile(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading diff: %w", err)
	}
	return string(data), nil
}

func writeMessageOnly(msg classify.Message, outPath string) error {
	if outPath == "" {
		_, err := fmt.Fprintln(os.Stdout, msg.String())
		return err
	}
	return os.WriteFile(outPath, []byte(msg.String()+"\n"), 0o644)
}

func commitWithConfirm(repo *gitctx.Repo, msg classify.Message) {
	fmt.Fprintf(os.Stderr, "\nCommit with this message? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(os.Stderr, "Commit cancelled.")
		return
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Fprintln(os.Stderr, "Commit cancelled.")
		return
	}
	sha, err := repo.CommitStaged(msg.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitGitError
		return
	}
	fmt.Fprintf(os.Stderr, "Committed %s\n", sha[:min(12, len(sha))])
}
