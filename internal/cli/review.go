package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/refract/internal/config"
	"github.com/dshills/refract/internal/flatten"
	"github.com/dshills/refract/internal/gitrepo"
	"github.com/dshills/refract/internal/output"
	"github.com/dshills/refract/internal/providers"
	"github.com/dshills/refract/internal/review"
)

var (
	flagContext  string
	flagProvider string
	flagModel    string
	flagRulesDir string
	flagOut      string
	flagRedact   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review <repo-url@branch>",
	Short: "Review a pull request branch",
	Long: "Clones the given branch, flattens the codebase, diffs it against the base\n" +
		"branch (main, falling back to master), composes the review prompt, and\n" +
		"submits it. The composed prompt and the model response are written as two\n" +
		"timestamped files.",
	Args: cobra.ExactArgs(1),
	Run:  runReviewCmd,
}

func init() {
	reviewCmd.Flags().StringVar(&flagContext, "context", "", "Optional user instructions to guide the review")
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "Model provider (gemini, azure)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model identifier")
	reviewCmd.Flags().StringVar(&flagRulesDir, "rules-dir", "", "Coding rules directory")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Artifact output directory")
	reviewCmd.Flags().BoolVar(&flagRedact, "redact", false, "Redact secrets from diffs before submission")
}

// applyFlags layers CLI flag overrides onto the environment-backed config.
func applyFlags(cfg config.Config) config.Config {
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		switch cfg.Provider {
		case "azure", "openai":
			cfg.AzureModel = flagModel
		default:
			cfg.GeminiModel = flagModel
		}
	}
	if flagRulesDir != "" {
		cfg.RulesDir = flagRulesDir
	}
	if flagOut != "" {
		cfg.OutDir = flagOut
	}
	if flagRedact {
		cfg.RedactSecrets = true
	}
	return cfg
}

func runReviewCmd(cmd *cobra.Command, args []string) {
	ref, err := gitrepo.ParseRepoRef(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitUsageError
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	cfg = applyFlags(cfg)

	fmt.Fprintf(os.Stderr, "Reviewing PR from branch %q\n", ref.Branch)
	fmt.Fprintf(os.Stderr, "Repository: %s\n", ref.URL)

	ctx := context.Background()

	path, cleanup, err := gitrepo.CloneBranch(ctx, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	defer cleanup()

	fmt.Fprintln(os.Stderr, "Flattening codebase...")
	codebase, err := flatten.Codebase(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	fmt.Fprintln(os.Stderr, "Collecting diffs...")
	diffText, base, err := gitrepo.DiffAgainstBase(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	cleanup()

	fmt.Fprintln(os.Stderr, "Loading coding rules...")
	rules, err := review.LoadRules(cfg.RulesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	reviewer, err := providers.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Construction fails on an unknown provider name or a missing
		// credential; only the latter is an auth problem.
		if errors.Is(err, providers.ErrUnknownProvider) {
			exitCode = ExitUsageError
		} else {
			exitCode = ExitAuthError
		}
		return
	}

	fmt.Fprintln(os.Stderr, "Building prompt and submitting for review...")
	res, err := review.Run(ctx, cfg, reviewer, review.RunInputs{
		UserContext:       flagContext,
		CodingRules:       rules,
		FlattenedCodebase: codebase,
		DiffChunks:        gitrepo.SplitDiff(diffText),
		BaseBranch:        base,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	banner := strings.Repeat("=", 80)
	fmt.Fprintf(os.Stderr, "\n%s\n\nRun %s | base %s | ~%d tokens\n\n%s\n\n",
		banner, res.RunID, res.BaseBranch, res.TokenEstimate, banner)

	fmt.Fprintln(os.Stdout, "LLM Response:")
	fmt.Fprintln(os.Stdout, res.Response)

	arts, err := output.WriteArtifacts(cfg.OutDir, time.Now(), res.Prompt, res.Response)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	fmt.Fprintf(os.Stderr, "Wrote %s and %s\n", arts.PromptPath, arts.ResultPath)
}
