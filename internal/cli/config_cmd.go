package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/refract/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective environment-backed configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}

		fmt.Fprintf(os.Stdout, "provider:            %s\n", cfg.Provider)
		fmt.Fprintf(os.Stdout, "gemini_model:        %s\n", cfg.GeminiModel)
		fmt.Fprintf(os.Stdout, "gemini_api_key:      %s\n", maskSecret(cfg.GeminiAPIKey))
		fmt.Fprintf(os.Stdout, "azure_endpoint:      %s\n", orUnset(cfg.AzureEndpoint))
		fmt.Fprintf(os.Stdout, "azure_model:         %s\n", cfg.AzureModel)
		fmt.Fprintf(os.Stdout, "azure_api_key:       %s\n", maskSecret(cfg.AzureAPIKey))
		fmt.Fprintf(os.Stdout, "max_context_tokens:  %d\n", cfg.MaxContextTokens)
		fmt.Fprintf(os.Stdout, "rules_dir:           %s\n", cfg.RulesDir)
		fmt.Fprintf(os.Stdout, "out_dir:             %s\n", cfg.OutDir)
		fmt.Fprintf(os.Stdout, "redact:              %t\n", cfg.RedactSecrets)
	},
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
