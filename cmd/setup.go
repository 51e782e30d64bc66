package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vikwab/failsift/pkg/advisor"
	"github.com/vikwab/failsift/pkg/config"
)

// pickModel resolves the user's numeric choice against the fetched
// model list. Invalid input falls back to the first model; an empty
// list yields "" so the caller can ask for a manual name instead.
func pickModel(models []string, choice string) string {
	if len(models) == 0 {
		return ""
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(models) {
		return models[0]
	}
	return models[idx-1]
}

func promptLine(scanner *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Run: func(cmd *cobra.Command, args []string) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Welcome to Failsift Setup Wizard")
		fmt.Println("---------------------------------")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		// 1. Report defaults
		fmt.Println("Step 1: Report defaults (press Enter to keep the current value)")
		if dir := promptLine(scanner, fmt.Sprintf("Report directory [%s] > ", cfg.DefaultDirectory)); dir != "" {
			cfg.DefaultDirectory = dir
		}
		if out := promptLine(scanner, fmt.Sprintf("Output file [%s] > ", cfg.OutputFile)); out != "" {
			cfg.OutputFile = out
		}

		// 2. Select Provider
		fmt.Println("\nStep 2: Choose your AI Provider (for 'failsift advise')")
		fmt.Println("1. Gemini (Google)")
		fmt.Println("2. OpenAI")
		fmt.Println("3. Anthropic")
		choice := strings.ToLower(promptLine(scanner, "Enter number or name > "))

		var provider string
		switch choice {
		case "1", "gemini":
			provider = "gemini"
		case "2", "openai":
			provider = "openai"
		case "3", "anthropic":
			provider = "anthropic"
		default:
			fmt.Println("Invalid choice. Aborting.")
			return
		}

		// 3. Enter API Key
		fmt.Printf("\nStep 3: Enter API Key for %s\n", provider)
		apiKey := promptLine(scanner, "> ")
		if apiKey == "" {
			fmt.Println("API Key cannot be empty.")
			return
		}

		// 4. Fetch Models
		fmt.Println("\nStep 4: Validating key and fetching available models...")
		ctx := context.Background()

		// Create temporary provider instance to list models
		// We pass empty model name initially
		tempProvider, err := advisor.NewProvider(ctx, provider, apiKey, "")
		if err != nil {
			fmt.Printf("Error initializing provider: %v\n", err)
			return
		}

		models, err := tempProvider.ListModels(ctx)
		var selectedModel string

		switch {
		case err != nil:
			fmt.Printf("Warning: Could not fetch models from API: %v\n", err)
			fmt.Println("Please enter model name manually (e.g., 'gemini-pro', 'gpt-4'):")
			selectedModel = promptLine(scanner, "> ")
		case len(models) == 0:
			fmt.Println("Provider returned no models.")
			fmt.Println("Please enter model name manually (e.g., 'gemini-pro', 'gpt-4'):")
			selectedModel = promptLine(scanner, "> ")
		default:
			fmt.Printf("Successfully retrieved %d models.\n", len(models))
			for i, m := range models {
				fmt.Printf("%d. %s\n", i+1, m)
			}
			selStr := promptLine(scanner, "Select Model (number) > ")
			if idx, convErr := strconv.Atoi(selStr); convErr != nil || idx < 1 || idx > len(models) {
				fmt.Println("Invalid selection. Using first available model.")
			}
			selectedModel = pickModel(models, selStr)
		}

		// 5. Save Configuration
		fmt.Println("\nStep 5: Saving Configuration...")
		cfg.SelectedProvider = provider
		cfg.SelectedModel = selectedModel
		cfg.SetAPIKey(provider, apiKey)

		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		fmt.Println("---------------------------------")
		fmt.Println("Setup Complete!")
		fmt.Printf("Directory: %s\n", cfg.DefaultDirectory)
		fmt.Printf("Output:    %s\n", cfg.OutputFile)
		fmt.Printf("Provider:  %s\n", provider)
		fmt.Printf("Model:     %s\n", selectedModel)
		fmt.Println("You can now run 'failsift analyze' and 'failsift advise'")
	},
}

func init() {
	configCmd.AddCommand(setupCmd)
}
