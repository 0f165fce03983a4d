package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaultscope/asset-onboarding/internal/apiclient"
	"github.com/vaultscope/asset-onboarding/internal/tui"
)

func main() {
	serverURL := flag.String("server", envOrDefault("ONBOARDING_API_URL", "http://localhost:8080"), "onboarding service base URL")
	token := flag.String("token", os.Getenv("ONBOARDING_API_TOKEN"), "bearer token for the onboarding service")
	flag.Parse()

	if *token == "" {
		fmt.Fprintln(os.Stderr, "missing bearer token: set ONBOARDING_API_TOKEN or pass -token")
		os.Exit(1)
	}

	client := apiclient.New(*serverURL, *token)
	app := tui.NewApp(client)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run board: %v", err)
	}
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
