package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(currentWeekCmd)
	rootCmd.AddCommand(setWeekCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List all players and their counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the team standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the per-category player rankings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [team-id]",
	Short: "Show a team's full schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/teams/" + args[0] + "/schedule")
	},
}

var currentWeekCmd = &cobra.Command{
	Use:   "current-week",
	Short: "Show the league's current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/current-week")
	},
}

var setWeekCmd = &cobra.Command{
	Use:   "set-week [week]",
	Short: "Set the current week (1-14, or 'preseason')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"week": %s}`, args[0])
		if args[0] == "preseason" {
			body = `{"week": "preseason"}`
		}
		return performRequest(http.MethodPut, "/current-week", []byte(body))
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [password]",
	Short: "Exchange the commissioner password for a bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"password": %q}`, args[0])
		return performRequest(http.MethodPost, "/login", []byte(body))
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit [file]",
	Short: "Submit a match result from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read submission file: %w", err)
		}
		return performRequest(http.MethodPost, "/matches", data)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Download the league backup archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(host + "/export-data")
		if err != nil {
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("export failed with status %d", resp.StatusCode)
		}
		out, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
		n, err := io.Copy(out, resp.Body)
		if err != nil {
			return fmt.Errorf("failed to write archive: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", n, args[0])
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, body []byte) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
