// Package cli is an admin terminal client for the HRMS API, built on
// the same resource/store layer the web client uses.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"hrms-backend/internal/client"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "hrmsctl",
	Short: "Terminal client for the HRMS API",
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3000", "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("HRMS_TOKEN"), "bearer token (defaults to $HRMS_TOKEN)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(leavesCmd)
}

func apiConfig() client.Config {
	return client.Config{BaseURL: serverURL, Token: token}
}

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain a bearer token",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	body, _ := json.Marshal(map[string]string{"email": loginEmail, "password": loginPassword})
	resp, err := http.Post(serverURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Data  struct{ Token string }
		Error string
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if out.Error != "" {
		return fmt.Errorf("%s", out.Error)
	}

	fmt.Println(out.Data.Token)
	return nil
}
