package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
)

var routeRole string

var routeCmd = &cobra.Command{
	Use:   "route <query>",
	Short: "Print the routing decision for a query",
	Long: `Classifies a query the way the supervisor does and prints the decision
as JSON. No handler runs and no database is needed.`,
	Example: `  hrctl route "show department stats" --role HR
  hrctl route "apply leave on 2025-08-01" --role employee`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeRole, "role", "Employee", "Caller role (HR or Employee)")
}

type routeOutput struct {
	Query       string          `json:"query"`
	Role        model.Role      `json:"role"`
	Decision    router.Decision `json:"decision"`
	Explanation string          `json:"explanation"`
}

func runRoute(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	role := model.ParseRole(routeRole)
	if role == model.RoleUnknown {
		return fmt.Errorf("unknown role %q", routeRole)
	}

	d := router.New().Route(query, role)
	out := routeOutput{
		Query:       query,
		Role:        role,
		Decision:    d,
		Explanation: router.Explanation(d.TargetHandler),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
