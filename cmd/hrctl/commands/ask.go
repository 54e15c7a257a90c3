package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hr-agent-system/internal/agent"
	"hr-agent-system/internal/agent/handlers"
	"hr-agent-system/internal/agent/orchestrator"
	employeeRepo "hr-agent-system/internal/employee/repository/postgre"
	employeeUC "hr-agent-system/internal/employee/usecase"
	"hr-agent-system/internal/model"
	"hr-agent-system/internal/router"
)

var (
	askAs      string
	askVerbose bool
)

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Run one supervisor turn as an employee",
	Long: `Routes the query, runs the selected agent against the configured
database and prints the reply. LLM phrasing and calendar sync are off.`,
	Example: `  hrctl ask --as E003 "how many leave days do I have"
  hrctl ask --as E001 "department stats for IT"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askAs, "as", "", "Employee id to act as (required)")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Also print the routing decision")
	askCmd.MarkFlagRequired("as")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	employees := employeeUC.New(employeeRepo.New(e.db, e.l), e.l)
	caller, err := employees.Detail(ctx, askAs)
	if err != nil {
		return fmt.Errorf("load %s: %w", askAs, err)
	}

	loc, err := time.LoadLocation(e.cfg.Agent.Timezone)
	if err != nil {
		loc = time.UTC
	}
	registry := agent.NewRegistry()
	if err := handlers.RegisterAll(registry, e.l, handlers.Options{Directory: employees, Location: loc}); err != nil {
		return err
	}
	supervisor := orchestrator.New(e.l, router.New(), registry, orchestrator.Config{
		MaxHistoryTurns: e.cfg.Agent.MaxHistoryTurns,
		Timezone:        e.cfg.Agent.Timezone,
	})

	reply, err := supervisor.Process(ctx, model.Scope{
		UserID:   caller.ID,
		Username: caller.Name,
		Role:     caller.Role,
	}, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if askVerbose {
		fmt.Fprintf(out, "[%s -> %s, authorized=%t]\n\n", reply.Decision.Category, reply.Decision.TargetHandler, reply.Decision.Authorized)
	}
	fmt.Fprintln(out, reply.Text)
	return nil
}
