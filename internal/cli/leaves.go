package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"hrms-backend/internal/client"
	"hrms-backend/internal/derive"
	"hrms-backend/internal/model"
	"hrms-backend/internal/store"

	"github.com/spf13/cobra"
)

var leaveStatus string

var leavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Manage leave requests",
}

var leavesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave requests",
	Args:  cobra.NoArgs,
	RunE:  runLeavesList,
}

var leavesSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <Pending|Approved|Rejected>",
	Short: "Approve or reject a leave request",
	Args:  cobra.ExactArgs(2),
	RunE:  runLeavesSetStatus,
}

func init() {
	leavesListCmd.Flags().StringVar(&leaveStatus, "status", "", "filter by status")

	leavesCmd.AddCommand(leavesListCmd)
	leavesCmd.AddCommand(leavesSetStatusCmd)
}

func leaveStore() *store.Store[model.Leave] {
	return store.New[model.Leave](client.NewResource[model.Leave](apiConfig(), "/api/leaves"))
}

func runLeavesList(cmd *cobra.Command, args []string) error {
	s := leaveStore()
	defer s.Close()
	if err := s.List(cmd.Context()); err != nil {
		return err
	}

	filtered := store.Apply(s.Items(), store.Filter{"status": leaveStatus})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tDAYS\tSTATUS")
	for _, l := range filtered {
		employee := strconv.FormatUint(uint64(l.EmployeeID), 10)
		if l.Employee != nil {
			employee = l.Employee.Fullname
		}
		days := l.Duration
		if days == 0 {
			days = derive.LeaveDuration(l.StartDate, l.EndDate)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n", l.ID, employee, l.Type, l.StartDate, l.EndDate, days, l.Status)
	}
	w.Flush()

	byStatus := store.CountBy(filtered, func(l model.Leave) string { return l.Status })
	fmt.Printf("\nPending %d, Approved %d, Rejected %d\n", byStatus["Pending"], byStatus["Approved"], byStatus["Rejected"])
	return nil
}

func runLeavesSetStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s := leaveStore()
	defer s.Close()
	if err := s.UpdateStatus(cmd.Context(), uint(id), args[1]); err != nil {
		return err
	}
	fmt.Println(s.Success())
	return nil
}
