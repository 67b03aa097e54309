package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"hrms-backend/internal/client"
	"hrms-backend/internal/forms"
	"hrms-backend/internal/model"
	"hrms-backend/internal/store"

	"github.com/spf13/cobra"
)

var (
	empStatus     string
	empDepartment string
	empDeleteYes  bool
	empFields     []string
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employees",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesList,
}

var employeesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee",
	Args:  cobra.NoArgs,
	RunE:  runEmployeesCreate,
}

var employeesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeesEdit,
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeesDelete,
}

func init() {
	employeesListCmd.Flags().StringVar(&empStatus, "status", "", "filter by status")
	employeesListCmd.Flags().StringVar(&empDepartment, "department", "", "filter by department id")
	employeesCreateCmd.Flags().StringArrayVar(&empFields, "set", nil, "field=value (repeatable)")
	employeesEditCmd.Flags().StringArrayVar(&empFields, "set", nil, "field=value (repeatable)")
	employeesDeleteCmd.Flags().BoolVarP(&empDeleteYes, "yes", "y", false, "skip the confirmation prompt")

	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesCreateCmd)
	employeesCmd.AddCommand(employeesEditCmd)
	employeesCmd.AddCommand(employeesDeleteCmd)
}

func employeeStore() *store.Store[model.Employee] {
	return store.New[model.Employee](client.NewResource[model.Employee](apiConfig(), "/api/employees"))
}

func runEmployeesList(cmd *cobra.Command, args []string) error {
	s := employeeStore()
	defer s.Close()
	if err := s.List(cmd.Context()); err != nil {
		return err
	}

	filtered := store.Apply(s.Items(), store.Filter{
		"status":       empStatus,
		"departmentId": empDepartment,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPOSITION\tDEPARTMENT\tSALARY\tSTATUS")
	for _, e := range filtered {
		dept := ""
		if e.Department != nil {
			dept = e.Department.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n", e.ID, e.Fullname, e.Position, dept, e.Salary, e.Status)
	}
	w.Flush()

	total := store.SumBy(filtered, func(e model.Employee) float64 { return e.Salary })
	fmt.Printf("\n%d employees, total salary %.2f\n", len(filtered), total)
	return nil
}

func employeeForm(s *store.Store[model.Employee]) *store.Form[model.Employee] {
	defaults := map[string]string{
		"status":       "Active",
		"contractType": "Full-time",
		"shiftType":    "Morning",
	}
	return store.NewForm(s, defaults, forms.SeedEmployee, forms.ShapeEmployee)
}

// applyFields copies repeated --set field=value flags into the form buffer.
func applyFields(f *store.Form[model.Employee], pairs []string) error {
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want field=value", pair)
		}
		f.Set(field, value)
	}
	return nil
}

func runEmployeesCreate(cmd *cobra.Command, args []string) error {
	s := employeeStore()
	defer s.Close()

	form := employeeForm(s)
	form.Open()
	if err := applyFields(form, empFields); err != nil {
		return err
	}
	if err := form.Submit(cmd.Context()); err != nil {
		return err
	}
	fmt.Println(s.Success())
	return nil
}

func runEmployeesEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s := employeeStore()
	defer s.Close()
	if err := s.List(cmd.Context()); err != nil {
		return err
	}

	var current *model.Employee
	for _, e := range s.Items() {
		if e.ID == uint(id) {
			current = &e
			break
		}
	}
	if current == nil {
		return fmt.Errorf("employee %d not found", id)
	}

	form := employeeForm(s)
	form.Edit(*current)
	if err := applyFields(form, empFields); err != nil {
		return err
	}
	if err := form.Submit(cmd.Context()); err != nil {
		return err
	}
	fmt.Println(s.Success())
	return nil
}

func runEmployeesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s := employeeStore()
	defer s.Close()

	confirm := func() bool {
		if empDeleteYes {
			return true
		}
		fmt.Printf("Delete employee %d? [y/N] ", id)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}

	if err := s.ConfirmDelete(cmd.Context(), uint(id), confirm); err != nil {
		return err
	}
	if msg := s.Success(); msg != "" {
		fmt.Println(msg)
	} else {
		fmt.Println("Aborted")
	}
	return nil
}
