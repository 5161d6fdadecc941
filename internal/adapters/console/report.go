package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ogurasousui/codex-payroll-console/internal/core/employee"
)

// writeReport は給与明細を登録順に書き出します。
func writeReport(w io.Writer, lines []employee.PayrollLine) error {
	if _, err := io.WriteString(w, reportHeader); err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := io.WriteString(w, reportEmpty)
		return err
	}

	for _, line := range lines {
		if err := writeEntry(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, reportSeparator); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, line employee.PayrollLine) error {
	e := line.Employee

	var err error
	switch e.Kind {
	case employee.KindSalaried:
		_, err = fmt.Fprintf(w, "Employee: %s (ID: %s)\nFixed Monthly Salary: $%s\n",
			e.Name, e.ID, formatAmount(e.BaseRate))
	case employee.KindHourly:
		_, err = fmt.Fprintf(w, "Employee: %s (ID: %s)\nHourly Wage: $%s\nHours Worked: %d\nTotal Salary: $%s\n",
			e.Name, e.ID, formatAmount(e.BaseRate), e.HoursWorked, formatAmount(line.Pay))
	case employee.KindContractual:
		_, err = fmt.Fprintf(w, "Employee: %s (ID: %s)\nContract Payment Per Project: $%s\nProjects Completed: %d\nTotal Salary: $%s\n",
			e.Name, e.ID, formatAmount(e.BaseRate), e.ProjectsCompleted, formatAmount(line.Pay))
	default:
		err = fmt.Errorf("render %s: %w", e.ID, employee.ErrInvalidKind)
	}
	return err
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
