package employee

import (
	"fmt"
	"math"
)

// Pay は区分ごとの支給額を計算します。結果が有限値に収まらない場合は ErrPayOverflow を返します。
func Pay(e *Employee) (float64, error) {
	var pay float64
	switch e.Kind {
	case KindSalaried:
		pay = e.BaseRate
	case KindHourly:
		pay = e.BaseRate * float64(e.HoursWorked)
	case KindContractual:
		pay = e.BaseRate * float64(e.ProjectsCompleted)
	default:
		return 0, fmt.Errorf("kind %q: %w", e.Kind, ErrInvalidKind)
	}

	if math.IsInf(pay, 0) || math.IsNaN(pay) {
		return 0, ErrPayOverflow
	}
	return pay, nil
}
