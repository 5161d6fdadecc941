package employee

// Kind は社員の雇用区分を表します。
type Kind string

const (
	KindSalaried    Kind = "salaried"
	KindHourly      Kind = "hourly"
	KindContractual Kind = "contractual"
)

// Employee は社員エンティティです。
// BaseRate の意味は Kind によって異なります (月給、時給、案件単価)。
type Employee struct {
	ID                string
	Name              string
	Kind              Kind
	BaseRate          float64
	HoursWorked       int
	ProjectsCompleted int
}

// Units は Kind 固有の数量 (勤務時間または完了案件数) を返します。固定給の場合は 0 です。
func (e *Employee) Units() int {
	switch e.Kind {
	case KindHourly:
		return e.HoursWorked
	case KindContractual:
		return e.ProjectsCompleted
	default:
		return 0
	}
}

func isValidKind(kind Kind) bool {
	switch kind {
	case KindSalaried, KindHourly, KindContractual:
		return true
	default:
		return false
	}
}
