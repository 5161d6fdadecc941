package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ogurasousui/codex-payroll-console/internal/core/employee"
)

// EmployeeRepository はプロセス内メモリに社員を登録順で保持する実装です。
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []*employee.Employee
	index     map[string]struct{}
	capacity  int
}

// NewEmployeeRepository は EmployeeRepository を生成します。capacity が 0 以下なら無制限です。
func NewEmployeeRepository(capacity int) *EmployeeRepository {
	if capacity < 0 {
		capacity = 0
	}
	return &EmployeeRepository{
		index:    make(map[string]struct{}),
		capacity: capacity,
	}
}

// Create は社員を末尾に追加します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.employees) >= r.capacity {
		return nil, employee.ErrRegistryFull
	}

	key := foldID(e.ID)
	if _, ok := r.index[key]; ok {
		return nil, employee.ErrIDAlreadyExists
	}

	stored := cloneEmployee(e)
	r.employees = append(r.employees, stored)
	r.index[key] = struct{}{}

	return cloneEmployee(stored), nil
}

// ExistsID は大文字小文字を区別せずに ID の存在を確認します。
func (r *EmployeeRepository) ExistsID(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[foldID(id)]
	return ok, nil
}

// List は登録順に社員の複製を返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.employees), nil
}

func (r *EmployeeRepository) Capacity() int {
	return r.capacity
}

// Reset は保持している全社員を解放します。
func (r *EmployeeRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees = nil
	r.index = make(map[string]struct{})
}

func foldID(id string) string {
	return strings.ToUpper(id)
}

func cloneEmployee(e *employee.Employee) *employee.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}
