package employee

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	ValidateID(ctx context.Context, raw string) (string, error)
	CanRegister(ctx context.Context) (bool, error)
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	Payroll(ctx context.Context) ([]PayrollLine, error)
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService は Service を生成します。logger が nil の場合は何も出力しません。
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// RegisterEmployeeInput は社員登録時の入力です。各値は利用者が入力した文字列のままです。
type RegisterEmployeeInput struct {
	Kind     Kind
	ID       string
	Name     string
	BaseRate string
	// Count は時給制では勤務時間、契約制では完了案件数です。固定給では無視されます。
	Count string
}

// PayrollLine は給与明細の一行です。
type PayrollLine struct {
	Employee *Employee
	Pay      float64
}

// IsUniqueID は既存社員と大文字小文字を区別せずに重複しないかを返します。
func (s *Service) IsUniqueID(ctx context.Context, id string) (bool, error) {
	exists, err := s.repo.ExistsID(ctx, id)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// ValidateID は ID を正規化し、空でなく未登録であることを確認します。
func (s *Service) ValidateID(ctx context.Context, raw string) (string, error) {
	id, err := normalizeID(raw)
	if err != nil {
		return "", err
	}

	unique, err := s.IsUniqueID(ctx, id)
	if err != nil {
		return "", err
	}
	if !unique {
		return "", ErrIDAlreadyExists
	}
	return id, nil
}

// CanRegister は名簿に空きがあるかを返します。
func (s *Service) CanRegister(ctx context.Context) (bool, error) {
	limit := s.repo.Capacity()
	if limit <= 0 {
		return true, nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count < limit, nil
}

// RegisterEmployee は全項目を検証したうえで社員を名簿に追加します。
func (s *Service) RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*Employee, error) {
	if !isValidKind(in.Kind) {
		return nil, ErrInvalidKind
	}

	id, err := s.ValidateID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	if !ValidName(in.Name) {
		return nil, ErrInvalidName
	}

	rate, err := ParseDecimal(in.BaseRate)
	if err != nil {
		return nil, err
	}

	emp := &Employee{
		ID:       id,
		Name:     in.Name,
		Kind:     in.Kind,
		BaseRate: rate,
	}

	if in.Kind != KindSalaried {
		count, err := ParsePositiveInteger(in.Count)
		if err != nil {
			return nil, err
		}
		if in.Kind == KindHourly {
			emp.HoursWorked = count
		} else {
			emp.ProjectsCompleted = count
		}
	}

	if _, err := Pay(emp); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee registered",
		zap.String("employee_id", created.ID),
		zap.String("kind", string(created.Kind)),
		zap.Int("units", created.Units()),
	)

	return created, nil
}

// ListEmployees は登録順に社員を返します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

// Payroll は登録順に各社員の支給額を計算します。
func (s *Service) Payroll(ctx context.Context) ([]PayrollLine, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]PayrollLine, 0, len(employees))
	for _, emp := range employees {
		pay, err := Pay(emp)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, err)
		}
		lines = append(lines, PayrollLine{Employee: emp, Pay: pay})
	}

	return lines, nil
}
