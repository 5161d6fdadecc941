package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ogurasousui/codex-payroll-console/internal/core/employee"
	"go.uber.org/zap"
)

const (
	choiceSalaried = iota + 1
	choiceHourly
	choiceContractual
	choiceReport
	choiceExit
)

// Menu は標準入出力上の対話セッションを管理します。
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	svc    employee.UseCase
	logger *zap.Logger

	state State
	draft employee.RegisterEmployeeInput
}

// NewMenu は Menu を生成します。logger が nil の場合は何も出力しません。
func NewMenu(in io.Reader, out io.Writer, svc employee.UseCase, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		in:     bufio.NewReader(in),
		out:    out,
		svc:    svc,
		logger: logger,
		state:  StateAwaitingChoice,
	}
}

// State は現在の状態を返します。
func (m *Menu) State() State {
	return m.state
}

// Run は終了が選択されるか入力が尽きるまでメニューを繰り返します。
// 入力の終端は正常終了として扱い、それ以外の入出力エラーとコンテキストのキャンセルのみを返します。
func (m *Menu) Run(ctx context.Context) error {
	for m.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := m.step(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.logger.Debug("input closed")
				m.transition(StateTerminated)
				return nil
			}
			return err
		}
		m.transition(next)
	}
	return nil
}

func (m *Menu) step(ctx context.Context) (State, error) {
	switch m.state {
	case StateAwaitingChoice:
		return m.awaitChoice(ctx)
	case StateEnteringID:
		return m.enterID(ctx)
	case StateEnteringName:
		return m.enterName()
	case StateEnteringRate:
		return m.enterRate()
	case StateEnteringCount:
		return m.enterCount()
	case StateRecordCommitted:
		return m.commit(ctx)
	case StateShowingReport:
		return m.showReport(ctx)
	default:
		return StateTerminated, fmt.Errorf("console: unexpected state %s", m.state)
	}
}

func (m *Menu) transition(next State) {
	if next == m.state {
		return
	}
	m.logger.Debug("menu state changed", zap.Stringer("from", m.state), zap.Stringer("to", next))
	m.state = next
}

func (m *Menu) awaitChoice(ctx context.Context) (State, error) {
	if err := m.print(menuText); err != nil {
		return m.state, err
	}

	line, err := m.readLine()
	if err != nil {
		return m.state, err
	}

	choice, ok := parseChoice(line)
	if !ok {
		m.logger.Debug("menu choice rejected")
		return StateAwaitingChoice, m.print(msgInvalidChoice)
	}

	switch choice {
	case choiceReport:
		return StateShowingReport, nil
	case choiceExit:
		return StateTerminated, nil
	}

	can, err := m.svc.CanRegister(ctx)
	if err != nil {
		return m.state, err
	}
	if !can {
		return StateAwaitingChoice, m.print(msgRegistryFull)
	}

	m.draft = employee.RegisterEmployeeInput{Kind: kindForChoice(choice)}
	return StateEnteringID, nil
}

func (m *Menu) enterID(ctx context.Context) (State, error) {
	line, err := m.prompt(promptID)
	if err != nil {
		return m.state, err
	}

	id, err := m.svc.ValidateID(ctx, line)
	if err != nil {
		return m.reject("id", err)
	}

	m.draft.ID = id
	return StateEnteringName, nil
}

func (m *Menu) enterName() (State, error) {
	line, err := m.prompt(promptName)
	if err != nil {
		return m.state, err
	}

	if !employee.ValidName(line) {
		return m.reject("name", employee.ErrInvalidName)
	}

	m.draft.Name = line
	return StateEnteringRate, nil
}

func (m *Menu) enterRate() (State, error) {
	line, err := m.prompt(promptSalary)
	if err != nil {
		return m.state, err
	}

	if _, err := employee.ParseDecimal(line); err != nil {
		return m.reject("rate", err)
	}

	m.draft.BaseRate = line
	if m.draft.Kind == employee.KindSalaried {
		return StateRecordCommitted, nil
	}
	return StateEnteringCount, nil
}

func (m *Menu) enterCount() (State, error) {
	label := promptHours
	if m.draft.Kind == employee.KindContractual {
		label = promptProjects
	}

	line, err := m.prompt(label)
	if err != nil {
		return m.state, err
	}

	count, err := employee.ParsePositiveInteger(line)
	if err != nil {
		return m.reject("count", err)
	}
	if err := checkPay(m.draft, count); err != nil {
		return m.reject("count", err)
	}

	m.draft.Count = line
	return StateRecordCommitted, nil
}

func (m *Menu) commit(ctx context.Context) (State, error) {
	in := m.draft
	m.draft = employee.RegisterEmployeeInput{}

	if _, err := m.svc.RegisterEmployee(ctx, in); err != nil {
		msg, ok := toMessage(err)
		if !ok {
			return m.state, err
		}
		m.logger.Warn("employee not registered", zap.Error(err))
		return StateAwaitingChoice, m.print(msg)
	}
	return StateAwaitingChoice, nil
}

func (m *Menu) showReport(ctx context.Context) (State, error) {
	lines, err := m.svc.Payroll(ctx)
	if err != nil {
		return m.state, err
	}
	if err := writeReport(m.out, lines); err != nil {
		return m.state, fmt.Errorf("console: write report: %w", err)
	}
	return StateAwaitingChoice, nil
}

// reject は入力を拒否して同じ項目を再入力させます。
func (m *Menu) reject(field string, err error) (State, error) {
	msg, ok := toMessage(err)
	if !ok {
		return m.state, err
	}
	m.logger.Debug("input rejected", zap.String("field", field), zap.Error(err))
	return m.state, m.print(msg)
}

func (m *Menu) prompt(label string) (string, error) {
	if err := m.print(label); err != nil {
		return "", err
	}
	return m.readLine()
}

func (m *Menu) print(s string) error {
	if _, err := io.WriteString(m.out, s); err != nil {
		return fmt.Errorf("console: write: %w", err)
	}
	return nil
}

// readLine は改行を除いた一行を返します。最終行に改行が無くても内容があれば返します。
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimNewline(line), nil
		}
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// parseChoice は先頭の空白のみを許し、1 から 5 の整数だけを受け付けます。
func parseChoice(line string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimLeft(line, " \t"))
	if err != nil || n < choiceSalaried || n > choiceExit {
		return 0, false
	}
	return n, true
}

// checkPay は入力済みの単価と数量で支給額が有限値に収まるかを確認します。
func checkPay(draft employee.RegisterEmployeeInput, count int) error {
	rate, err := employee.ParseDecimal(draft.BaseRate)
	if err != nil {
		return err
	}
	_, err = employee.Pay(&employee.Employee{
		Kind:              draft.Kind,
		BaseRate:          rate,
		HoursWorked:       count,
		ProjectsCompleted: count,
	})
	return err
}

func kindForChoice(choice int) employee.Kind {
	switch choice {
	case choiceHourly:
		return employee.KindHourly
	case choiceContractual:
		return employee.KindContractual
	default:
		return employee.KindSalaried
	}
}
