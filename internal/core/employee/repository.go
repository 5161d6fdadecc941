package employee

import "context"

// Repository は社員名簿の抽象です。追加のみを許し、更新や削除は持ちません。
type Repository interface {
	// Create は社員を末尾に追加します。ID は大文字小文字を区別せず一意でなければなりません。
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	// ExistsID は大文字小文字を区別せずに ID の存在を確認します。
	ExistsID(ctx context.Context, id string) (bool, error)
	// List は登録順に全社員を返します。
	List(ctx context.Context) ([]*Employee, error)
	Count(ctx context.Context) (int, error)
	// Capacity は登録可能な最大件数を返します。0 は無制限です。
	Capacity() int
}
