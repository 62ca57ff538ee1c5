package mahjong

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAction 非当前玩家、牌不在手中、动作格式非法；不改变状态，可重试
	ErrInvalidAction = errors.New("mahjong: invalid action")
	// ErrIllegalClaim 不具备资格或违反优先级的鸣牌请求；不改变状态
	ErrIllegalClaim = errors.New("mahjong: illegal claim")
)

// CorruptionError 内部不变量被破坏（牌数守恒、手牌张数）。
// 只中止当前一局，绝不静默吞掉。
type CorruptionError struct {
	Detail string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("mahjong: state corruption: %s", e.Detail)
}

func Corruptionf(format string, args ...any) error {
	return &CorruptionError{Detail: fmt.Sprintf(format, args...)}
}

func IsCorruption(err error) bool {
	var ce *CorruptionError
	return errors.As(err, &ce)
}
