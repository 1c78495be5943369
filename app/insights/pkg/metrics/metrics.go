// Package metrics derives the human-facing labels shown on insight cards
// from raw counters and dates. Every function here is total: bad input
// degrades to a sentinel instead of failing.
package metrics

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Sentinel 无法计算时的占位值
const Sentinel = "-"

// 增长标签
const (
	Surging    = "Surging"
	Rising     = "Rising"
	Stable     = "Stable"
	Plateauing = "Plateauing"
	Declining  = "Declining"
)

// 成熟度标签
const (
	Nascent     = "Nascent"
	Emerging    = "Emerging"
	Scaling     = "Scaling"
	Established = "Established"
)

// Momentum 两个周期声量对比得到的增长信息
type Momentum struct {
	Label         string
	GrowthPercent float64
	Velocity      int64
}

// Valid 输入可被转换时为 true
func (m Momentum) Valid() bool {
	return m.Label != Sentinel
}

// DeriveMomentum 根据当期与上期声量计算增长标签、增长率和净增量。
// 输入可以是整数、浮点数或数字字符串，无法转换或为负数时返回 ("-", 0, 0)。
func DeriveMomentum(currentVolume, previousVolume any) Momentum {
	current, ok := toCount(currentVolume)
	if !ok {
		return Momentum{Label: Sentinel}
	}
	previous, ok := toCount(previousVolume)
	if !ok {
		return Momentum{Label: Sentinel}
	}

	velocity := current - previous
	var growth float64
	switch {
	case previous <= 0 && velocity > 0:
		growth = 100.0
	case previous <= 0:
		growth = 0.0
	default:
		growth = float64(velocity) / float64(previous) * 100
	}

	return Momentum{
		Label:         MomentumLabel(growth),
		GrowthPercent: growth,
		Velocity:      velocity,
	}
}

// MomentumLabel 将增长率映射到标签，边界值归入下一档
func MomentumLabel(growthPercent float64) string {
	switch {
	case growthPercent > 50:
		return Surging
	case growthPercent > 10:
		return Rising
	case growthPercent > -10:
		return Stable
	case growthPercent > -50:
		return Plateauing
	default:
		return Declining
	}
}

func toCount(v any) (int64, bool) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToInt64E(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// DeriveMaturity 根据首次发现与最近扫描之间相隔的月数判断生命周期阶段。
// 只比较年和月，日期无法解析时返回 "-"。
func DeriveMaturity(firstSeen, lastScan string) string {
	months, ok := MonthsBetween(firstSeen, lastScan)
	if !ok {
		return Sentinel
	}
	switch {
	case months < 3:
		return Nascent
	case months < 6:
		return Emerging
	case months < 18:
		return Scaling
	default:
		return Established
	}
}

// MonthsBetween 返回两个日期之间的自然月差
func MonthsBetween(from, to string) (int, bool) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" || from == Sentinel || to == Sentinel {
		return 0, false
	}
	a, err := cast.ToTimeE(from)
	if err != nil {
		return 0, false
	}
	b, err := cast.ToTimeE(to)
	if err != nil {
		return 0, false
	}
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()), true
}

// FormatCompactNumber 把数字压缩为 2.3M / 5k 形式，负数保留符号但不补 "+"
func FormatCompactNumber(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.0fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatSignedCompact 正数前补 "+"，用于增量展示
func FormatSignedCompact(n int64) string {
	if n > 0 {
		return "+" + FormatCompactNumber(n)
	}
	return FormatCompactNumber(n)
}
