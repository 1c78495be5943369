package metrics

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette 主题卡片的默认配色
var DefaultPalette = []string{
	"#F97316", // orange
	"#34D399", // teal green
	"#FF6B6B", // red
	"#60A5FA", // blue
	"#FFD93D", // yellow
	"#8B5CF6", // violet
	"#22D3EE", // cyan
	"#C084FC", // light purple
}

var namedColor = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)

// PickDeterministicColor 按 key 的哈希值从调色板中取色，同一个 key 始终得到同一颜色。
// palette 为空时使用 DefaultPalette。
func PickDeterministicColor(key string, palette []string) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[xxhash.Sum64String(key)%uint64(len(palette))]
}

// NormalizeColor 校验记录中的颜色值。
// 合法的十六进制颜色统一为 #rrggbb，CSS 颜色名原样小写返回，其余返回空串。
func NormalizeColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "#") {
		c, err := colorful.Hex(raw)
		if err != nil {
			return ""
		}
		return c.Hex()
	}
	if namedColor.MatchString(raw) {
		return strings.ToLower(raw)
	}
	return ""
}

// ColorOr 返回规范化后的 raw，不合法时按 key 从调色板取色
func ColorOr(raw, key string, palette []string) string {
	if c := NormalizeColor(raw); c != "" {
		return c
	}
	return PickDeterministicColor(key, palette)
}

// BadgeTextColor 为给定背景色选择可读的文字颜色
func BadgeTextColor(background string) string {
	c, err := colorful.Hex(NormalizeColor(background))
	if err != nil {
		return "#000"
	}
	l, _, _ := c.Lab()
	if l < 0.55 {
		return "#fff"
	}
	return "#000"
}
