package model

import (
	"regexp"
	"strings"
)

// AreaTable 活动名到占地面积（平方英尺）的静态映射
// 除实体活动外，还包含 "Arcade" / "VR Zone" 两个合成分类
type AreaTable map[string]float64

// DefaultAreaTable 场馆默认面积表
func DefaultAreaTable() AreaTable {
	return AreaTable{
		"Trampoline":    9000,
		"BOWLING":       5000,
		"Laser Tag":     2200,
		"Shooting":      400,
		"Hyper Grid":    400,
		"Rope Course":   1200,
		"Sky Rider":     500,
		"Cricket":       500,
		"SOFT PLAY":     2500,
		"Gravity Glide": 700,
		"Panda Climb":   500,
		"Pool Report":   200,
		"Arcade":        2000,
		"VR Zone":       500,
		"VR":            500,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeName 规范化活动名：去首尾空格，内部连续空白压缩为单个空格
func NormalizeName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(name), " ")
}

// Canonical 在面积表中查找规范化后的活动名（大小写不敏感）
// 命中时返回表内的规范写法；未命中时原样返回
func (t AreaTable) Canonical(name string) string {
	normalized := NormalizeName(name)
	for key := range t {
		if strings.EqualFold(key, normalized) {
			return key
		}
	}
	return normalized
}

// Area 返回活动的占地面积；未知活动返回 0（面积未知，不是错误）
func (t AreaTable) Area(name string) float64 {
	return t[t.Canonical(name)]
}
