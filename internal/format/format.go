// Package format 印度记数法的金额/数值格式化
// 分级阈值为 千(K) 1e3、十万/Lakh(L) 1e5、千万/Crore(Cr) 1e7，
// 区别于国际 thousand/million/billion 口径
package format

import (
	"fmt"
	"math"
	"strings"
)

// IndianCurrency 带 ₹ 符号的分级缩写金额，如 ₹1.50L / ₹23K
func IndianCurrency(num float64) string {
	sign, abs := splitSign(num)
	return sign + "₹" + scaled(abs)
}

// IndianNumber 不带货币符号的分级缩写数值
func IndianNumber(num float64) string {
	sign, abs := splitSign(num)
	return sign + scaled(abs)
}

// Currency 带 ₹ 符号的 en-IN 千分位金额（末三位一组，其余两位一组）
func Currency(num float64) string {
	sign, abs := splitSign(num)
	return sign + "₹" + groupIndian(abs)
}

func splitSign(num float64) (sign string, abs float64) {
	if math.IsNaN(num) {
		return "", 0
	}
	if num < 0 {
		return "-", -num
	}
	return "", num
}

// scaled 按 Cr/L/K 阈值缩写；L 与 Cr 保留两位小数，K 与个位取整
func scaled(abs float64) string {
	switch {
	case abs >= 1e7:
		return fmt.Sprintf("%.2fCr", abs/1e7)
	case abs >= 1e5:
		return fmt.Sprintf("%.2fL", abs/1e5)
	case abs >= 1e3:
		return fmt.Sprintf("%.0fK", abs/1e3)
	default:
		return fmt.Sprintf("%.0f", abs)
	}
}

// groupIndian en-IN 分组：最低三位一组，往高位每两位一组
func groupIndian(abs float64) string {
	whole := fmt.Sprintf("%.0f", abs)
	if len(whole) <= 3 {
		return whole
	}

	head := whole[:len(whole)-3]
	tail := whole[len(whole)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
