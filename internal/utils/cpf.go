package utils

import "strings"

// NormalizeCPF 归一化 CPF,只保留数字
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF 校验 CPF 校验位
// 接受带或不带格式符号的输入;全同数字序列(如 11111111111)不合法
func ValidCPF(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 {
		return false
	}

	// 全同数字的序列校验位恰好成立,需单独排除
	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// 第一位校验位
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	if check != int(digits[9]-'0') {
		return false
	}

	// 第二位校验位
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	check = (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	return check == int(digits[10]-'0')
}
