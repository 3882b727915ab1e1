package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const containerIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var containerIDPattern = regexp.MustCompile(`^SHIP-[0-9A-Z]{4}-[0-9]{4}$`)

// IsValidContainerID 校验集装箱编号格式
func IsValidContainerID(containerID string) bool {
	return containerIDPattern.MatchString(containerID)
}

// GenerateContainerID 生成集装箱编号
// 格式：SHIP-XXXX-NNNN，XXXX 为随机 36 进制大写字符，NNNN 为毫秒时间戳后四位
func GenerateContainerID() string {
	return GenerateContainerIDAt(time.Now())
}

// GenerateContainerIDAt 按指定时间生成集装箱编号
func GenerateContainerIDAt(now time.Time) string {
	randPart := randBase36(4)
	millis := now.UnixMilli()
	suffix := millis % 10000
	return fmt.Sprintf("SHIP-%s-%04d", randPart, suffix)
}

// GenerateContainerPath 生成归档路径：YYYY/MM/DD/编号（月日补零）
func GenerateContainerPath(containerID string, now time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/%s", now.Year(), int(now.Month()), now.Day(), containerID)
}

func randBase36(length int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(containerIDAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteByte(containerIDAlphabet[n.Int64()])
	}
	return b.String()
}
