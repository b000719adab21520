package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/parcel-next/internal/constants"
)

const trackingNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TrackingNumberGenerator 运单号生成器：前缀 + 日期(YYYYMMDD) + 随机大写字母数字后缀。
// 碰撞时重新生成，超过 maxAttempts 返回 ErrTrackingNumberExhausted。
type TrackingNumberGenerator struct {
	prefix      string
	randomLen   int
	maxAttempts int

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewTrackingNumberGenerator 创建运单号生成器，零值参数回退到默认规则
func NewTrackingNumberGenerator(prefix string, randomLen, maxAttempts int) *TrackingNumberGenerator {
	if strings.TrimSpace(prefix) == "" {
		prefix = constants.TrackingNumberPrefix
	}
	if randomLen <= 0 {
		randomLen = constants.TrackingNumberRandomLen
	}
	if maxAttempts <= 0 {
		maxAttempts = constants.TrackingNumberMaxAttempts
	}
	return &TrackingNumberGenerator{
		prefix:      prefix,
		randomLen:   randomLen,
		maxAttempts: maxAttempts,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

// WithRandSource 指定随机源（测试用，保证可复现）
func (g *TrackingNumberGenerator) WithRandSource(source rand.Source) *TrackingNumberGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rnd = rand.New(source)
	return g
}

// WithClock 指定时钟（测试用）
func (g *TrackingNumberGenerator) WithClock(now func() time.Time) *TrackingNumberGenerator {
	g.now = now
	return g
}

// Generate 生成不与现有运单号冲突的新运单号。
// exists 回调检查候选值是否已被占用；每天 36^randomLen 的候选空间远大于
// 实际单量，maxAttempts 只是防御性上限。
func (g *TrackingNumberGenerator) Generate(exists func(candidate string) (bool, error)) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := g.next()
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrTrackingNumberExhausted
}

func (g *TrackingNumberGenerator) next() string {
	var b strings.Builder
	b.WriteString(g.prefix)
	b.WriteString(g.now().Format("20060102"))

	g.mu.Lock()
	for i := 0; i < g.randomLen; i++ {
		b.WriteByte(trackingNumberCharset[g.rnd.Intn(len(trackingNumberCharset))])
	}
	g.mu.Unlock()
	return b.String()
}
