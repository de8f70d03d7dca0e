package game

import (
	"math/rand"
	"strings"
	"sync"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const codeLength = 6

// codeGenerator hands out join codes that are unique among live rooms.
type codeGenerator struct {
	used   map[string]struct{}
	locker sync.Mutex
}

func NewCodeGenerator() *codeGenerator {
	return &codeGenerator{used: map[string]struct{}{}}
}

func (g *codeGenerator) Generate() string {
	g.locker.Lock()
	defer g.locker.Unlock()
	for {
		var b strings.Builder
		for i := 0; i < codeLength; i++ {
			b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
		}
		code := b.String()
		if _, taken := g.used[code]; !taken {
			g.used[code] = struct{}{}
			return code
		}
	}
}

func (g *codeGenerator) Dispose(code string) {
	g.locker.Lock()
	defer g.locker.Unlock()
	delete(g.used, code)
}
