package rng

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

const wheelNumbers = 37 // 0..36

// Generator — источник игровых розыгрышей. Выделен в интерфейс, чтобы в
// тестах подставлять детерминированный сид.
type Generator interface {
	// DrawWheel возвращает номер сектора рулетки, равномерно из [0,36].
	DrawWheel() int
	// DrawMinePositions возвращает mines различных индексов из [0,cells),
	// равномерно по всем сочетаниям.
	DrawMinePositions(cells, mines int) ([]int, error)
}

type generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New создает генератор со случайным сидом.
func New() Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource создает генератор с заданным источником (для тестов).
func NewWithSource(src rand.Source) Generator {
	return &generator{r: rand.New(src)}
}

func (g *generator) DrawWheel() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.Intn(wheelNumbers)
}

func (g *generator) DrawMinePositions(cells, mines int) ([]int, error) {
	if cells <= 0 || mines < 1 || mines >= cells {
		return nil, fmt.Errorf("rng: bad mine draw %d of %d", mines, cells)
	}

	g.mu.Lock()
	perm := g.r.Perm(cells)
	g.mu.Unlock()

	positions := append([]int(nil), perm[:mines]...)
	sort.Ints(positions)

	return positions, nil
}
