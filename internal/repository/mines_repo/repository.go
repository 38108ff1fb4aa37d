package mines_repo

import (
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"wager_backend/internal/model"
	"wager_backend/internal/repository"
)

type entry struct {
	mu sync.Mutex
	s  *model.MinesSession
}

// Registry — реестр активных сессий поверх go-cache. TTL снимает брошенные
// партии: джанитор кэша вызывает onExpire для сессии, оставшейся активной.
// Терминальные сессии удаляются еще активной статусной веткой, поэтому в
// обработчик выселения они приходят уже закрытыми и пропускаются.
type Registry struct {
	cache    *gocache.Cache
	ttl      time.Duration
	onExpire func(s *model.MinesSession)
}

func NewMinesRegistry(ttl time.Duration, onExpire func(s *model.MinesSession)) *Registry {
	r := &Registry{
		cache:    gocache.New(ttl, ttl/2),
		ttl:      ttl,
		onExpire: onExpire,
	}
	r.cache.OnEvicted(r.evicted)
	return r
}

var _ repository.MinesRegistry = (*Registry)(nil)

func (r *Registry) Add(s *model.MinesSession) {
	r.cache.Set(s.ID, &entry{s: s}, r.ttl)
}

// Mutate выполняет fn под блокировкой сессии. Если после fn сессия осталась
// в терминальном статусе — запись удаляется, и любой последующий вызов по
// этому id получит model.ErrSessionNotFound.
func (r *Registry) Mutate(id string, fn func(s *model.MinesSession) error) error {
	const op = "repository.mines.Mutate"

	v, ok := r.cache.Get(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}
	e := v.(*entry)

	e.mu.Lock()

	// Запись могла закрыться, пока мы ждали блокировку.
	if e.s.Status != model.SessionActive {
		e.mu.Unlock()
		return fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}

	err := fn(e.s)
	terminal := e.s.Status != model.SessionActive

	// Delete дергает обработчик выселения синхронно, и тот берет e.mu,
	// поэтому удалять запись можно только после снятия блокировки.
	// Обработчик увидит терминальный статус и ничего делать не станет.
	e.mu.Unlock()

	if terminal {
		r.cache.Delete(id)
	}
	return err
}

func (r *Registry) View(id string, fn func(s *model.MinesSession)) error {
	const op = "repository.mines.View"

	v, ok := r.cache.Get(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}
	e := v.(*entry)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.s.Status != model.SessionActive {
		return fmt.Errorf("%s: %w", op, model.ErrSessionNotFound)
	}

	fn(e.s)
	return nil
}

func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

func (r *Registry) evicted(_ string, v interface{}) {
	e, ok := v.(*entry)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.s.Status != model.SessionActive {
		return
	}
	e.s.Status = model.SessionCancelled
	if r.onExpire != nil {
		r.onExpire(e.s)
	}
}
