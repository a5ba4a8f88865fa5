package adapters

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// ErrEmptyVendorName is returned when registering under an empty or blank name.
	ErrEmptyVendorName = errors.New("vendor name cannot be empty or whitespace")
	// ErrNilAdapter is returned when registering a nil adapter.
	ErrNilAdapter = errors.New("adapter must not be nil")
	// ErrAdapterAlreadyRegistered is returned when the name is taken.
	ErrAdapterAlreadyRegistered = errors.New("adapter already registered")
	// ErrAdapterNotFound is returned by Lookup for unknown names.
	ErrAdapterNotFound = errors.New("no adapter registered")
)

type snapshot map[string]VendorAdapter

// Registry はベンダー名とアダプターの対応を保持します。
//
// Copy-on-Write で実装しており、読み取り (Get / Lookup / List) はロックを取らず
// 書き込み中でもブロックしません。書き込み (Register) は相互排他で、
// 新しいマップ全体をアトミックに公開するため、読み取り側は常に書き込み前か
// 書き込み後のどちらかの完全な状態を観測します。
type Registry struct {
	mu       sync.Mutex
	adapters atomic.Pointer[snapshot]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := snapshot{}
	r.adapters.Store(&empty)
	return r
}

// Register はアダプターを登録します。
// 名前が空または空白のみ、adapter が nil、または登録済みの場合はエラーを返します。
func (r *Registry) Register(vendor string, adapter VendorAdapter) error {
	if strings.TrimSpace(vendor) == "" {
		return ErrEmptyVendorName
	}
	if adapter == nil {
		return ErrNilAdapter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.load()
	if _, ok := cur[vendor]; ok {
		return fmt.Errorf("%w: %q", ErrAdapterAlreadyRegistered, vendor)
	}
	next := make(snapshot, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[vendor] = adapter
	r.adapters.Store(&next)
	return nil
}

// Get returns the adapter registered under vendor.
func (r *Registry) Get(vendor string) (VendorAdapter, bool) {
	a, ok := r.load()[vendor]
	return a, ok
}

// Lookup returns the adapter registered under vendor, or ErrAdapterNotFound.
func (r *Registry) Lookup(vendor string) (VendorAdapter, error) {
	a, ok := r.Get(vendor)
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrAdapterNotFound, vendor)
	}
	return a, nil
}

// List returns the registered vendor names, sorted.
func (r *Registry) List() []string {
	cur := r.load()
	names := make([]string, 0, len(cur))
	for k := range cur {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	return len(r.load())
}

func (r *Registry) load() snapshot {
	p := r.adapters.Load()
	if p == nil {
		return nil
	}
	return *p
}
