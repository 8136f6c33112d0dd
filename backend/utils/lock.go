package utils

import "sync"

// KeyedMutex serializes writers per key. Progress mutations read, check and
// rewrite a whole user document, so two concurrent calls for the same user
// must not interleave.
type KeyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

// Lock acquires the mutex for key and returns its unlock func.
func (k *KeyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
