package store

// Len returns the number of stored users.
func (m *MemoryUserRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byEmail)
}
