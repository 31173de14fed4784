package store

import "github.com/fhirfactory/hestia-task/internal/config"

// Store provides access to the task table and its search engine.
type Store struct {
	conns  *ConnectionManager
	tasks  *TaskStore
	search *SearchEngine
}

func NewStore(cfg config.Store, opts ...ConnectionOption) *Store {
	conns := NewConnectionManager(cfg, opts...)
	tasks := NewTaskStore(conns, cfg.Table)
	return &Store{
		conns:  conns,
		tasks:  tasks,
		search: NewSearchEngine(tasks),
	}
}

func (s *Store) Connections() *ConnectionManager {
	return s.conns
}

func (s *Store) Tasks() *TaskStore {
	return s.tasks
}

func (s *Store) Search() *SearchEngine {
	return s.search
}

func (s *Store) Close() error {
	return s.conns.Close()
}
