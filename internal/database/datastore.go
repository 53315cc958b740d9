package database

// DataStore defines the unified interface for all data operations.
// This interface is composed of smaller, domain-specific interfaces following the
// Interface Segregation Principle. Consumers can depend on smaller interfaces
// (e.g., TaskRepository, LabelRepository) for better testability and clearer dependencies.
type DataStore interface {
	TaskRepository
	LabelRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
