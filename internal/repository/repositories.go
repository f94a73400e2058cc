package repository

import "gorm.io/gorm"

// Repositories is a container for the ORM-backed repositories
// sharing one gorm session.
type Repositories struct {
	Programmers *ProgrammerRepository
	Catalog     *ORMCatalog
}

// NewRepositories constructs the repository container over db.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Programmers: NewProgrammerRepository(db),
		Catalog:     NewORMCatalog(db),
	}
}
