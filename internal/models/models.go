package models

// All returns every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&Invoice{},
		&Chart{},
		&User{},
	}
}
