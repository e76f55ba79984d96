package db_models

type Account struct {
	BaseModel
	Name string
	// Email is stored lower-cased.
	Email string `gorm:"uniqueIndex"`
	Photo string
}
