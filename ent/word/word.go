// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the word type in the database.
	Label = "word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEnglish holds the string denoting the english field in the database.
	FieldEnglish = "english"
	// FieldJapanese holds the string denoting the japanese field in the database.
	FieldJapanese = "japanese"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// Table holds the table name of the word in the database.
	Table = "words"
)

// Columns holds all SQL columns for word fields.
var Columns = []string{
	FieldID,
	FieldEnglish,
	FieldJapanese,
	FieldLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	EnglishValidator func(string) error
	// JapaneseValidator is a validator for the "japanese" field. It is called by the builders before save.
	JapaneseValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
)

// OrderOption defines the ordering options for the Word queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEnglish orders the results by the english field.
func ByEnglish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnglish, opts...).ToFunc()
}

// ByJapanese orders the results by the japanese field.
func ByJapanese(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJapanese, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}
