// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Dataset is the predicate function for dataset builders.
type Dataset func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// QueryHistory is the predicate function for queryhistory builders.
type QueryHistory func(*sql.Selector)

// QueryResult is the predicate function for queryresult builders.
type QueryResult func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// TokenUsage is the predicate function for tokenusage builders.
type TokenUsage func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
