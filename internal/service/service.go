// Package service contains the business logic.
//
// It sits between the command layer and the repository layer.
// It receives parsed input from a command, performs the
// operations, and calls repository methods to interact
// with the data.
package service
