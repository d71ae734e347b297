// Package guard provides ConstructorGuard, which lets commands and queries
// reject zero values that bypassed their constructors.
package guard
