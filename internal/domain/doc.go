// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/query).
// This root package holds the error taxonomy shared by the task client, the
// synchronization controller, and the reference API.
package domain
