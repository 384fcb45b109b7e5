// Package ports defines interfaces between layers in the hexagonal architecture.
// Client ports (TaskClient, AuthClient, CredentialSource) are implemented by
// outbound adapters and the session, and called by the synchronization
// controller. Repository ports are implemented by the storage adapter and
// called by the reference API handlers.
package ports
