package ports

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records runtime counters.
type Metrics interface {
	// NavigationAccepted counts a navigation that changed the location.
	NavigationAccepted()
	// NavigationDeduplicated counts a navigation dropped as a repeat.
	NavigationDeduplicated()
	// ClientCreated counts a client built for a workspace key.
	ClientCreated(workspace string)
	// OperationDispatched counts a GraphQL operation by scope and method.
	OperationDispatched(scope, method string, err error)
}
